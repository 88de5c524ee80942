package almox_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almox360/almox-api/internal/application/almox"
	"github.com/almox360/almox-api/internal/domain"
	"github.com/almox360/almox-api/internal/domain/entity"
)

func pickingFixture(t *testing.T) (*fakeStore, *almox.PickingUseCase) {
	t.Helper()
	store := newFakeStore()
	uc := almox.NewPickingUseCase(&fakeReqRepo{store}, &fakeItemRepo{store}, &fakeBatchRepo{store})
	return store, uc
}

func TestSuggest_SoLinhasPendentesComLotesEmOrdemFEFO(t *testing.T) {
	store, uc := pickingFixture(t)

	lotItem := seedItem(store, "item-lote", "MAT-010", "50")
	lotItem.ControlLot = true
	lotItem.DefaultAddress = "A-01-03"
	seedItem(store, "item-pronto", "MAT-011", "50")

	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	store.batches = append(store.batches,
		&entity.Batch{ID: "b2", ItemID: "item-lote", LotNumber: "L2", ExpiryDate: base.AddDate(0, 3, 0), Quantity: d("30")},
		&entity.Batch{ID: "b1", ItemID: "item-lote", LotNumber: "L1", ExpiryDate: base.AddDate(0, 1, 0), Quantity: d("20")},
	)

	seedRequisition(store, "req-1", entity.StatusAprovado,
		reqLine("item-lote", "10", "0", "0"),
		reqLine("item-pronto", "5", "5", "0"), // já completa, não entra
	)

	out, err := uc.Suggest(context.Background(), "req-1")
	require.NoError(t, err)

	require.Len(t, out, 1, "linha completa fica de fora da lista de separação")
	assert.Equal(t, "item-lote", out[0].ItemID)
	assert.Equal(t, "A-01-03", out[0].DefaultAddress)
	assert.True(t, out[0].RemainingQty.Equal(d("10")))

	require.Len(t, out[0].Batches, 2)
	assert.Equal(t, "L1", out[0].Batches[0].LotNumber, "lote que vence primeiro sugerido primeiro")
	assert.Equal(t, "L2", out[0].Batches[1].LotNumber)
}

func TestSuggest_ItemSemControleDeLote_SemLotes(t *testing.T) {
	store, uc := pickingFixture(t)
	item := seedItem(store, "item-a", "MAT-001", "50")
	item.DefaultAddress = "B-02-01"
	seedRequisition(store, "req-1", entity.StatusAprovado, reqLine("item-a", "10", "0", "0"))

	out, err := uc.Suggest(context.Background(), "req-1")
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "B-02-01", out[0].DefaultAddress)
	assert.Empty(t, out[0].Batches)
}

func TestSuggest_RequisicaoInexistente(t *testing.T) {
	_, uc := pickingFixture(t)

	_, err := uc.Suggest(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
