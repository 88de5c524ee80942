package almox_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almox360/almox-api/internal/application/almox"
	"github.com/almox360/almox-api/internal/domain"
	"github.com/almox360/almox-api/internal/domain/entity"
)

func returnFixture(t *testing.T, opts almox.Options) (*fakeStore, *almox.FulfillmentUseCase) {
	t.Helper()
	store := newFakeStore()
	seedItem(store, "item-a", "MAT-001", "90")
	seedRequisition(store, "req-1", entity.StatusEntregue,
		reqLine("item-a", "10", "10", "0"),
	)
	return store, almox.NewFulfillmentUseCase(&fakeTxRunner{store}, opts)
}

func TestReturn_CreditaEstoqueEAtualizaLinha(t *testing.T) {
	store, uc := returnFixture(t, almox.Options{AllowPartial: true})

	req, err := uc.Return(context.Background(), "req-1",
		fulfillLines([2]string{"item-a", "4"}), "material não utilizado", requisitor)
	require.NoError(t, err)

	assert.True(t, req.Items[0].ReturnedQty.Equal(d("4")))
	assert.True(t, store.items["item-a"].CurrentStock.Equal(d("94")), "estoque creditado")
	assert.Equal(t, entity.StatusEntregue, req.Status, "sem AutoDevolvido o status não muda")

	last := req.Timeline[len(req.Timeline)-1]
	assert.Equal(t, entity.TimelineDevolucao, last.Status)
	assert.Contains(t, last.Note, "material não utilizado")
}

func TestReturn_AcimaDoAtendido_Rejeitado(t *testing.T) {
	store, uc := returnFixture(t, almox.Options{AllowPartial: true})

	_, err := uc.Return(context.Background(), "req-1",
		fulfillLines([2]string{"item-a", "11"}), "", requisitor)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, store.items["item-a"].CurrentStock.Equal(d("90")), "nada creditado")
}

func TestReturn_DevolucoesSucessivasLimitadasAoAtendido(t *testing.T) {
	_, uc := returnFixture(t, almox.Options{AllowPartial: true})

	_, err := uc.Return(context.Background(), "req-1", fulfillLines([2]string{"item-a", "7"}), "", requisitor)
	require.NoError(t, err)

	// Restam 3 devolvíveis; 4 deve falhar.
	_, err = uc.Return(context.Background(), "req-1", fulfillLines([2]string{"item-a", "4"}), "", requisitor)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Return(context.Background(), "req-1", fulfillLines([2]string{"item-a", "3"}), "", requisitor)
	assert.NoError(t, err)
}

func TestReturn_AutoDevolvido_DevolucaoIntegralMudaStatus(t *testing.T) {
	store, uc := returnFixture(t, almox.Options{AllowPartial: true, AutoDevolvido: true})

	req, err := uc.Return(context.Background(), "req-1",
		fulfillLines([2]string{"item-a", "10"}), "devolução total", requisitor)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusDevolvido, req.Status)
	assert.True(t, store.items["item-a"].CurrentStock.Equal(d("100")))
}

func TestReturn_AutoDevolvidoDesligado_StatusPermanece(t *testing.T) {
	_, uc := returnFixture(t, almox.Options{AllowPartial: true, AutoDevolvido: false})

	req, err := uc.Return(context.Background(), "req-1",
		fulfillLines([2]string{"item-a", "10"}), "", requisitor)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusEntregue, req.Status)
}

func TestReturn_StatusSemEntrega_Rejeitado(t *testing.T) {
	store, uc := returnFixture(t, almox.Options{AllowPartial: true})
	store.reqs["req-1"].Status = entity.StatusAprovado

	_, err := uc.Return(context.Background(), "req-1", fulfillLines([2]string{"item-a", "1"}), "", requisitor)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
