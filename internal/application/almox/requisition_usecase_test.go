package almox_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almox360/almox-api/internal/application/almox"
	"github.com/almox360/almox-api/internal/application/dto"
	"github.com/almox360/almox-api/internal/domain"
	"github.com/almox360/almox-api/internal/domain/entity"
)

func requisitionFixture(t *testing.T) (*fakeStore, *almox.RequisitionUseCase) {
	t.Helper()
	store := newFakeStore()
	seedItem(store, "item-a", "MAT-001", "100")
	uc := almox.NewRequisitionUseCase(&fakeTxRunner{store}, &fakeReqRepo{store}, &fakeItemRepo{store})
	return store, uc
}

func createReq() dto.CreateRequisitionRequest {
	return dto.CreateRequisitionRequest{
		Sector: "Manutenção",
		Items: []dto.CreateRequisitionItemRequest{
			{ItemID: "item-a", RequestedQty: d("10")},
		},
	}
}

func TestCreate_RequisitanteComecaEmRascunho(t *testing.T) {
	_, uc := requisitionFixture(t)

	req, err := uc.Create(context.Background(), createReq(), requisitor)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusRascunho, req.Status)
	assert.Equal(t, requisitor.ID, req.RequesterID)
	assert.Equal(t, entity.PriorityMedia, req.Priority, "prioridade padrão MEDIA")
	assert.Equal(t, fmt.Sprintf("0001/%d", time.Now().Year()), req.Number)

	// Snapshot de descrição e unidade do item na linha.
	require.Len(t, req.Items, 1)
	assert.Equal(t, "Item MAT-001", req.Items[0].Description)
	assert.Equal(t, "UN", req.Items[0].Unit)
	assert.True(t, req.Items[0].FulfilledQty.IsZero())

	// Timeline nasce com o evento de criação.
	require.Len(t, req.Timeline, 1)
	assert.Equal(t, string(entity.StatusRascunho), req.Timeline[0].Status)
}

func TestCreate_AprovadorEntraDiretoAprovado(t *testing.T) {
	_, uc := requisitionFixture(t)

	req, err := uc.Create(context.Background(), createReq(), aprovador)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAprovado, req.Status)
}

func TestCreate_SequencialPorAno(t *testing.T) {
	_, uc := requisitionFixture(t)

	first, err := uc.Create(context.Background(), createReq(), requisitor)
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), createReq(), requisitor)
	require.NoError(t, err)

	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("0001/%d", year), first.Number)
	assert.Equal(t, fmt.Sprintf("0002/%d", year), second.Number)
}

func TestCreate_ItemInexistente(t *testing.T) {
	_, uc := requisitionFixture(t)

	in := createReq()
	in.Items[0].ItemID = "fantasma"
	_, err := uc.Create(context.Background(), in, requisitor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ItemInativo(t *testing.T) {
	store, uc := requisitionFixture(t)
	store.items["item-a"].Active = false

	_, err := uc.Create(context.Background(), createReq(), requisitor)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_QuantidadeInvalida(t *testing.T) {
	_, uc := requisitionFixture(t)

	in := createReq()
	in.Items[0].RequestedQty = d("0")
	_, err := uc.Create(context.Background(), in, requisitor)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_PrioridadeInvalida(t *testing.T) {
	_, uc := requisitionFixture(t)

	in := createReq()
	in.Priority = "ALTISSIMA"
	_, err := uc.Create(context.Background(), in, requisitor)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmit_DonoEnvia(t *testing.T) {
	_, uc := requisitionFixture(t)
	created, err := uc.Create(context.Background(), createReq(), requisitor)
	require.NoError(t, err)

	req, err := uc.Submit(context.Background(), created.ID, requisitor)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusEnviado, req.Status)
	last := req.Timeline[len(req.Timeline)-1]
	assert.Equal(t, string(entity.StatusEnviado), last.Status)
}

func TestSubmit_NaoDonoBloqueado(t *testing.T) {
	_, uc := requisitionFixture(t)
	created, err := uc.Create(context.Background(), createReq(), requisitor)
	require.NoError(t, err)

	outro := almox.Actor{ID: "user-outro", Name: "Outro", Role: entity.RoleRequisitante}
	_, err = uc.Submit(context.Background(), created.ID, outro)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestApprove_FluxoCompleto(t *testing.T) {
	_, uc := requisitionFixture(t)
	created, err := uc.Create(context.Background(), createReq(), requisitor)
	require.NoError(t, err)
	_, err = uc.Submit(context.Background(), created.ID, requisitor)
	require.NoError(t, err)

	req, err := uc.Approve(context.Background(), created.ID, aprovador)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAprovado, req.Status)
}

func TestApprove_RequisitanteBloqueado(t *testing.T) {
	_, uc := requisitionFixture(t)
	created, err := uc.Create(context.Background(), createReq(), requisitor)
	require.NoError(t, err)
	_, err = uc.Submit(context.Background(), created.ID, requisitor)
	require.NoError(t, err)

	_, err = uc.Approve(context.Background(), created.ID, requisitor)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReject_GuardaMotivoNaTimeline(t *testing.T) {
	_, uc := requisitionFixture(t)
	created, err := uc.Create(context.Background(), createReq(), requisitor)
	require.NoError(t, err)
	_, err = uc.Submit(context.Background(), created.ID, requisitor)
	require.NoError(t, err)

	req, err := uc.Reject(context.Background(), created.ID, "orçamento esgotado", aprovador)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusReprovado, req.Status)
	last := req.Timeline[len(req.Timeline)-1]
	assert.Equal(t, "Motivo: orçamento esgotado", last.Note)
}

func TestUpdate_SoRascunhoEditavel(t *testing.T) {
	_, uc := requisitionFixture(t)
	created, err := uc.Create(context.Background(), createReq(), requisitor)
	require.NoError(t, err)

	sector := "Produção"
	req, err := uc.Update(context.Background(), created.ID, dto.UpdateRequisitionRequest{Sector: &sector}, requisitor)
	require.NoError(t, err)
	assert.Equal(t, "Produção", req.Sector)

	_, err = uc.Submit(context.Background(), created.ID, requisitor)
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateRequisitionRequest{Sector: &sector}, requisitor)
	assert.ErrorIs(t, err, domain.ErrConflict, "após o envio o rascunho deixa de ser editável")
}
