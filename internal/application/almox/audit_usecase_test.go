package almox_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almox360/almox-api/internal/application/almox"
	"github.com/almox360/almox-api/internal/application/dto"
	"github.com/almox360/almox-api/internal/domain"
	"github.com/almox360/almox-api/internal/domain/entity"
)

var auditor = almox.Actor{ID: "user-audit", Name: "Auditor", Role: entity.RoleAuditor}

func auditFixture(t *testing.T) (*fakeStore, *almox.InventoryUseCase) {
	t.Helper()
	store := newFakeStore()
	return store, almox.NewInventoryUseCase(&fakeTxRunner{store}, &fakeCycleRepo{store})
}

func TestApplyAudit_SobrescreveSaldosEAcumulaDivergencia(t *testing.T) {
	store, uc := auditFixture(t)
	seedItem(store, "item-a", "MAT-001", "100")
	seedItem(store, "item-b", "MAT-002", "50")

	cycle, err := uc.ApplyAudit(context.Background(), dto.ApplyAuditRequest{
		Responsible: "Auditor",
		Counts: []dto.AuditCountRequest{
			{ItemID: "item-a", Qty: d("95")}, // falta de 5
			{ItemID: "item-b", Qty: d("53")}, // sobra de 3
		},
	}, auditor)
	require.NoError(t, err)

	assert.Equal(t, entity.CycleStatusAjustado, cycle.Status)
	assert.Equal(t, 2, cycle.ItemsCounted)
	assert.True(t, cycle.Divergence.Equal(d("8")), "divergência = |−5| + |+3|")
	assert.True(t, store.items["item-a"].CurrentStock.Equal(d("95")))
	assert.True(t, store.items["item-b"].CurrentStock.Equal(d("53")))
	assert.Len(t, store.cycles, 1)
}

func TestApplyAudit_ContagemIgualAoSistema_SemDivergencia(t *testing.T) {
	store, uc := auditFixture(t)
	seedItem(store, "item-a", "MAT-001", "100")

	cycle, err := uc.ApplyAudit(context.Background(), dto.ApplyAuditRequest{
		Responsible: "Auditor",
		Counts:      []dto.AuditCountRequest{{ItemID: "item-a", Qty: d("100")}},
	}, auditor)
	require.NoError(t, err)

	assert.True(t, cycle.Divergence.IsZero())
	assert.True(t, store.items["item-a"].CurrentStock.Equal(d("100")))
}

func TestApplyAudit_AtualizaPrecoQuandoInformado(t *testing.T) {
	store, uc := auditFixture(t)
	seedItem(store, "item-a", "MAT-001", "100")

	price := d("12.34")
	_, err := uc.ApplyAudit(context.Background(), dto.ApplyAuditRequest{
		Responsible: "Auditor",
		Counts:      []dto.AuditCountRequest{{ItemID: "item-a", Qty: d("100"), Price: &price}},
	}, auditor)
	require.NoError(t, err)

	assert.True(t, store.items["item-a"].Price.Equal(price))
}

func TestApplyAudit_ContagemNegativa_Rejeitada(t *testing.T) {
	store, uc := auditFixture(t)
	seedItem(store, "item-a", "MAT-001", "100")

	_, err := uc.ApplyAudit(context.Background(), dto.ApplyAuditRequest{
		Responsible: "Auditor",
		Counts:      []dto.AuditCountRequest{{ItemID: "item-a", Qty: d("-1")}},
	}, auditor)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.cycles)
}

func TestApplyAudit_ItemInexistente_TransacaoDesfeita(t *testing.T) {
	store, uc := auditFixture(t)
	seedItem(store, "item-a", "MAT-001", "100")

	_, err := uc.ApplyAudit(context.Background(), dto.ApplyAuditRequest{
		Responsible: "Auditor",
		Counts: []dto.AuditCountRequest{
			{ItemID: "item-a", Qty: d("90")},
			{ItemID: "fantasma", Qty: d("1")},
		},
	}, auditor)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.True(t, store.items["item-a"].CurrentStock.Equal(d("100")), "sobrescrita de item-a desfeita")
	assert.Empty(t, store.cycles)
}

func TestCreateCycle_AbreComStatusAberto(t *testing.T) {
	store, uc := auditFixture(t)

	cycle, err := uc.CreateCycle(context.Background(), dto.CreateCycleRequest{
		Responsible: "Auditor",
		Observation: "contagem mensal",
	}, auditor)
	require.NoError(t, err)

	assert.Equal(t, entity.CycleStatusAberto, cycle.Status)
	assert.Equal(t, auditor.ID, cycle.CreatedBy)
	assert.Len(t, store.cycles, 1)
}

func TestUpdateCycle_MudaStatusEObservacao(t *testing.T) {
	store, uc := auditFixture(t)
	created, err := uc.CreateCycle(context.Background(), dto.CreateCycleRequest{Responsible: "Auditor"}, auditor)
	require.NoError(t, err)

	status := entity.CycleStatusConcluido
	obs := "sem divergências"
	updated, err := uc.UpdateCycle(context.Background(), created.ID, dto.UpdateCycleRequest{
		Status:      &status,
		Observation: &obs,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.CycleStatusConcluido, updated.Status)
	assert.Equal(t, "sem divergências", updated.Observation)
	assert.Equal(t, entity.CycleStatusConcluido, store.cycles[created.ID].Status)
}

func TestUpdateCycle_Inexistente(t *testing.T) {
	_, uc := auditFixture(t)

	_, err := uc.UpdateCycle(context.Background(), "nao-existe", dto.UpdateCycleRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
