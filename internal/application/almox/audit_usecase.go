package almox

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/almox360/almox-api/internal/application/dto"
	"github.com/almox360/almox-api/internal/domain"
	"github.com/almox360/almox-api/internal/domain/entity"
	"github.com/almox360/almox-api/internal/domain/repository"
)

// InventoryUseCase cobre os ciclos de inventário e a implantação de contagem.
type InventoryUseCase struct {
	txRunner  TxRunner
	cycleRepo repository.InventoryCycleRepository
}

// NewInventoryUseCase constrói o caso de uso.
func NewInventoryUseCase(txRunner TxRunner, cycleRepo repository.InventoryCycleRepository) *InventoryUseCase {
	return &InventoryUseCase{txRunner: txRunner, cycleRepo: cycleRepo}
}

// ApplyAudit implanta uma contagem física: para cada item cuja contagem
// difere do sistema, sobrescreve o saldo (e opcionalmente o preço) e grava
// um ciclo AJUSTADO resumindo a operação. Reconciliação destrutiva, não
// incremental: não há diff contra atendimentos em andamento.
func (uc *InventoryUseCase) ApplyAudit(ctx context.Context, in dto.ApplyAuditRequest, actor Actor) (*entity.InventoryCycle, error) {
	for _, count := range in.Counts {
		if count.Qty.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if count.Price != nil && count.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	cycle := &entity.InventoryCycle{
		ID:           uuid.New().String(),
		Date:         now,
		Responsible:  in.Responsible,
		Status:       entity.CycleStatusAjustado,
		ItemsCounted: len(in.Counts),
		Divergence:   decimal.Zero,
		Observation:  in.Observation,
		CreatedBy:    actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := uc.txRunner.RunAudit(ctx, func(
		itemRepo repository.ItemRepository,
		ledger StockLedger,
		cycleRepo repository.InventoryCycleRepository,
	) error {
		for _, count := range in.Counts {
			item, err := itemRepo.GetByID(count.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			if !item.CurrentStock.Equal(count.Qty) {
				cycle.Divergence = cycle.Divergence.Add(item.CurrentStock.Sub(count.Qty).Abs())
				if err := ledger.Overwrite(item.ID, count.Qty); err != nil {
					return err
				}
			}
			if count.Price != nil {
				if err := itemRepo.UpdatePrice(item.ID, *count.Price); err != nil {
					return err
				}
			}
		}
		return cycleRepo.Create(cycle)
	})
	if err != nil {
		return nil, err
	}
	return cycle, nil
}

// CreateCycle abre um ciclo de inventário (status ABERTO).
func (uc *InventoryUseCase) CreateCycle(ctx context.Context, in dto.CreateCycleRequest, actor Actor) (*entity.InventoryCycle, error) {
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	cycle := &entity.InventoryCycle{
		ID:          uuid.New().String(),
		Date:        date,
		Responsible: in.Responsible,
		Status:      entity.CycleStatusAberto,
		Divergence:  decimal.Zero,
		Observation: in.Observation,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.cycleRepo.Create(cycle); err != nil {
		return nil, err
	}
	return cycle, nil
}

// ListCycles devolve ciclos paginados, mais recentes primeiro.
func (uc *InventoryUseCase) ListCycles(ctx context.Context, limit, offset int) ([]*entity.InventoryCycle, error) {
	return uc.cycleRepo.List(limit, offset)
}

// UpdateCycle atualiza status/observação de um ciclo.
func (uc *InventoryUseCase) UpdateCycle(ctx context.Context, id string, in dto.UpdateCycleRequest) (*entity.InventoryCycle, error) {
	cycle, err := uc.cycleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cycle == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil {
		cycle.Status = *in.Status
	}
	if in.Observation != nil {
		cycle.Observation = *in.Observation
	}
	cycle.UpdatedAt = time.Now()
	if err := uc.cycleRepo.Update(cycle); err != nil {
		return nil, err
	}
	return cycle, nil
}
