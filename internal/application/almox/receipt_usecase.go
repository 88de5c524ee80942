package almox

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/almox360/almox-api/internal/application/dto"
	"github.com/almox360/almox-api/internal/domain"
	"github.com/almox360/almox-api/internal/domain/entity"
	"github.com/almox360/almox-api/internal/domain/repository"
)

// ReceiptUseCase registra entradas de material e o acréscimo de estoque.
type ReceiptUseCase struct {
	txRunner    TxRunner
	receiptRepo repository.ReceiptRepository
}

// NewReceiptUseCase constrói o caso de uso. receiptRepo é atado ao pool e
// usado só na listagem.
func NewReceiptUseCase(txRunner TxRunner, receiptRepo repository.ReceiptRepository) *ReceiptUseCase {
	return &ReceiptUseCase{txRunner: txRunner, receiptRepo: receiptRepo}
}

// Create registra uma entrada. O SKU é resolvido pelo código do item: se
// encontrado, o estoque é acrescido (e um lote criado quando o item controla
// lote); se não, a entrada é criada mesmo assim e fica um aviso no log —
// assimetria intencional com o atendimento, que é estrito.
func (uc *ReceiptUseCase) Create(ctx context.Context, in dto.CreateReceiptRequest, actor Actor) (*entity.Receipt, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	unitCost := decimal.Zero
	if in.UnitCost != nil {
		if in.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		unitCost = *in.UnitCost
	}
	var expiry *time.Time
	if in.Expiry != "" {
		t, err := time.Parse("2006-01-02", in.Expiry)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expiry = &t
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	receipt := &entity.Receipt{
		ID:          uuid.New().String(),
		DocNumber:   in.DocNumber,
		Supplier:    in.Supplier,
		Date:        date,
		ItemSKU:     in.ItemSKU,
		OriginalSKU: in.OriginalSKU,
		Lot:         in.Lot,
		Expiry:      expiry,
		Unit:        in.Unit,
		Quantity:    in.Quantity,
		UnitCost:    unitCost,
		TotalValue:  in.Quantity.Mul(unitCost),
		Status:      entity.ReceiptStatusConcluido,
		UserID:      actor.ID,
		UserName:    actor.Name,
		CreatedAt:   now,
	}

	err := uc.txRunner.RunIntake(ctx, func(
		itemRepo repository.ItemRepository,
		ledger StockLedger,
		receiptRepo repository.ReceiptRepository,
		batchRepo repository.BatchRepository,
	) error {
		item, err := itemRepo.GetByCode(in.ItemSKU)
		if err != nil {
			return err
		}
		if item != nil {
			if err := ledger.Increase(item.ID, in.Quantity); err != nil {
				return err
			}
			if item.ControlLot && in.Lot != "" && expiry != nil {
				batch := &entity.Batch{
					ID:         uuid.New().String(),
					ItemID:     item.ID,
					LotNumber:  in.Lot,
					ExpiryDate: *expiry,
					Quantity:   in.Quantity,
					Cost:       unitCost,
					CreatedAt:  now,
				}
				if err := batchRepo.Create(batch); err != nil {
					return err
				}
			}
		} else {
			log.Warn().
				Str("item_sku", in.ItemSKU).
				Str("doc_number", in.DocNumber).
				Msg("item não encontrado para atualização de estoque; entrada registrada sem movimentação")
		}
		return receiptRepo.Create(receipt)
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// List devolve entradas paginadas, mais recentes primeiro.
func (uc *ReceiptUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Receipt, error) {
	return uc.receiptRepo.List(limit, offset)
}
