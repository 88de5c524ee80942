package almox

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/almox360/almox-api/internal/application/dto"
	"github.com/almox360/almox-api/internal/domain"
	"github.com/almox360/almox-api/internal/domain/entity"
	"github.com/almox360/almox-api/internal/domain/repository"
	"github.com/almox360/almox-api/internal/domain/requisition"
)

// Return devolve quantidades já atendidas ao estoque. Para cada linha,
// 0 < qty <= (atendido − já devolvido); qualquer violação rejeita o lote
// inteiro sem efeito. A justificativa (notes) entra na timeline.
func (uc *FulfillmentUseCase) Return(ctx context.Context, reqID string, lines []dto.FulfillLineRequest, notes string, actor Actor) (*entity.Requisition, error) {
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.Requisition
	err := uc.txRunner.Run(ctx, func(
		reqRepo repository.RequisitionRepository,
		_ repository.ItemRepository,
		ledger StockLedger,
	) error {
		req, err := reqRepo.GetByIDForUpdate(reqID)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if err := requisition.Authorize(requisition.ActionReturn, req.Status, actor.Role); err != nil {
			return err
		}

		// Valida o lote inteiro antes de qualquer mutação.
		working := cloneItems(req.Items)
		for _, line := range lines {
			target := findItem(working, line.ItemID)
			if target == nil {
				return domain.ErrNotFound
			}
			if !line.Qty.GreaterThan(decimal.Zero) {
				return domain.ErrInvalidInput
			}
			if line.Qty.GreaterThan(target.MaxReturn()) {
				return domain.ErrInvalidInput
			}
			target.ReturnedQty = target.ReturnedQty.Add(line.Qty)
		}

		for _, line := range lines {
			if err := ledger.Increase(line.ItemID, line.Qty); err != nil {
				return err
			}
		}

		now := time.Now()
		req.Items = working
		if uc.opts.AutoDevolvido && requisition.AllReturned(req.Items) {
			req.Status = entity.StatusDevolvido
		}
		req.UpdatedAt = now
		note := "Devolução"
		if notes != "" {
			note = "Devolução: " + notes
		}
		req.AppendEvent(entity.TimelineDevolucao, actor.ID, actor.Name, note, now)
		if err := reqRepo.Update(req); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
