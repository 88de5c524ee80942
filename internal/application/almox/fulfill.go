package almox

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/almox360/almox-api/internal/application/dto"
	"github.com/almox360/almox-api/internal/domain"
	"github.com/almox360/almox-api/internal/domain/entity"
	"github.com/almox360/almox-api/internal/domain/repository"
	"github.com/almox360/almox-api/internal/domain/requisition"
)

// Options regras configuráveis do atendimento e da devolução.
type Options struct {
	// AllowPartial: quando false, um atendimento que não completa todas as
	// linhas da requisição é rejeitado.
	AllowPartial bool
	// AutoDevolvido: quando true, a devolução integral de todas as linhas
	// atendidas muda o status para DEVOLVIDO.
	AutoDevolvido bool
}

// FulfillmentUseCase processa atendimento e devolução de requisições.
// Cada operação roda em uma única transação: baixa/estorno de estoque,
// mutação das linhas, recálculo de status e evento de timeline são atômicos.
type FulfillmentUseCase struct {
	txRunner TxRunner
	opts     Options
}

// NewFulfillmentUseCase constrói o caso de uso.
func NewFulfillmentUseCase(txRunner TxRunner, opts Options) *FulfillmentUseCase {
	return &FulfillmentUseCase{txRunner: txRunner, opts: opts}
}

// Fulfill aplica um atendimento (total ou parcial) contra uma requisição
// APROVADO/EM_ATENDIMENTO. Toda a validação acontece antes de qualquer
// mutação: linha inexistente, qty <= 0 ou qty acima do saldo pendente
// rejeitam o lote inteiro sem efeito.
func (uc *FulfillmentUseCase) Fulfill(ctx context.Context, reqID string, lines []dto.FulfillLineRequest, actor Actor) (*entity.Requisition, error) {
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
		if err := requisition.Authorize(requisition.ActionFulfill, req.Status, actor.Role); err != nil {
			return err
		}

		// Primeira passada: valida o lote inteiro contra uma cópia das
		// linhas, sem tocar no ledger. Linhas repetidas do mesmo item
		// acumulam contra o mesmo saldo pendente.
		working := cloneItems(req.Items)
		for _, line := range lines {
			target := findItem(working, line.ItemID)
			if target == nil {
				return domain.ErrNotFound
			}
			if !line.Qty.GreaterThan(decimal.Zero) {
				return domain.ErrInvalidInput
			}
			if line.Qty.GreaterThan(target.Remaining()) {
				return domain.ErrInvalidInput
			}
			target.FulfilledQty = target.FulfilledQty.Add(line.Qty)
		}
		if !uc.opts.AllowPartial {
			for i := range working {
				if working[i].FulfilledQty.LessThan(working[i].RequestedQty) {
					return domain.ErrInvalidInput
				}
			}
		}

		// Segunda passada: baixa no ledger. Estoque insuficiente aborta a
		// transação inteira; nenhuma linha fica aplicada pela metade.
		for _, line := range lines {
			if err := ledger.Decrease(line.ItemID, line.Qty); err != nil {
				return err
			}
		}

		now := time.Now()
		req.Items = working
		req.Status = requisition.RecomputeAfterFulfill(req.Items, req.Status)
		req.UpdatedAt = now
		req.AppendEvent(entity.TimelineEntrega, actor.ID, actor.Name,
			fmt.Sprintf("Entrega de materiais realizada. Status: %s", req.Status), now)
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

func cloneItems(items []entity.RequisitionItem) []entity.RequisitionItem {
	out := make([]entity.RequisitionItem, len(items))
	copy(out, items)
	return out
}

func findItem(items []entity.RequisitionItem, itemID string) *entity.RequisitionItem {
	for i := range items {
		if items[i].ItemID == itemID {
			return &items[i]
		}
	}
	return nil
}
