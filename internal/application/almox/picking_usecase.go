package almox

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/almox360/almox-api/internal/application/dto"
	"github.com/almox360/almox-api/internal/domain"
	"github.com/almox360/almox-api/internal/domain/repository"
	"github.com/almox360/almox-api/internal/domain/requisition"
)

// PickingUseCase monta a lista de separação de uma requisição com sugestão
// de lotes por FEFO. Apenas exibição: o atendimento debita do estoque
// agregado, não do lote.
type PickingUseCase struct {
	reqRepo   repository.RequisitionRepository
	itemRepo  repository.ItemRepository
	batchRepo repository.BatchRepository
}

// NewPickingUseCase constrói o caso de uso.
func NewPickingUseCase(
	reqRepo repository.RequisitionRepository,
	itemRepo repository.ItemRepository,
	batchRepo repository.BatchRepository,
) *PickingUseCase {
	return &PickingUseCase{reqRepo: reqRepo, itemRepo: itemRepo, batchRepo: batchRepo}
}

// Suggest devolve, para cada linha pendente da requisição, o endereço padrão
// do item e os lotes ordenados por validade crescente.
func (uc *PickingUseCase) Suggest(ctx context.Context, reqID string) ([]dto.PickingSuggestionResponse, error) {
	req, err := uc.reqRepo.GetByID(reqID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}

	out := make([]dto.PickingSuggestionResponse, 0, len(req.Items))
	for _, line := range req.Items {
		if !line.Remaining().GreaterThan(decimal.Zero) {
			continue
		}
		suggestion := dto.PickingSuggestionResponse{
			ItemID:       line.ItemID,
			Description:  line.Description,
			Unit:         line.Unit,
			RemainingQty: line.Remaining(),
		}
		item, err := uc.itemRepo.GetByID(line.ItemID)
		if err != nil {
			return nil, err
		}
		if item != nil {
			suggestion.DefaultAddress = item.DefaultAddress
			if item.ControlLot {
				batches, err := uc.batchRepo.ListByItem(item.ID)
				if err != nil {
					return nil, err
				}
				requisition.SortFEFO(batches)
				for _, b := range batches {
					suggestion.Batches = append(suggestion.Batches, dto.BatchResponse{
						ID:         b.ID,
						LotNumber:  b.LotNumber,
						ExpiryDate: b.ExpiryDate,
						Quantity:   b.Quantity,
					})
				}
			}
		}
		out = append(out, suggestion)
	}
	return out, nil
}
