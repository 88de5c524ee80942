// Package catalog contém os casos de uso do cadastro de itens.
package catalog

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

// ItemUseCase casos de uso do catálogo de itens.
type ItemUseCase struct {
	itemRepo repository.ItemRepository
}

// NewItemUseCase constrói o caso de uso.
func NewItemUseCase(itemRepo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo}
}

// Create cadastra um item. Padrões: active=true, current_stock=0.
// Invariante min_stock <= max_stock validado aqui, antes de persistir.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.MinStock.LessThan(decimal.Zero) || in.MaxStock.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.MaxStock.GreaterThan(decimal.Zero) && in.MinStock.GreaterThan(in.MaxStock) {
		return nil, domain.ErrInvalidInput
	}
	price := decimal.Zero
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		price = *in.Price
	}
	now := time.Now()
	item := &entity.Item{
		ID:             uuid.New().String(),
		Code:           in.Code,
		Description:    in.Description,
		Unit:           in.Unit,
		Category:       in.Category,
		MinStock:       in.MinStock,
		MaxStock:       in.MaxStock,
		ReorderPoint:   in.ReorderPoint,
		CurrentStock:   decimal.Zero,
		ControlLot:     in.ControlLot,
		ControlExpiry:  in.ControlExpiry,
		DefaultAddress: in.DefaultAddress,
		Active:         true,
		Price:          price,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID devolve um item por ID; nil se não existir.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List devolve itens paginados, mais recentes primeiro.
func (uc *ItemUseCase) List(ctx context.Context, limit, offset int) ([]dto.ItemResponse, error) {
	items, err := uc.itemRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *toItemResponse(item))
	}
	return out, nil
}

// Update aplica uma atualização parcial do cadastro. CurrentStock não passa
// por aqui: estoque só muda por entrada, atendimento, devolução ou inventário.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != nil {
		item.Code = *in.Code
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.MinStock != nil {
		item.MinStock = *in.MinStock
	}
	if in.MaxStock != nil {
		item.MaxStock = *in.MaxStock
	}
	if in.ReorderPoint != nil {
		item.ReorderPoint = *in.ReorderPoint
	}
	if in.ControlLot != nil {
		item.ControlLot = *in.ControlLot
	}
	if in.ControlExpiry != nil {
		item.ControlExpiry = *in.ControlExpiry
	}
	if in.DefaultAddress != nil {
		item.DefaultAddress = *in.DefaultAddress
	}
	if in.Active != nil {
		item.Active = *in.Active
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	if item.MaxStock.GreaterThan(decimal.Zero) && item.MinStock.GreaterThan(item.MaxStock) {
		return nil, domain.ErrInvalidInput
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete remove um item do catálogo. Nos fluxos normais prefere-se a
// desativação lógica (active=false via Update).
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(id)
}

// StockAlerts devolve itens ativos com estoque atual <= estoque mínimo.
func (uc *ItemUseCase) StockAlerts(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := uc.itemRepo.ListAlerts()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *toItemResponse(item))
	}
	return out, nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:             i.ID,
		Code:           i.Code,
		Description:    i.Description,
		Unit:           i.Unit,
		Category:       i.Category,
		MinStock:       i.MinStock,
		MaxStock:       i.MaxStock,
		ReorderPoint:   i.ReorderPoint,
		CurrentStock:   i.CurrentStock,
		ControlLot:     i.ControlLot,
		ControlExpiry:  i.ControlExpiry,
		DefaultAddress: i.DefaultAddress,
		Active:         i.Active,
		Price:          i.Price,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}
