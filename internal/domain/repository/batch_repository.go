package repository

import "github.com/almox360/almox-api/internal/domain/entity"

// BatchRepository é o porto de persistência de lotes (sugestão FEFO).
type BatchRepository interface {
	Create(batch *entity.Batch) error
	ListByItem(itemID string) ([]entity.Batch, error)
	ListAll() ([]entity.Batch, error)
}
