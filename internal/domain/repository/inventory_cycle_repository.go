package repository

import "github.com/almox360/almox-api/internal/domain/entity"

// InventoryCycleRepository é o porto de persistência dos ciclos de inventário.
type InventoryCycleRepository interface {
	Create(cycle *entity.InventoryCycle) error
	GetByID(id string) (*entity.InventoryCycle, error)
	List(limit, offset int) ([]*entity.InventoryCycle, error)
	Update(cycle *entity.InventoryCycle) error
}
