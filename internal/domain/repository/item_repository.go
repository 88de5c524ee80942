package repository

import (
	"github.com/shopspring/decimal"

	"github.com/almox360/almox-api/internal/domain/entity"
)

// ItemRepository é o porto de persistência do catálogo de itens.
// O campo CurrentStock não é alterado por Update; toda mutação de estoque
// passa pelo StockLedger.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByCode(code string) (*entity.Item, error)
	List(limit, offset int) ([]*entity.Item, error)
	Update(item *entity.Item) error
	UpdatePrice(itemID string, price decimal.Decimal) error
	Delete(id string) error
	// ListAlerts devolve itens ativos com estoque atual <= estoque mínimo.
	ListAlerts() ([]*entity.Item, error)
}
