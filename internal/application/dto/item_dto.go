package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Code           string           `json:"code" validate:"required"`
	Description    string           `json:"description" validate:"required"`
	Unit           string           `json:"unit" validate:"required"`
	Category       string           `json:"category"`
	MinStock       decimal.Decimal  `json:"min_stock"`
	MaxStock       decimal.Decimal  `json:"max_stock"`
	ReorderPoint   decimal.Decimal  `json:"reorder_point"`
	ControlLot     bool             `json:"control_lot"`
	ControlExpiry  bool             `json:"control_expiry"`
	DefaultAddress string           `json:"default_address"`
	Price          *decimal.Decimal `json:"price,omitempty"`
}

// UpdateItemRequest body para PUT /api/items/:id (atualização parcial).
// current_stock não é aceito aqui: estoque só muda por entrada, atendimento,
// devolução ou implantação de inventário.
type UpdateItemRequest struct {
	Code           *string          `json:"code,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Unit           *string          `json:"unit,omitempty"`
	Category       *string          `json:"category,omitempty"`
	MinStock       *decimal.Decimal `json:"min_stock,omitempty"`
	MaxStock       *decimal.Decimal `json:"max_stock,omitempty"`
	ReorderPoint   *decimal.Decimal `json:"reorder_point,omitempty"`
	ControlLot     *bool            `json:"control_lot,omitempty"`
	ControlExpiry  *bool            `json:"control_expiry,omitempty"`
	DefaultAddress *string          `json:"default_address,omitempty"`
	Active         *bool            `json:"active,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
}

// ItemResponse representação pública de um item do catálogo.
type ItemResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	Description    string          `json:"description"`
	Unit           string          `json:"unit"`
	Category       string          `json:"category"`
	MinStock       decimal.Decimal `json:"min_stock"`
	MaxStock       decimal.Decimal `json:"max_stock"`
	ReorderPoint   decimal.Decimal `json:"reorder_point"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
	ControlLot     bool            `json:"control_lot"`
	ControlExpiry  bool            `json:"control_expiry"`
	DefaultAddress string          `json:"default_address"`
	Active         bool            `json:"active"`
	Price          decimal.Decimal `json:"price"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ItemListResponse listagem paginada de itens.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
