package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCycleRequest body para POST /api/inventory/cycles.
type CreateCycleRequest struct {
	Date        *time.Time `json:"date,omitempty"`
	Responsible string     `json:"responsible" validate:"required"`
	Observation string     `json:"observation"`
}

// UpdateCycleRequest body para PUT /api/inventory/cycles/:id.
type UpdateCycleRequest struct {
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=ABERTO CONCLUIDO AJUSTADO"`
	Observation *string `json:"observation,omitempty"`
}

// AuditCountRequest contagem física de um item na implantação de inventário.
type AuditCountRequest struct {
	ItemID string           `json:"item_id" validate:"required"`
	Qty    decimal.Decimal  `json:"qty"`
	Price  *decimal.Decimal `json:"price,omitempty"`
}

// ApplyAuditRequest body para POST /api/inventory/audit.
// Implantação destrutiva: sobrescreve o estoque de cada item contado.
type ApplyAuditRequest struct {
	Responsible string              `json:"responsible" validate:"required"`
	Observation string              `json:"observation"`
	Counts      []AuditCountRequest `json:"counts" validate:"required,min=1,dive"`
}

// CycleResponse representação pública de um ciclo de inventário.
type CycleResponse struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	Responsible  string          `json:"responsible"`
	Status       string          `json:"status"`
	ItemsCounted int             `json:"items_counted"`
	Divergence   decimal.Decimal `json:"divergence"`
	Observation  string          `json:"observation,omitempty"`
	CreatedBy    string          `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CycleListResponse listagem paginada de ciclos.
type CycleListResponse struct {
	Cycles []CycleResponse `json:"cycles"`
	Page   PageResponse    `json:"page"`
}
