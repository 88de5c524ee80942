package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReceiptRequest body para POST /api/receipts.
// expiry em formato 2006-01-02 (opcional).
type CreateReceiptRequest struct {
	DocNumber   string           `json:"doc_number" validate:"required"`
	Supplier    string           `json:"supplier" validate:"required"`
	Date        *time.Time       `json:"date,omitempty"`
	ItemSKU     string           `json:"item_sku" validate:"required"`
	OriginalSKU string           `json:"original_sku"`
	Lot         string           `json:"lot"`
	Expiry      string           `json:"expiry" validate:"omitempty,datetime=2006-01-02"`
	Unit        string           `json:"unit"`
	Quantity    decimal.Decimal  `json:"quantity" validate:"required"`
	UnitCost    *decimal.Decimal `json:"unit_cost,omitempty"`
}

// ReceiptResponse representação pública de uma entrada.
type ReceiptResponse struct {
	ID          string          `json:"id"`
	DocNumber   string          `json:"doc_number"`
	Supplier    string          `json:"supplier"`
	Date        time.Time       `json:"date"`
	ItemSKU     string          `json:"item_sku"`
	OriginalSKU string          `json:"original_sku,omitempty"`
	Lot         string          `json:"lot,omitempty"`
	Expiry      *time.Time      `json:"expiry,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	TotalValue  decimal.Decimal `json:"total_value"`
	Status      string          `json:"status"`
	UserID      string          `json:"user_id"`
	UserName    string          `json:"user_name"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ReceiptListResponse listagem paginada de entradas.
type ReceiptListResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
	Page     PageResponse      `json:"page"`
}
