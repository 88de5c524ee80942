package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Batch é um lote de um item com validade, usado para sugestão FEFO no picking.
// O atendimento debita do estoque agregado do item; a quantidade do lote é
// informativa para a separação, não um saldo transacional.
type Batch struct {
	ID         string
	ItemID     string
	LotNumber  string
	ExpiryDate time.Time
	Quantity   decimal.Decimal
	Cost       decimal.Decimal
	CreatedAt  time.Time
}
