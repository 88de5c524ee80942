package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de um Receipt (entrada de material).
const (
	ReceiptStatusConcluido = "CONCLUIDO"
)

// Receipt é o registro de auditoria de uma entrada de material.
// É criado sempre, mesmo quando o SKU informado não resolve para um item do
// catálogo (nesse caso o estoque não é movimentado e fica um aviso no log).
type Receipt struct {
	ID          string
	DocNumber   string // nota fiscal / documento de origem
	Supplier    string
	Date        time.Time
	ItemSKU     string
	OriginalSKU string // código do fornecedor, quando difere do SKU interno
	Lot         string
	Expiry      *time.Time
	Unit        string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
	TotalValue  decimal.Decimal
	Status      string
	UserID      string
	UserName    string
	CreatedAt   time.Time
}
