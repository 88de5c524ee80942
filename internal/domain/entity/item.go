package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa um material do catálogo do almoxarifado (SKU único por código).
// CurrentStock só é mutado por Entrada (+), Atendimento (−), Devolução (+) ou
// Implantação de inventário (=); nunca por edição direta do cadastro.
type Item struct {
	ID             string
	Code           string // SKU, único
	Description    string
	Unit           string // UN, CX, KG...
	Category       string
	MinStock       decimal.Decimal
	MaxStock       decimal.Decimal
	ReorderPoint   decimal.Decimal
	CurrentStock   decimal.Decimal
	ControlLot     bool
	ControlExpiry  bool
	DefaultAddress string // endereço físico padrão (corredor/prateleira)
	Active         bool   // desativação lógica; itens nunca são apagados nos fluxos normais
	Price          decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BelowMin informa se o item está no nível de alerta (estoque atual <= mínimo).
func (i *Item) BelowMin() bool {
	return i.CurrentStock.LessThanOrEqual(i.MinStock)
}
