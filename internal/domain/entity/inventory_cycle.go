package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de um ciclo de inventário.
const (
	CycleStatusAberto    = "ABERTO"
	CycleStatusConcluido = "CONCLUIDO"
	CycleStatusAjustado  = "AJUSTADO"
)

// InventoryCycle é o registro de um inventário rotativo (contagem cíclica):
// conferência física versus sistema, com implantação destrutiva do valor contado.
type InventoryCycle struct {
	ID           string
	Date         time.Time
	Responsible  string
	Status       string
	ItemsCounted int
	// Divergence é a soma das diferenças absolutas entre contagem física e sistema.
	Divergence  decimal.Decimal
	Observation string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
