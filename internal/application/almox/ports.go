// Package almox contém os casos de uso do almoxarifado: ciclo de vida de
// requisições, atendimento, devolução, entradas e implantação de inventário.
package almox

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/almox360/almox-api/internal/domain/repository"
)

// Actor identifica quem executa uma operação de domínio. Substitui o estado
// de sessão ambiente: todo caso de uso recebe o ator explicitamente.
type Actor struct {
	ID   string
	Name string
	Role string
}

// StockLedger é a fonte única de verdade do estoque atual por item.
// Toda mutação de CurrentStock passa por aqui, com a linha do item bloqueada
// quando executado dentro de transação.
type StockLedger interface {
	// Increase soma qty (> 0) ao estoque do item. Usado por entrada e devolução.
	Increase(itemID string, qty decimal.Decimal) error
	// Decrease subtrai qty (> 0) do estoque; falha com ErrInsufficientStock
	// se qty for maior que o saldo atual. Usado pelo atendimento.
	Decrease(itemID string, qty decimal.Decimal) error
	// Overwrite substitui o saldo por qty (>= 0). Usado apenas pela
	// implantação de inventário; intencionalmente destrutivo.
	Overwrite(itemID string, qty decimal.Decimal) error
}

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios e ledger atados a essa transação. Garante que mutação de
// estoque, linhas da requisição e timeline sejam uma unidade atômica.
type TxRunner interface {
	// Run: workflow de requisições (criar, enviar, aprovar, atender, devolver).
	Run(ctx context.Context, fn func(
		reqRepo repository.RequisitionRepository,
		itemRepo repository.ItemRepository,
		ledger StockLedger,
	) error) error

	// RunIntake: entrada de material (receipt + estoque + lote).
	RunIntake(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		ledger StockLedger,
		receiptRepo repository.ReceiptRepository,
		batchRepo repository.BatchRepository,
	) error) error

	// RunAudit: implantação de inventário (sobrescrita de saldos + ciclo).
	RunAudit(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		ledger StockLedger,
		cycleRepo repository.InventoryCycleRepository,
	) error) error
}
