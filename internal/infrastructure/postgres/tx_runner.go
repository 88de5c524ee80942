package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/almox360/almox-api/internal/application/almox"
	"github.com/almox360/almox-api/internal/domain/repository"
)

var _ almox.TxRunner = (*TxRunner)(nil)

// TxRunner executa funções de caso de uso dentro de uma transação PostgreSQL,
// entregando repositórios e ledger ligados à tx. Rollback em erro, Commit em
// sucesso.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre uma transação para operações do workflow de requisições.
func (t *TxRunner) Run(ctx context.Context, fn func(reqRepo repository.RequisitionRepository, itemRepo repository.ItemRepository, ledger almox.StockLedger) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewRequisitionRepository(tx), NewItemRepository(tx), NewStockLedger(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunIntake abre uma transação para o recebimento de mercadorias.
func (t *TxRunner) RunIntake(ctx context.Context, fn func(itemRepo repository.ItemRepository, ledger almox.StockLedger, receiptRepo repository.ReceiptRepository, batchRepo repository.BatchRepository) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewItemRepository(tx), NewStockLedger(tx), NewReceiptRepository(tx), NewBatchRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAudit abre uma transação para o ajuste de inventário.
func (t *TxRunner) RunAudit(ctx context.Context, fn func(itemRepo repository.ItemRepository, ledger almox.StockLedger, cycleRepo repository.InventoryCycleRepository) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewItemRepository(tx), NewStockLedger(tx), NewInventoryCycleRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
