package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/almox360/almox-api/internal/application/almox"
	"github.com/almox360/almox-api/internal/domain"
)

var _ almox.StockLedger = (*StockLedger)(nil)

// StockLedger implementação do ledger de estoque sobre items.current_stock.
// Cada mutação bloqueia a linha do item (SELECT FOR UPDATE); usado dentro do
// TxRunner para que a checagem de saldo e a escrita sejam atômicas.
type StockLedger struct {
	q Querier
}

// NewStockLedger constrói o ledger. Passar pool ou tx (Querier).
func NewStockLedger(q Querier) *StockLedger {
	return &StockLedger{q: q}
}

// Increase soma qty (> 0) ao estoque do item.
func (l *StockLedger) Increase(itemID string, qty decimal.Decimal) error {
	if !qty.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	current, err := l.lock(itemID)
	if err != nil {
		return err
	}
	return l.write(itemID, current.Add(qty))
}

// Decrease subtrai qty (> 0); falha com ErrInsufficientStock se o saldo for
// menor que qty. O estoque nunca fica negativo.
func (l *StockLedger) Decrease(itemID string, qty decimal.Decimal) error {
	if !qty.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	current, err := l.lock(itemID)
	if err != nil {
		return err
	}
	if current.LessThan(qty) {
		return domain.ErrInsufficientStock
	}
	return l.write(itemID, current.Sub(qty))
}

// Overwrite substitui o saldo por qty (>= 0). Só a implantação de inventário
// usa este caminho.
func (l *StockLedger) Overwrite(itemID string, qty decimal.Decimal) error {
	if qty.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if _, err := l.lock(itemID); err != nil {
		return err
	}
	return l.write(itemID, qty)
}

// lock carrega o saldo atual bloqueando a linha do item.
func (l *StockLedger) lock(itemID string) (decimal.Decimal, error) {
	var current decimal.Decimal
	err := l.q.QueryRow(context.Background(),
		`SELECT current_stock FROM items WHERE id = $1 FOR UPDATE`, itemID,
	).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("lock item stock: %w", err)
	}
	return current, nil
}

func (l *StockLedger) write(itemID string, qty decimal.Decimal) error {
	_, err := l.q.Exec(context.Background(),
		`UPDATE items SET current_stock = $2, updated_at = now() WHERE id = $1`,
		itemID, qty,
	)
	if err != nil {
		return fmt.Errorf("update item stock: %w", err)
	}
	return nil
}
