package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/almox360/almox-api/internal/domain/entity"
	"github.com/almox360/almox-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementação de ReceiptRepository sobre PostgreSQL.
type ReceiptRepo struct {
	q Querier
}

func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	query := `
		INSERT INTO receipts (id, doc_number, supplier, date, item_sku, original_sku, lot,
			expiry, unit, quantity, unit_cost, total_value, status, user_id, user_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.DocNumber, receipt.Supplier, receipt.Date, receipt.ItemSKU,
		receipt.OriginalSKU, receipt.Lot, receipt.Expiry, receipt.Unit, receipt.Quantity,
		receipt.UnitCost, receipt.TotalValue, receipt.Status, receipt.UserID,
		receipt.UserName, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

func (r *ReceiptRepo) List(limit, offset int) ([]*entity.Receipt, error) {
	query := `
		SELECT id, doc_number, supplier, date, item_sku, original_sku, lot, expiry,
			unit, quantity, unit_cost, total_value, status, user_id, user_name, created_at
		FROM receipts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		var rec entity.Receipt
		err := rows.Scan(
			&rec.ID, &rec.DocNumber, &rec.Supplier, &rec.Date, &rec.ItemSKU,
			&rec.OriginalSKU, &rec.Lot, &rec.Expiry, &rec.Unit, &rec.Quantity,
			&rec.UnitCost, &rec.TotalValue, &rec.Status, &rec.UserID,
			&rec.UserName, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

func (r *ReceiptRepo) CountSince(since time.Time) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM receipts WHERE created_at >= $1`, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count receipts: %w", err)
	}
	return n, nil
}
