package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/almox360/almox-api/internal/domain/entity"
	"github.com/almox360/almox-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementação de BatchRepository sobre PostgreSQL.
type BatchRepo struct {
	q Querier
}

func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

func (r *BatchRepo) Create(batch *entity.Batch) error {
	query := `
		INSERT INTO batches (id, item_id, lot_number, expiry_date, quantity, cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.ItemID, batch.LotNumber, batch.ExpiryDate,
		batch.Quantity, batch.Cost, batch.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// ListByItem devolve os lotes do item em ordem FEFO (validade mais próxima primeiro).
func (r *BatchRepo) ListByItem(itemID string) ([]entity.Batch, error) {
	query := `
		SELECT id, item_id, lot_number, expiry_date, quantity, cost, created_at
		FROM batches WHERE item_id = $1 ORDER BY expiry_date ASC`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	return r.scanBatches(rows)
}

// ListAll devolve todos os lotes, em ordem FEFO.
func (r *BatchRepo) ListAll() ([]entity.Batch, error) {
	query := `
		SELECT id, item_id, lot_number, expiry_date, quantity, cost, created_at
		FROM batches ORDER BY expiry_date ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	return r.scanBatches(rows)
}

func (r *BatchRepo) scanBatches(rows pgx.Rows) ([]entity.Batch, error) {
	var list []entity.Batch
	for rows.Next() {
		var b entity.Batch
		err := rows.Scan(&b.ID, &b.ItemID, &b.LotNumber, &b.ExpiryDate, &b.Quantity, &b.Cost, &b.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
