package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/almox360/almox-api/internal/domain/entity"
	"github.com/almox360/almox-api/internal/domain/repository"
)

var _ repository.InventoryCycleRepository = (*InventoryCycleRepo)(nil)

// InventoryCycleRepo implementação de InventoryCycleRepository sobre PostgreSQL.
type InventoryCycleRepo struct {
	q Querier
}

func NewInventoryCycleRepository(q Querier) *InventoryCycleRepo {
	return &InventoryCycleRepo{q: q}
}

const cycleColumns = `id, date, responsible, status, items_counted, divergence,
		observation, created_by, created_at, updated_at`

func (r *InventoryCycleRepo) Create(cycle *entity.InventoryCycle) error {
	query := `
		INSERT INTO inventory_cycles (id, date, responsible, status, items_counted,
			divergence, observation, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		cycle.ID, cycle.Date, cycle.Responsible, cycle.Status, cycle.ItemsCounted,
		cycle.Divergence, cycle.Observation, cycle.CreatedBy, cycle.CreatedAt, cycle.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory cycle: %w", err)
	}
	return nil
}

func (r *InventoryCycleRepo) GetByID(id string) (*entity.InventoryCycle, error) {
	query := `SELECT ` + cycleColumns + ` FROM inventory_cycles WHERE id = $1`
	cycle, err := scanCycle(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory cycle: %w", err)
	}
	return cycle, nil
}

func (r *InventoryCycleRepo) List(limit, offset int) ([]*entity.InventoryCycle, error) {
	query := `SELECT ` + cycleColumns + ` FROM inventory_cycles ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory cycles: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryCycle
	for rows.Next() {
		cycle, err := scanCycle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory cycle: %w", err)
		}
		list = append(list, cycle)
	}
	return list, rows.Err()
}

func (r *InventoryCycleRepo) Update(cycle *entity.InventoryCycle) error {
	query := `
		UPDATE inventory_cycles SET responsible = $2, status = $3, items_counted = $4,
			divergence = $5, observation = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cycle.ID, cycle.Responsible, cycle.Status, cycle.ItemsCounted,
		cycle.Divergence, cycle.Observation, cycle.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory cycle: %w", err)
	}
	return nil
}

func scanCycle(row pgx.Row) (*entity.InventoryCycle, error) {
	var c entity.InventoryCycle
	err := row.Scan(
		&c.ID, &c.Date, &c.Responsible, &c.Status, &c.ItemsCounted, &c.Divergence,
		&c.Observation, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
