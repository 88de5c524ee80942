package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/almox360/almox-api/internal/domain"
	"github.com/almox360/almox-api/internal/domain/entity"
	"github.com/almox360/almox-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, code, description, unit, category, min_stock, max_stock, reorder_point,
		current_stock, control_lot, control_expiry, default_address, active, price, created_at, updated_at`

// ItemRepo implementação de ItemRepository sobre PostgreSQL (usável com pool ou tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository constrói o adaptador de itens. Passar pool ou tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste um novo item. CurrentStock inicia em 0.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, code, description, unit, category, min_stock, max_stock, reorder_point,
			current_stock, control_lot, control_expiry, default_address, active, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Description, item.Unit, item.Category,
		item.MinStock, item.MaxStock, item.ReorderPoint, item.CurrentStock,
		item.ControlLot, item.ControlExpiry, item.DefaultAddress, item.Active,
		item.Price, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtém um item por ID; nil se não existir.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCode obtém um item pelo código (SKU); nil se não existir.
func (r *ItemRepo) GetByCode(code string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code))
}

// List lista itens com paginação, mais recentes primeiro.
func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Update atualiza o cadastro de um item. Não toca em current_stock: estoque
// só muda via StockLedger.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET code = $2, description = $3, unit = $4, category = $5, min_stock = $6,
			max_stock = $7, reorder_point = $8, control_lot = $9, control_expiry = $10,
			default_address = $11, active = $12, price = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Description, item.Unit, item.Category,
		item.MinStock, item.MaxStock, item.ReorderPoint, item.ControlLot,
		item.ControlExpiry, item.DefaultAddress, item.Active, item.Price, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// UpdatePrice atualiza apenas o preço (usado pela implantação de inventário).
func (r *ItemRepo) UpdatePrice(itemID string, price decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE items SET price = $2, updated_at = now() WHERE id = $1`,
		itemID, price,
	)
	if err != nil {
		return fmt.Errorf("update item price: %w", err)
	}
	return nil
}

// Delete remove um item por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// ListAlerts devolve itens ativos com estoque atual <= estoque mínimo.
func (r *ItemRepo) ListAlerts() ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE active AND current_stock <= min_stock ORDER BY code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock alerts: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *ItemRepo) scanOne(row pgx.Row) (*entity.Item, error) {
	var i entity.Item
	err := row.Scan(
		&i.ID, &i.Code, &i.Description, &i.Unit, &i.Category, &i.MinStock, &i.MaxStock,
		&i.ReorderPoint, &i.CurrentStock, &i.ControlLot, &i.ControlExpiry,
		&i.DefaultAddress, &i.Active, &i.Price, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

func (r *ItemRepo) scanMany(rows pgx.Rows) ([]*entity.Item, error) {
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(
			&i.ID, &i.Code, &i.Description, &i.Unit, &i.Category, &i.MinStock, &i.MaxStock,
			&i.ReorderPoint, &i.CurrentStock, &i.ControlLot, &i.ControlExpiry,
			&i.DefaultAddress, &i.Active, &i.Price, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
