package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/almox360/almox-api/internal/domain/entity"
	"github.com/almox360/almox-api/internal/domain/repository"
)

var _ repository.RequisitionRepository = (*RequisitionRepo)(nil)

const requisitionColumns = `id, number, year, sector, requester_id, requester_name, date,
		priority, status, observations, items, timeline, created_at, updated_at`

// RequisitionRepo implementação de RequisitionRepository sobre PostgreSQL.
// Linhas e timeline ficam em colunas jsonb junto à requisição, regravadas
// integralmente a cada Update.
type RequisitionRepo struct {
	q Querier
}

// NewRequisitionRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewRequisitionRepository(q Querier) *RequisitionRepo {
	return &RequisitionRepo{q: q}
}

// Create persiste uma nova requisição com linhas e timeline.
func (r *RequisitionRepo) Create(req *entity.Requisition) error {
	items, timeline, err := marshalDocs(req)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO requisitions (id, number, year, sector, requester_id, requester_name, date,
			priority, status, observations, items, timeline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.q.Exec(context.Background(), query,
		req.ID, req.Number, req.Year, req.Sector, req.RequesterID, req.RequesterName,
		req.Date, req.Priority, string(req.Status), req.Observations, items, timeline,
		req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert requisition: %w", err)
	}
	return nil
}

// GetByID obtém uma requisição por ID; nil se não existir.
func (r *RequisitionRepo) GetByID(id string) (*entity.Requisition, error) {
	query := `SELECT ` + requisitionColumns + ` FROM requisitions WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByIDForUpdate obtém a requisição bloqueando a linha (SELECT FOR UPDATE).
func (r *RequisitionRepo) GetByIDForUpdate(id string) (*entity.Requisition, error) {
	query := `SELECT ` + requisitionColumns + ` FROM requisitions WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// List lista requisições com paginação, mais recentes primeiro.
func (r *RequisitionRepo) List(limit, offset int) ([]*entity.Requisition, error) {
	query := `SELECT ` + requisitionColumns + ` FROM requisitions ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list requisitions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Requisition
	for rows.Next() {
		req, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

// Update regrava status, linhas, timeline e campos editáveis.
func (r *RequisitionRepo) Update(req *entity.Requisition) error {
	items, timeline, err := marshalDocs(req)
	if err != nil {
		return err
	}
	query := `
		UPDATE requisitions SET sector = $2, priority = $3, status = $4, observations = $5,
			items = $6, timeline = $7, updated_at = $8
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		req.ID, req.Sector, req.Priority, string(req.Status), req.Observations,
		items, timeline, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update requisition: %w", err)
	}
	return nil
}

// NextNumber devolve o próximo sequencial do ano. Chamar dentro de transação
// junto com o Create correspondente.
func (r *RequisitionRepo) NextNumber(year int) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(CAST(SPLIT_PART(number, '/', 1) AS INT)), 0) + 1
		 FROM requisitions WHERE year = $1`, year,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next requisition number: %w", err)
	}
	return n, nil
}

// CountByStatus devolve a contagem de requisições agrupada por status.
func (r *RequisitionRepo) CountByStatus() (map[entity.Status]int, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT status, COUNT(*) FROM requisitions GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count requisitions by status: %w", err)
	}
	defer rows.Close()
	out := make(map[entity.Status]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out[entity.Status(status)] = count
	}
	return out, rows.Err()
}

func marshalDocs(req *entity.Requisition) (items, timeline []byte, err error) {
	items, err = json.Marshal(req.Items)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal requisition items: %w", err)
	}
	timeline, err = json.Marshal(req.Timeline)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal requisition timeline: %w", err)
	}
	return items, timeline, nil
}

func (r *RequisitionRepo) scanOne(row pgx.Row) (*entity.Requisition, error) {
	req, err := scanRequisition(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get requisition: %w", err)
	}
	return req, nil
}

func (r *RequisitionRepo) scanRow(rows pgx.Rows) (*entity.Requisition, error) {
	req, err := scanRequisition(rows)
	if err != nil {
		return nil, fmt.Errorf("scan requisition: %w", err)
	}
	return req, nil
}

func scanRequisition(row pgx.Row) (*entity.Requisition, error) {
	var req entity.Requisition
	var status string
	var items, timeline []byte
	err := row.Scan(
		&req.ID, &req.Number, &req.Year, &req.Sector, &req.RequesterID, &req.RequesterName,
		&req.Date, &req.Priority, &status, &req.Observations, &items, &timeline,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	req.Status = entity.Status(status)
	if len(items) > 0 {
		if err := json.Unmarshal(items, &req.Items); err != nil {
			return nil, fmt.Errorf("unmarshal requisition items: %w", err)
		}
	}
	if len(timeline) > 0 {
		if err := json.Unmarshal(timeline, &req.Timeline); err != nil {
			return nil, fmt.Errorf("unmarshal requisition timeline: %w", err)
		}
	}
	return &req, nil
}
