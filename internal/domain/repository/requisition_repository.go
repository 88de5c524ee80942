package repository

import "github.com/almox360/almox-api/internal/domain/entity"

// RequisitionRepository é o porto de persistência de requisições.
// Linhas e timeline são armazenadas como documentos junto à requisição;
// Update regrava ambas de forma integral.
type RequisitionRepository interface {
	Create(req *entity.Requisition) error
	GetByID(id string) (*entity.Requisition, error)
	// GetByIDForUpdate bloqueia a linha da requisição (SELECT FOR UPDATE);
	// usar apenas dentro de transação.
	GetByIDForUpdate(id string) (*entity.Requisition, error)
	List(limit, offset int) ([]*entity.Requisition, error)
	Update(req *entity.Requisition) error
	// NextNumber devolve o próximo sequencial do ano (1-based).
	NextNumber(year int) (int, error)
	// CountByStatus devolve a contagem de requisições agrupada por status.
	CountByStatus() (map[entity.Status]int, error)
}
