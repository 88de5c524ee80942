package repository

import (
	"time"

	"github.com/almox360/almox-api/internal/domain/entity"
)

// ReceiptRepository é o porto de persistência de entradas de material.
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	List(limit, offset int) ([]*entity.Receipt, error)
	// CountSince conta entradas criadas a partir do instante dado.
	CountSince(since time.Time) (int, error)
}
