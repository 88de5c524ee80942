package repository

import "github.com/almox360/almox-api/internal/domain/entity"

// UserRepository é o porto de persistência de perfis de usuário.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByLogin(login string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
