package repository

import "github.com/jhoicas/restopos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
// Create devuelve domain.ErrDuplicate si el username o el email ya existen.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
}
