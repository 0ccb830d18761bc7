package repository

import "github.com/jhoicas/restopos-api/internal/domain/entity"

// SalesTransactionRepository define el puerto de persistencia para ventas.
// Create devuelve domain.ErrDuplicate si transaction_number ya existe (constraint único);
// el caso de uso reintenta una única vez con un número fresco.
type SalesTransactionRepository interface {
	Create(tx *entity.SalesTransaction) error
	CreateItem(item *entity.SalesTransactionItem) error
	GetByID(id string) (*entity.SalesTransaction, error)
	GetItemsByTransactionID(transactionID string) ([]*entity.SalesTransactionItem, error)
	List(limit, offset int) ([]*entity.SalesTransaction, error)
}
