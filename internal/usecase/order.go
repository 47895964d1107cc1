package usecase

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/folioorder/internal/domain/errors"
	"github.com/polkiloo/folioorder/internal/domain/model"
	"github.com/polkiloo/folioorder/internal/domain/repository"
)

// OrderUseCase encapsulates order record lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Submit validates the snapshot's contact block and persists it as a
// new order record with a store-assigned identifier.
func (u *OrderUseCase) Submit(ctx context.Context, snapshot model.OrderSnapshot) (*model.OrderRecord, error) {
	if !HasContact(snapshot.Name, snapshot.Email) {
		return nil, domainErrors.ErrMissingContact
	}
	return u.orders.Create(ctx, snapshot)
}

// Get returns a persisted order record by its identifier.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.OrderRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domainErrors.ErrInvalidOrderID
	}
	return u.orders.GetByID(ctx, id)
}
