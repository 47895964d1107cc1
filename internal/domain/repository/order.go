package repository

import (
	"context"

	"github.com/polkiloo/folioorder/internal/domain/model"
)

// OrderRepository describes persistence operations with order records.
// Create assigns the order identifier; the record is immutable once
// written.
type OrderRepository interface {
	Create(ctx context.Context, snapshot model.OrderSnapshot) (*model.OrderRecord, error)
	GetByID(ctx context.Context, id string) (*model.OrderRecord, error)
}
