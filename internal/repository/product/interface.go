package product

import (
	"context"

	"go-firestore-inventory/internal/model"
)

// Snapshot is one emission of a live product query: the complete current
// list of the watched owner's products, or a terminal listener error.
type Snapshot struct {
	Products []model.Product
	Err      error
}

type Repository interface {
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Add(ctx context.Context, data model.Product, ownerID string) error
	Update(ctx context.Context, data model.Product) error
	Delete(ctx context.Context, id string) error
	Watch(ctx context.Context, ownerID string) <-chan Snapshot
}
