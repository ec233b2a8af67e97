package screen

import (
	"context"

	"go-firestore-inventory/internal/inventory"
	"go-firestore-inventory/internal/model"
)

// InventoryService is the slice of the inventory service the screens
// consume. *inventory.Service satisfies it.
type InventoryService interface {
	AddProduct(ctx context.Context, p model.Product) error
	UpdateProduct(ctx context.Context, p model.Product) error
	DeleteProduct(ctx context.Context, id string) error
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	WatchProducts(ctx context.Context) (*inventory.Subscription, error)
	CalculateTotalInventory(products []model.Product) float64
}

var _ InventoryService = (*inventory.Service)(nil)
