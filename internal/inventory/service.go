package inventory

import (
	"context"

	"go-firestore-inventory/internal/auth"
	ierr "go-firestore-inventory/internal/errors"
	"go-firestore-inventory/internal/model"
	productRepository "go-firestore-inventory/internal/repository/product"
)

// Service scopes every product operation to the currently signed-in user.
// If no owner id can be resolved the operation fails with Unauthenticated
// before the store is contacted.
type Service struct {
	auth     auth.Gateway
	products productRepository.Repository
}

func New(authGateway auth.Gateway, products productRepository.Repository) *Service {
	return &Service{
		auth:     authGateway,
		products: products,
	}
}

func (s *Service) owner() (string, error) {
	id := s.auth.CurrentUserID()
	if id == "" {
		return "", ierr.Unauthenticated
	}
	return id, nil
}

func (s *Service) AddProduct(ctx context.Context, p model.Product) error {
	ownerID, err := s.owner()
	if err != nil {
		return err
	}
	return s.products.Add(ctx, p, ownerID)
}

func (s *Service) UpdateProduct(ctx context.Context, p model.Product) error {
	if _, err := s.owner(); err != nil {
		return err
	}
	return s.products.Update(ctx, p)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.owner(); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

func (s *Service) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	if _, err := s.owner(); err != nil {
		return nil, err
	}
	return s.products.GetByID(ctx, id)
}

// WatchProducts opens a live subscription to the signed-in user's products.
// The caller owns the returned handle and must Cancel it on every exit path.
func (s *Service) WatchProducts(ctx context.Context) (*Subscription, error) {
	ownerID, err := s.owner()
	if err != nil {
		return nil, err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	return NewSubscription(cancel, s.products.Watch(watchCtx, ownerID)), nil
}

// CalculateTotalInventory sums the per-product totals. The sum is
// commutative, so the result does not depend on list order.
func (s *Service) CalculateTotalInventory(products []model.Product) float64 {
	var total float64
	for _, p := range products {
		total += p.Total()
	}
	return total
}
