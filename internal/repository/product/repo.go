package product

import (
	"context"
	"fmt"

	"go-firestore-inventory/internal/database"
	ierr "go-firestore-inventory/internal/errors"
	"go-firestore-inventory/internal/model"
	"go-firestore-inventory/internal/repository/filter"
	"go-firestore-inventory/internal/repository/helper"
	"go-firestore-inventory/internal/repository/ops"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ProductRepository struct {
	db database.Client
}

var _ Repository = ProductRepository{}

func New(db database.Client) ProductRepository {
	return ProductRepository{
		db: db,
	}
}

func (r ProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {

	docRef := r.db.Collection(productNode).Doc(id)
	docSnap, err := r.db.GetDoc(ctx, docRef)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ierr.NotFound
		}
		return nil, fmt.Errorf("get product: %w, id: %s", err, id)
	}

	product := &model.Product{}
	if err = docSnap.DataTo(product); err != nil {
		return nil, fmt.Errorf("get product: %w, id: %s", err, id)
	}

	product.ID = docSnap.Ref.ID
	return product, nil
}

// Add persists a new record owned by ownerID. The store assigns the id; it
// becomes observable through Watch, not through the return value.
func (r ProductRepository) Add(ctx context.Context, data model.Product, ownerID string) error {

	doc := map[string]interface{}{
		CodeFieldPath:     data.Code,
		NameFieldPath:     data.Name,
		PriceFieldPath:    data.Price,
		QuantityFieldPath: data.Quantity,
		OwnerFieldPath:    ownerID,
	}

	if _, err := r.db.AddDoc(ctx, r.db.Collection(productNode), doc); err != nil {
		return fmt.Errorf("add product: %w", err)
	}

	return nil
}

// Update overwrites the mutable fields of the identified record. The code
// and the owner id are set at creation time and are never part of the
// update payload.
func (r ProductRepository) Update(ctx context.Context, data model.Product) error {

	if data.ID == "" {
		return fmt.Errorf("update product: %w", ierr.NotFound)
	}

	docRef := r.db.Collection(productNode).Doc(data.ID)
	updates := []firestore.Update{
		{Path: NameFieldPath, Value: data.Name},
		{Path: PriceFieldPath, Value: data.Price},
		{Path: QuantityFieldPath, Value: data.Quantity},
	}

	if _, err := r.db.UpdateDoc(ctx, docRef, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("update product: %w, id: %s", ierr.NotFound, data.ID)
		}
		return fmt.Errorf("update product: %w, id: %s", err, data.ID)
	}
	return nil
}

func (r ProductRepository) Delete(ctx context.Context, id string) error {

	docRef := r.db.Collection(productNode).Doc(id)

	if _, err := r.db.DeleteDoc(ctx, docRef); err != nil {
		if status.Code(err) == codes.NotFound || status.Code(err) == codes.FailedPrecondition {
			return fmt.Errorf("delete product: %w, id: %s", ierr.NotFound, id)
		}
		return fmt.Errorf("delete product: %w, id: %s", err, id)
	}

	return nil
}

// Watch opens a live query filtered to the owner's records. Every matching
// server-side change produces a fresh, complete snapshot list. The stream
// ends when the context is cancelled or the listener fails.
func (r ProductRepository) Watch(ctx context.Context, ownerID string) <-chan Snapshot {

	ch := make(chan Snapshot)

	go func() {
		defer close(ch)

		query := r.db.Collection(productNode).Query
		events := helper.WatchQuery(ctx, r.db, query,
			[]filter.Where{{Path: OwnerFieldPath, Op: ops.Equal, Value: ownerID}})

		for e := range events {
			if e.Err != nil {
				log.Error().Err(e.Err).Msg("product repo: listener failed")
				helper.NonblockingWrite(ctx, channelWriteTimeout, ch, Snapshot{Err: e.Err})
				return
			}

			products := make([]model.Product, 0, len(e.Docs))
			for _, doc := range e.Docs {
				p := model.Product{}
				if err := doc.DataTo(&p); err != nil {
					log.Error().Err(err).Msgf("product repo: failed to convert doc %s", doc.Ref.ID)
					continue
				}
				p.ID = doc.Ref.ID
				products = append(products, p)
			}

			if err := helper.NonblockingWrite(ctx, channelWriteTimeout, ch, Snapshot{Products: products}); err != nil {
				return
			}
		}
	}()

	return ch
}
