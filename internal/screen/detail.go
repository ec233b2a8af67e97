package screen

import (
	"context"
	"errors"

	ierr "go-firestore-inventory/internal/errors"
	"go-firestore-inventory/internal/model"
)

// Detail drives the product detail screen: show one record, allow deleting it.
type Detail struct {
	svc InventoryService

	OnProduct     func(*model.Product)
	OnDeleteState func(State)
}

func NewDetail(svc InventoryService) *Detail {
	return &Detail{svc: svc}
}

// Load fetches the record. On failure the observer receives nil.
func (d *Detail) Load(ctx context.Context, id string) {
	if d.OnProduct == nil {
		return
	}

	p, err := d.svc.GetProduct(ctx, id)
	if err != nil {
		d.OnProduct(nil)
		return
	}
	d.OnProduct(p)
}

func (d *Detail) Delete(ctx context.Context, id string) {
	d.emit(Loading())

	if err := d.svc.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, ierr.Unauthenticated) {
			d.emit(Failed(MsgNotAuthenticated))
			return
		}
		d.emit(Failed(MsgDeleteFailed))
		return
	}
	d.emit(Success())
}

func (d *Detail) emit(s State) {
	if d.OnDeleteState != nil {
		d.OnDeleteState(s)
	}
}
