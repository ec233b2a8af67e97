package screen

import (
	"context"
	"errors"

	ierr "go-firestore-inventory/internal/errors"
	"go-firestore-inventory/internal/model"
	"go-firestore-inventory/internal/validation"
)

// Edit drives the edit form. The code is shown read-only: it is fixed at
// creation, only name, price and quantity can change.
type Edit struct {
	svc InventoryService

	OnProduct   func(*model.Product)
	OnSaveState func(State)
	OnFormValid func(bool)
}

func NewEdit(svc InventoryService) *Edit {
	return &Edit{svc: svc}
}

func (e *Edit) Load(ctx context.Context, id string) {
	if e.OnProduct == nil {
		return
	}

	p, err := e.svc.GetProduct(ctx, id)
	if err != nil {
		e.OnProduct(nil)
		return
	}
	e.OnProduct(p)
}

func (e *Edit) ValidateForm(name, price, quantity string) {
	if e.OnFormValid != nil {
		e.OnFormValid(validation.EditFormValid(name, price, quantity))
	}
}

func (e *Edit) Save(ctx context.Context, id, name, price, quantity string) {
	e.emit(Loading())

	p := model.Product{
		ID:       id,
		Name:     name,
		Price:    parsePrice(price),
		Quantity: parseQuantity(quantity),
	}

	if err := e.svc.UpdateProduct(ctx, p); err != nil {
		if errors.Is(err, ierr.Unauthenticated) {
			e.emit(Failed(MsgNotAuthenticated))
			return
		}
		e.emit(Failed(MsgUpdateFailed))
		return
	}
	e.emit(Success())
}

func (e *Edit) emit(s State) {
	if e.OnSaveState != nil {
		e.OnSaveState(s)
	}
}
