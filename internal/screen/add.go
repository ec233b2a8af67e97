package screen

import (
	"context"
	"errors"
	"strconv"

	ierr "go-firestore-inventory/internal/errors"
	"go-firestore-inventory/internal/model"
	"go-firestore-inventory/internal/validation"
)

// Add drives the add-product form.
type Add struct {
	svc InventoryService

	OnSaveState func(State)
	OnFormValid func(bool)
}

func NewAdd(svc InventoryService) *Add {
	return &Add{svc: svc}
}

func (a *Add) ValidateForm(code, name, price, quantity string) {
	if a.OnFormValid != nil {
		a.OnFormValid(validation.ProductFormValid(code, name, price, quantity))
	}
}

// Save persists the form as entered. Numeric fields that fail to parse are
// treated as zero; validation has already gated the submit control.
func (a *Add) Save(ctx context.Context, code, name, price, quantity string) {
	a.emit(Loading())

	p := model.Product{
		Code:     code,
		Name:     name,
		Price:    parsePrice(price),
		Quantity: parseQuantity(quantity),
	}

	if err := a.svc.AddProduct(ctx, p); err != nil {
		if errors.Is(err, ierr.Unauthenticated) {
			a.emit(Failed(MsgNotAuthenticated))
			return
		}
		a.emit(Failed(MsgSaveFailed))
		return
	}
	a.emit(Success())
}

func (a *Add) emit(s State) {
	if a.OnSaveState != nil {
		a.OnSaveState(s)
	}
}

func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseQuantity(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
