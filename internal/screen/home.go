package screen

import (
	"context"
	"errors"

	"go-firestore-inventory/internal/auth"
	ierr "go-firestore-inventory/internal/errors"
	"go-firestore-inventory/internal/inventory"
	"go-firestore-inventory/internal/model"
)

// Home drives the product list screen. Unlike the one-shot screens its
// subscription stays open: every upstream emission replaces the displayed
// list wholesale. The loading indicator shows only until the first
// emission; an unchanged snapshot (same ids, same fields) is not re-rendered.
type Home struct {
	svc  InventoryService
	auth auth.Gateway

	OnProducts func([]model.Product)
	OnTotal    func(float64)
	OnLoading  func(bool)
	OnError    func(string)

	sub *inventory.Subscription
}

func NewHome(svc InventoryService, gateway auth.Gateway) *Home {
	return &Home{svc: svc, auth: gateway}
}

// LoadProducts (re)opens the live subscription. A previous subscription is
// cancelled first, so at most one stream feeds the screen.
func (h *Home) LoadProducts(ctx context.Context) {
	h.Close()

	h.emitLoading(true)

	sub, err := h.svc.WatchProducts(ctx)
	if err != nil {
		h.emitLoading(false)
		if errors.Is(err, ierr.Unauthenticated) {
			h.emitError(MsgNotAuthenticated)
			return
		}
		h.emitError(MsgLoadFailed)
		return
	}

	h.sub = sub
	go h.consume(sub)
}

func (h *Home) consume(sub *inventory.Subscription) {
	var rendered []model.Product
	first := true

	for snap := range sub.Snapshots() {
		if snap.Err != nil {
			// the subscription is dead; the user re-triggers by
			// re-entering the screen, there is no auto-retry
			if first {
				h.emitLoading(false)
			}
			h.emitError(MsgLoadFailed)
			return
		}

		if first {
			h.emitLoading(false)
			first = false
		} else if DiffProducts(rendered, snap.Products).Unchanged() {
			continue
		}

		rendered = snap.Products
		if h.OnProducts != nil {
			h.OnProducts(snap.Products)
		}
		if h.OnTotal != nil {
			h.OnTotal(h.svc.CalculateTotalInventory(snap.Products))
		}
	}
}

// Close cancels the subscription. Safe to call on every exit path; after it
// returns no observer fires again.
func (h *Home) Close() {
	if h.sub != nil {
		h.sub.Cancel()
		h.sub = nil
	}
}

func (h *Home) Logout() {
	h.Close()
	h.auth.Logout()
}

func (h *Home) IsLoggedIn() bool {
	return h.auth.IsLoggedIn()
}

func (h *Home) emitLoading(loading bool) {
	if h.OnLoading != nil {
		h.OnLoading(loading)
	}
}

func (h *Home) emitError(msg string) {
	if h.OnError != nil {
		h.OnError(msg)
	}
}
