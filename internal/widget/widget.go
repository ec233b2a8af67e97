package widget

import (
	"context"
	"sync"
	"time"

	"go-firestore-inventory/internal/inventory"
	"go-firestore-inventory/internal/model"

	"github.com/rs/zerolog/log"
)

const firstSnapshotTimeout = time.Second * 10

// InventoryService is the slice of the inventory service the widget
// consumes. *inventory.Service satisfies it.
type InventoryService interface {
	WatchProducts(ctx context.Context) (*inventory.Subscription, error)
	CalculateTotalInventory(products []model.Product) float64
}

// Widget mirrors the inventory total on a secondary surface. It reads
// through its own subscription, one per refresh tick, and cancels it before
// the tick ends; a persisted toggle masks the amount.
type Widget struct {
	mu       sync.Mutex
	svc      InventoryService
	prefs    *Prefs
	render   func(text string)
	interval time.Duration
}

func New(svc InventoryService, prefs *Prefs, interval time.Duration, render func(string)) *Widget {
	return &Widget{
		svc:      svc,
		prefs:    prefs,
		render:   render,
		interval: interval,
	}
}

// Run refreshes the widget until the context ends. Any subscription opened
// during a tick is cancelled before the tick returns, so stopping Run never
// leaks a listener.
func (w *Widget) Run(ctx context.Context) error {
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("widget stopped")
			return ctx.Err()
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

// Toggle flips the persisted hidden flag and re-renders immediately.
func (w *Widget) Toggle(ctx context.Context) error {
	if _, err := w.prefs.Toggle(); err != nil {
		return err
	}
	w.refresh(ctx)
	return nil
}

func (w *Widget) refresh(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.prefs.Hidden() {
		w.render(MaskedTotal)
		return
	}
	w.render(w.currentTotal(ctx))
}

// currentTotal resolves the owner, takes one snapshot from a fresh
// subscription and aggregates it. Signed out, timed out or failed reads all
// degrade to a zero total rather than an error surface.
func (w *Widget) currentTotal(ctx context.Context) string {
	sub, err := w.svc.WatchProducts(ctx)
	if err != nil {
		return FormatTotal(0)
	}
	defer sub.Cancel()

	select {
	case <-ctx.Done():
		return FormatTotal(0)
	case <-time.After(firstSnapshotTimeout):
		log.Error().Msg("widget: timed out waiting for a snapshot")
		return FormatTotal(0)
	case snap, ok := <-sub.Snapshots():
		if !ok || snap.Err != nil {
			return FormatTotal(0)
		}
		return FormatTotal(w.svc.CalculateTotalInventory(snap.Products))
	}
}
