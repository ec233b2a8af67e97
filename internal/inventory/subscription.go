package inventory

import (
	"context"
	"sync"

	productRepository "go-firestore-inventory/internal/repository/product"
)

// Subscription is a cancellable handle on a live product stream. Cancel is
// synchronous: once it returns, no further snapshot is delivered, even if
// the store emits late. The snapshot channel closes on every exit path.
type Subscription struct {
	ch     chan productRepository.Snapshot
	cancel context.CancelFunc
	stop   chan struct{}
	done   chan struct{}
	once   sync.Once
}

// NewSubscription wraps an upstream snapshot stream in a cancellable handle.
// The cancel func must tear down the upstream listener.
func NewSubscription(cancel context.CancelFunc, upstream <-chan productRepository.Snapshot) *Subscription {
	s := &Subscription{
		ch:     make(chan productRepository.Snapshot),
		cancel: cancel,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	go s.forward(upstream)
	return s
}

func (s *Subscription) forward(upstream <-chan productRepository.Snapshot) {
	defer close(s.done)
	defer close(s.ch)

	for {
		select {
		case <-s.stop:
			return
		case snap, ok := <-upstream:
			if !ok {
				return
			}
			select {
			case s.ch <- snap:
			case <-s.stop:
				return
			}
		}
	}
}

// Snapshots is the stream of complete product lists. It is closed once the
// subscription ends, whether by Cancel, context cancellation or a listener
// failure.
func (s *Subscription) Snapshots() <-chan productRepository.Snapshot {
	return s.ch
}

// Cancel stops the subscription and releases the underlying listener. It is
// idempotent and returns only after the forwarding goroutine has exited, so
// the caller never observes an emission after Cancel returns.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		close(s.stop)
		s.cancel()
		<-s.done
	})
}
