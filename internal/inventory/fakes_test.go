package inventory

import (
	"context"
	"fmt"
	"sync"

	ierr "go-firestore-inventory/internal/errors"
	"go-firestore-inventory/internal/model"
	productRepository "go-firestore-inventory/internal/repository/product"

	"github.com/google/uuid"
)

type fakeAuth struct {
	mu  sync.Mutex
	uid string
}

func (a *fakeAuth) Login(ctx context.Context, email, password string) error    { return nil }
func (a *fakeAuth) Register(ctx context.Context, email, password string) error { return nil }

func (a *fakeAuth) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.uid = ""
}

func (a *fakeAuth) CurrentUserID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.uid
}

func (a *fakeAuth) IsLoggedIn() bool { return a.CurrentUserID() != "" }

type fakeWatcher struct {
	ctx     context.Context
	ownerID string
	ch      chan productRepository.Snapshot
}

// fakeStore mimics the store gateway contract: ids assigned on add, owner
// written once, and a fresh complete snapshot broadcast to every live
// watcher after each mutation.
type fakeStore struct {
	mu       sync.Mutex
	docs     map[string]model.Product
	watchers []*fakeWatcher
	calls    int
}

var _ productRepository.Repository = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string]model.Product{}}
}

func (s *fakeStore) storeCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *fakeStore) GetByID(ctx context.Context, id string) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	p, ok := s.docs[id]
	if !ok {
		return nil, ierr.NotFound
	}
	return &p, nil
}

func (s *fakeStore) Add(ctx context.Context, data model.Product, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	data.ID = uuid.NewString()
	data.OwnerID = ownerID
	s.docs[data.ID] = data
	s.broadcastLocked()
	return nil
}

func (s *fakeStore) Update(ctx context.Context, data model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	stored, ok := s.docs[data.ID]
	if !ok {
		return fmt.Errorf("update product: %w, id: %s", ierr.NotFound, data.ID)
	}

	// fixed-field overwrite: code and owner are immutable
	stored.Name = data.Name
	stored.Price = data.Price
	stored.Quantity = data.Quantity
	s.docs[data.ID] = stored
	s.broadcastLocked()
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	if _, ok := s.docs[id]; !ok {
		return fmt.Errorf("delete product: %w, id: %s", ierr.NotFound, id)
	}
	delete(s.docs, id)
	s.broadcastLocked()
	return nil
}

func (s *fakeStore) Watch(ctx context.Context, ownerID string) <-chan productRepository.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	w := &fakeWatcher{ctx: ctx, ownerID: ownerID, ch: make(chan productRepository.Snapshot, 16)}
	s.watchers = append(s.watchers, w)
	w.ch <- productRepository.Snapshot{Products: s.ownedLocked(ownerID)}

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, reg := range s.watchers {
			if reg == w {
				s.watchers = append(s.watchers[:i], s.watchers[i+1:]...)
				close(w.ch)
				return
			}
		}
	}()

	return w.ch
}

func (s *fakeStore) failWatchers(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.watchers {
		w.ch <- productRepository.Snapshot{Err: err}
	}
}

func (s *fakeStore) ownedLocked(ownerID string) []model.Product {
	products := make([]model.Product, 0)
	for _, p := range s.docs {
		if p.OwnerID == ownerID {
			products = append(products, p)
		}
	}
	return products
}

func (s *fakeStore) broadcastLocked() {
	for _, w := range s.watchers {
		select {
		case w.ch <- productRepository.Snapshot{Products: s.ownedLocked(w.ownerID)}:
		case <-w.ctx.Done():
		}
	}
}
