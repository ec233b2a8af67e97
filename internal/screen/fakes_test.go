package screen

import (
	"context"
	"sync"

	"go-firestore-inventory/internal/inventory"
	"go-firestore-inventory/internal/model"
	productRepository "go-firestore-inventory/internal/repository/product"
)

type fakeGateway struct {
	mu          sync.Mutex
	uid         string
	loginErr    error
	registerErr error
}

func (g *fakeGateway) Login(ctx context.Context, email, password string) error {
	if g.loginErr != nil {
		return g.loginErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.uid = "uid-" + email
	return nil
}

func (g *fakeGateway) Register(ctx context.Context, email, password string) error {
	if g.registerErr != nil {
		return g.registerErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.uid = "uid-" + email
	return nil
}

func (g *fakeGateway) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.uid = ""
}

func (g *fakeGateway) CurrentUserID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.uid
}

func (g *fakeGateway) IsLoggedIn() bool { return g.CurrentUserID() != "" }

// fakeService records the last product handed to each operation and feeds
// WatchProducts from a buffered snapshot channel the test writes to.
type fakeService struct {
	mu       sync.Mutex
	snaps    chan productRepository.Snapshot
	watchErr error

	addErr    error
	updateErr error
	deleteErr error
	getErr    error
	stored    *model.Product

	lastAdded   *model.Product
	lastUpdated *model.Product
	lastDeleted string
}

var _ InventoryService = (*fakeService)(nil)

func newFakeService() *fakeService {
	return &fakeService{snaps: make(chan productRepository.Snapshot, 16)}
}

func (f *fakeService) push(snap productRepository.Snapshot) {
	f.snaps <- snap
}

func (f *fakeService) AddProduct(ctx context.Context, p model.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastAdded = &p
	return f.addErr
}

func (f *fakeService) UpdateProduct(ctx context.Context, p model.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastUpdated = &p
	return f.updateErr
}

func (f *fakeService) DeleteProduct(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastDeleted = id
	return f.deleteErr
}

func (f *fakeService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored, nil
}

func (f *fakeService) WatchProducts(ctx context.Context) (*inventory.Subscription, error) {
	if f.watchErr != nil {
		return nil, f.watchErr
	}
	_, cancel := context.WithCancel(ctx)
	return inventory.NewSubscription(cancel, f.snaps), nil
}

func (f *fakeService) CalculateTotalInventory(products []model.Product) float64 {
	var total float64
	for _, p := range products {
		total += p.Total()
	}
	return total
}
