package helper

import (
	"context"
	"time"

	"go-firestore-inventory/internal/database"
	"go-firestore-inventory/internal/repository/filter"

	"cloud.google.com/go/firestore"
)

// WatchQuery applies the filter clauses to the query and opens a live
// listener on the database client.
func WatchQuery(ctx context.Context, db database.Client, query firestore.Query, where []filter.Where) <-chan database.QueryEvent {

	for _, w := range where {
		query = query.Where(w.Path, w.Op, w.Value)
	}

	return db.WatchQuery(ctx, query)
}

// NonblockingWrite is a generic function that can write any type of event to any channel type.
// T is the type parameter for the event.
func NonblockingWrite[T any](ctx context.Context, timeout time.Duration, ch chan<- T, event T) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
