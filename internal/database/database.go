package database

import (
	"context"

	"cloud.google.com/go/firestore"
)

// QueryEvent carries the complete document set of one query snapshot. A live
// query emits one event per server-side change, each replacing the previous
// result set.
type QueryEvent struct {
	Docs []*firestore.DocumentSnapshot
	Err  error
}

type Client interface {
	WatchQuery(ctx context.Context, query firestore.Query) <-chan QueryEvent
	GetDoc(ctx context.Context, docRef *firestore.DocumentRef) (*firestore.DocumentSnapshot, error)
	AddDoc(ctx context.Context, collRef *firestore.CollectionRef, data interface{}) (*firestore.DocumentRef, error)
	SetDoc(ctx context.Context, docRef *firestore.DocumentRef, data interface{}, opts ...firestore.SetOption) (*firestore.WriteResult, error)
	UpdateDoc(ctx context.Context, docRef *firestore.DocumentRef, updates []firestore.Update, preconds ...firestore.Precondition) (*firestore.WriteResult, error)
	DeleteDoc(ctx context.Context, docRef *firestore.DocumentRef) (*firestore.WriteResult, error)
	Collection(path string) *firestore.CollectionRef
}
