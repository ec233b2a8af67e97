package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"
)

type snapEvent struct {
	snap *firestore.QuerySnapshot
	err  error
}

type snapCh chan snapEvent

type FirestoreClient struct {
	*firestore.Client
	writeTimeout time.Duration
}

func New(client *firestore.Client) FirestoreClient {
	return FirestoreClient{
		Client:       client,
		writeTimeout: time.Second * 120,
	}
}

// WatchQuery listens to the given query and emits the full document set of
// every snapshot on the returned channel. The listener raises transient
// errors; if it errors more than the tolerance cap the last error is
// delivered and the channel is closed. Cancelling the context stops the
// listener and closes the channel.
func (c FirestoreClient) WatchQuery(ctx context.Context, query firestore.Query) <-chan QueryEvent {

	ch := make(chan QueryEvent)
	errToleranceCap := 20
	errCnt := 0

	go func() {
		defer close(ch)

		eventCh := registerEventListener(ctx, query.Snapshots(ctx))
		for event := range eventCh {
			if event.err != nil {
				// The error is not wrapped properly, so errors.Is() does not work
				if strings.Contains(event.err.Error(), "context canceled") || strings.Contains(event.err.Error(), "context deadline exceeded") {
					return
				}

				log.Error().Err(event.err).Msg("error reading query snapshots")
				errCnt++
				if errCnt < errToleranceCap {
					continue
				}
				ch <- QueryEvent{Err: event.err}
				return
			}

			docs, err := event.snap.Documents.GetAll()
			if err != nil {
				log.Error().Err(err).Msg("error collecting snapshot documents")
				continue
			}

			select {
			case ch <- QueryEvent{Docs: docs}:
				continue
			case <-ctx.Done():
				return
			case <-time.After(time.Minute):
				log.Error().Msg("timedout to deliver a snapshot to the client")
			}
		}
	}()

	return ch
}

// registerEventListener keeps the listener open until context is cancelled
func registerEventListener(ctx context.Context, it *firestore.QuerySnapshotIterator) <-chan snapEvent {

	threshold := 5
	retry := 0
	c := make(snapCh)
	go func() {
		defer close(c)
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err == iterator.Done {
				return
			}

			select {
			case <-ctx.Done():
				return
			case c <- snapEvent{snap, err}:
				continue
			case <-time.After(time.Second * 10):
				log.Error().Msg("timedout to deliver a snapshot event")
				retry++
				if retry > threshold {
					return
				}
			}
		}
	}()

	return c
}

func (c FirestoreClient) GetDoc(ctx context.Context, docRef *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()

	docSnapshot, err := docRef.Get(ctx)
	if err != nil {
		return nil, err
	}

	if !docSnapshot.Exists() {
		return nil, fmt.Errorf("doc snapshot does not exist")
	}

	return docSnapshot, nil
}

// AddDoc persists a new document and lets the store assign its id.
func (c FirestoreClient) AddDoc(ctx context.Context, collRef *firestore.CollectionRef, data interface{}) (*firestore.DocumentRef, error) {
	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()

	docRef, _, err := collRef.Add(ctx, data)
	return docRef, err
}

func (c FirestoreClient) SetDoc(ctx context.Context, docRef *firestore.DocumentRef, data interface{}, opts ...firestore.SetOption) (*firestore.WriteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()

	return docRef.Set(ctx, data, opts...)
}

func (c FirestoreClient) UpdateDoc(ctx context.Context, docRef *firestore.DocumentRef, updates []firestore.Update, preconds ...firestore.Precondition) (*firestore.WriteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()

	return docRef.Update(ctx, updates, preconds...)
}

func (c FirestoreClient) DeleteDoc(ctx context.Context, docRef *firestore.DocumentRef) (*firestore.WriteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.writeTimeout)
	defer cancel()

	return docRef.Delete(ctx, firestore.Exists)
}
