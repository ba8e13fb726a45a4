// Package docstore wraps the firestore client with a thin, mockable access
// layer so data access layers can be unit tested without a live project.
package docstore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/vinoterra/winery-registry/docstore/iface"
)

// ErrNotFound is returned when the requested document does not exist.
var ErrNotFound = errors.New("document not found")

// DocumentHandler is the concrete iface.DocumentsHandler over firestore.
type DocumentHandler struct{}

func (h DocumentHandler) Get(ctx context.Context, ref *firestore.DocumentRef) (iface.DocumentSnapshot, error) {
	snap, err := ref.Get(ctx)
	if err != nil {
		return nil, err
	}

	return documentSnapshot{snap}, nil
}

func (h DocumentHandler) GetAll(ctx context.Context, query firestore.Query) ([]iface.DocumentSnapshot, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var snaps []iface.DocumentSnapshot

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		snaps = append(snaps, documentSnapshot{snap})
	}

	return snaps, nil
}

func (h DocumentHandler) Set(ctx context.Context, ref *firestore.DocumentRef, data interface{}, opts ...firestore.SetOption) error {
	_, err := ref.Set(ctx, data, opts...)
	return err
}

func (h DocumentHandler) Update(ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update) error {
	_, err := ref.Update(ctx, updates)
	return err
}

func (h DocumentHandler) Delete(ctx context.Context, ref *firestore.DocumentRef) error {
	_, err := ref.Delete(ctx)
	return err
}

type documentSnapshot struct {
	snap *firestore.DocumentSnapshot
}

func (s documentSnapshot) ID() string {
	return s.snap.Ref.ID
}

func (s documentSnapshot) Exists() bool {
	return s.snap.Exists()
}

func (s documentSnapshot) DataTo(v interface{}) error {
	return s.snap.DataTo(v)
}

func (s documentSnapshot) Data() map[string]interface{} {
	return s.snap.Data()
}

func (s documentSnapshot) Ref() *firestore.DocumentRef {
	return s.snap.Ref
}

func (s documentSnapshot) Snapshot() *firestore.DocumentSnapshot {
	return s.snap
}
