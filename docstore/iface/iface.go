package iface

import (
	"context"

	"cloud.google.com/go/firestore"
)

//go:generate mockery --name DocumentsHandler --output ../mocks
type DocumentsHandler interface {
	Get(ctx context.Context, ref *firestore.DocumentRef) (DocumentSnapshot, error)
	GetAll(ctx context.Context, query firestore.Query) ([]DocumentSnapshot, error)
	Set(ctx context.Context, ref *firestore.DocumentRef, data interface{}, opts ...firestore.SetOption) error
	Update(ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update) error
	Delete(ctx context.Context, ref *firestore.DocumentRef) error
}

//go:generate mockery --name DocumentSnapshot --output ../mocks
type DocumentSnapshot interface {
	ID() string
	Exists() bool
	DataTo(v interface{}) error
	Data() map[string]interface{}
	Ref() *firestore.DocumentRef
	Snapshot() *firestore.DocumentSnapshot
}
