package connection

import (
	"context"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/storage"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	fb "github.com/vinoterra/winery-registry/firebase"
	"github.com/vinoterra/winery-registry/logger"
)

const (
	// CtxFirestoreKey is how firestore connections are stored/retrieved.
	CtxFirestoreKey = "app-firestore"

	// CtxCloudStorageKey is how cloud storage connections are stored/retrieved.
	CtxCloudStorageKey = "app-cloud-storage"

	// CtxPubSubKey is how cloud pubsub connections are stored/retrieved.
	CtxPubSubKey = "app-pubsub"
)

// Connection holds the shared clients the handlers depend on: the document
// store, the blob store, the identity provider and the event bus.
type Connection struct {
	*FirestoreClient
	cs     *storage.Client
	pubsub *pubsub.Client
	auth   *fbauth.Client
}

// NewConnection initializes the client connections necessary for api support.
func NewConnection(ctx context.Context, log *logger.Logging) (*Connection, error) {
	fs, err := NewFirestore(ctx, log)
	if err != nil {
		return nil, err
	}

	cs, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}

	ps, err := NewPubsubClient(ctx, log)
	if err != nil {
		return nil, err
	}

	auth, err := fb.App.Auth(ctx)
	if err != nil {
		return nil, err
	}

	return &Connection{
		fs,
		cs,
		ps,
		auth,
	}, nil
}

// Firestore returns a firestore connection that was stored in context.
// It returns the default firestore connection if there was none on context.
func (c *Connection) Firestore(ctx context.Context) *firestore.Client {
	if fs, ok := ctx.Value(CtxFirestoreKey).(*firestore.Client); ok {
		return fs
	}

	return c.fs
}

// CloudStorage returns a cloud storage connection that was stored in context.
// It returns the default cloud storage connection if there was none on context.
func (c *Connection) CloudStorage(ctx context.Context) *storage.Client {
	if cs, ok := ctx.Value(CtxCloudStorageKey).(*storage.Client); ok {
		return cs
	}

	return c.cs
}

// Pubsub returns a pubsub connection that was stored in context.
// It returns the default pubsub connection if there was none on context.
func (c *Connection) Pubsub(ctx context.Context) *pubsub.Client {
	if ps, ok := ctx.Value(CtxPubSubKey).(*pubsub.Client); ok {
		return ps
	}

	return c.pubsub
}

// Auth returns the identity provider client.
func (c *Connection) Auth(ctx context.Context) *fbauth.Client {
	return c.auth
}

// FirestoreWithContext stores a firestore connection under gin context.
func (c *Connection) FirestoreWithContext(ctx *gin.Context) {
	ctx.Set(CtxFirestoreKey, c.fs)
}

// FirestoreFromContextFun resolves the firestore client bound to a request.
type FirestoreFromContextFun = func(ctx context.Context) *firestore.Client

