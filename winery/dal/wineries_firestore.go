package dal

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vinoterra/winery-registry/docstore"
	"github.com/vinoterra/winery-registry/docstore/iface"
	"github.com/vinoterra/winery-registry/framework/connection"
	"github.com/vinoterra/winery-registry/winery/domain"
)

const (
	wineriesCollection = "wineries"
	trashCollection    = "trash"

	generalInfoField = "generalInfo"
	tierField        = "tier"
	levelField       = "level"
	disabledField    = "disabled"
	backupField      = "backup"
)

// WineriesFirestore is used to interact with winery documents stored on Firestore.
type WineriesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   iface.DocumentsHandler
}

// NewWineriesFirestoreWithClient returns a new WineriesFirestore using the given client fun.
func NewWineriesFirestoreWithClient(fun connection.FirestoreFromContextFun) *WineriesFirestore {
	return &WineriesFirestore{
		firestoreClientFun: fun,
		documentsHandler:   docstore.DocumentHandler{},
	}
}

func (d *WineriesFirestore) wineriesCollectionRef(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(wineriesCollection)
}

// GetRef returns the document reference of a winery.
func (d *WineriesFirestore) GetRef(ctx context.Context, uid string) *firestore.DocumentRef {
	return d.wineriesCollectionRef(ctx).Doc(uid)
}

// Get returns a winery document.
func (d *WineriesFirestore) Get(ctx context.Context, uid string) (*domain.Winery, error) {
	if uid == "" {
		return nil, errors.New("invalid winery uid")
	}

	snap, err := d.documentsHandler.Get(ctx, d.GetRef(ctx, uid))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, docstore.ErrNotFound
		}

		return nil, err
	}

	var winery domain.Winery

	if err := snap.DataTo(&winery); err != nil {
		return nil, err
	}

	winery.ID = snap.ID()

	return &winery, nil
}

// GetRaw returns a winery document as stored, without schema mapping. Used by
// the trash backup path which must copy the document verbatim.
func (d *WineriesFirestore) GetRaw(ctx context.Context, uid string) (map[string]interface{}, error) {
	snap, err := d.documentsHandler.Get(ctx, d.GetRef(ctx, uid))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, docstore.ErrNotFound
		}

		return nil, err
	}

	return snap.Data(), nil
}

// GetAll returns every winery document.
func (d *WineriesFirestore) GetAll(ctx context.Context) ([]*domain.Winery, error) {
	snaps, err := d.documentsHandler.GetAll(ctx, d.wineriesCollectionRef(ctx).Query)
	if err != nil {
		return nil, err
	}

	wineries := make([]*domain.Winery, 0, len(snaps))

	for _, snap := range snaps {
		var winery domain.Winery

		if err := snap.DataTo(&winery); err != nil {
			return nil, err
		}

		winery.ID = snap.ID()
		wineries = append(wineries, &winery)
	}

	return wineries, nil
}

// Create writes a winery document, overwriting any existing one.
func (d *WineriesFirestore) Create(ctx context.Context, uid string, winery *domain.Winery) error {
	return d.documentsHandler.Set(ctx, d.GetRef(ctx, uid), winery)
}

// Delete removes the live winery document.
func (d *WineriesFirestore) Delete(ctx context.Context, uid string) error {
	return d.documentsHandler.Delete(ctx, d.GetRef(ctx, uid))
}

// SetDisabled flips the document's disabled flag.
func (d *WineriesFirestore) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	return d.documentsHandler.Update(ctx, d.GetRef(ctx, uid), []firestore.Update{
		{Path: disabledField, Value: disabled},
	})
}

// UpdateTierAndLevel overwrites the subscription tier and level.
func (d *WineriesFirestore) UpdateTierAndLevel(ctx context.Context, uid, tier string, level int64) error {
	return d.documentsHandler.Update(ctx, d.GetRef(ctx, uid), []firestore.Update{
		{Path: tierField, Value: tier},
		{Path: levelField, Value: level},
	})
}

// MergeGeneralInfo merges the given fields into the document's generalInfo.
// Fields absent from the input are preserved.
func (d *WineriesFirestore) MergeGeneralInfo(ctx context.Context, uid string, generalInfo map[string]interface{}) error {
	return d.documentsHandler.Set(ctx, d.GetRef(ctx, uid), map[string]interface{}{
		generalInfoField: generalInfo,
	}, firestore.MergeAll)
}

// SetFieldAll writes one field/value pair onto every winery document and
// returns the number of documents written. All writes complete before return.
func (d *WineriesFirestore) SetFieldAll(ctx context.Context, field string, value interface{}) (int, error) {
	snaps, err := d.documentsHandler.GetAll(ctx, d.wineriesCollectionRef(ctx).Query)
	if err != nil {
		return 0, err
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, snap := range snaps {
		ref := snap.Ref()

		g.Go(func() error {
			return d.documentsHandler.Update(gctx, ref, []firestore.Update{
				{Path: field, Value: value},
			})
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return len(snaps), nil
}

// SaveTrashBackup snapshots a winery document into the trash collection.
func (d *WineriesFirestore) SaveTrashBackup(ctx context.Context, uid string, backup map[string]interface{}) error {
	ref := d.firestoreClientFun(ctx).Collection(trashCollection).Doc(uid)

	return d.documentsHandler.Set(ctx, ref, map[string]interface{}{
		backupField: backup,
	})
}
