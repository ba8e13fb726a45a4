package dal

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vinoterra/winery-registry/docstore"
	"github.com/vinoterra/winery-registry/docstore/iface"
	"github.com/vinoterra/winery-registry/framework/connection"
	"github.com/vinoterra/winery-registry/taxonomy/domain"
)

const (
	utilsCollection    = "utils"
	systemVariablesDoc = "systemVariables"

	defaultField = "default"
	levelField   = "level"
	adminField   = "admin"
)

// ErrNoAdminSet is returned when the singleton carries no admin email set.
var ErrNoAdminSet = errors.New("system variables document has no admin set")

// SystemVariablesFirestore reads and writes the shared configuration
// singleton at utils/systemVariables. Writes are field-level overwrites with
// no optimistic concurrency check; last writer wins.
type SystemVariablesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   iface.DocumentsHandler
}

// NewSystemVariablesFirestoreWithClient returns a new SystemVariablesFirestore using the given client fun.
func NewSystemVariablesFirestoreWithClient(fun connection.FirestoreFromContextFun) *SystemVariablesFirestore {
	return &SystemVariablesFirestore{
		firestoreClientFun: fun,
		documentsHandler:   docstore.DocumentHandler{},
	}
}

// GetRef returns the reference of the singleton document.
func (d *SystemVariablesFirestore) GetRef(ctx context.Context) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(utilsCollection).Doc(systemVariablesDoc)
}

// GetList returns the named taxonomy list, or nil when the list (or the
// singleton itself) was never set.
func (d *SystemVariablesFirestore) GetList(ctx context.Context, field string) ([]string, error) {
	snap, err := d.documentsHandler.Get(ctx, d.GetRef(ctx))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}

		return nil, err
	}

	raw, ok := snap.Data()[field]
	if !ok {
		return nil, nil
	}

	items, ok := raw.([]interface{})
	if !ok {
		return nil, errors.New("system variables field is not a list")
	}

	values := make([]string, 0, len(items))

	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, errors.New("system variables list holds a non-string value")
		}

		values = append(values, s)
	}

	return values, nil
}

// SetList overwrites the named taxonomy list with the given values, keeping
// input order.
func (d *SystemVariablesFirestore) SetList(ctx context.Context, field string, values []string) error {
	return d.documentsHandler.Update(ctx, d.GetRef(ctx), []firestore.Update{
		{Path: field, Value: values},
	})
}

// GetDefaults returns the default tier and level for new wineries.
// docstore.ErrNotFound is returned when the singleton is absent.
func (d *SystemVariablesFirestore) GetDefaults(ctx context.Context) (*domain.Defaults, error) {
	snap, err := d.documentsHandler.Get(ctx, d.GetRef(ctx))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, docstore.ErrNotFound
		}

		return nil, err
	}

	var data struct {
		Default domain.Defaults `firestore:"default"`
	}

	if err := snap.DataTo(&data); err != nil {
		return nil, err
	}

	return &data.Default, nil
}

// GetLevelMap returns the tier pricing map, nil when never set.
func (d *SystemVariablesFirestore) GetLevelMap(ctx context.Context) (domain.LevelMap, error) {
	snap, err := d.documentsHandler.Get(ctx, d.GetRef(ctx))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}

		return nil, err
	}

	var data struct {
		Level domain.LevelMap `firestore:"level"`
	}

	if err := snap.DataTo(&data); err != nil {
		return nil, err
	}

	return data.Level, nil
}

// SetLevelMap overwrites the tier pricing map.
func (d *SystemVariablesFirestore) SetLevelMap(ctx context.Context, levelMap domain.LevelMap) error {
	return d.documentsHandler.Update(ctx, d.GetRef(ctx), []firestore.Update{
		{Path: levelField, Value: levelMap},
	})
}

// GetAdmins returns the admin email set. An absent set is an error: admin
// membership cannot be decided without it.
func (d *SystemVariablesFirestore) GetAdmins(ctx context.Context) ([]string, error) {
	snap, err := d.documentsHandler.Get(ctx, d.GetRef(ctx))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNoAdminSet
		}

		return nil, err
	}

	raw, ok := snap.Data()[adminField]
	if !ok {
		return nil, ErrNoAdminSet
	}

	items, ok := raw.([]interface{})
	if !ok {
		return nil, ErrNoAdminSet
	}

	admins := make([]string, 0, len(items))

	for _, item := range items {
		if s, ok := item.(string); ok {
			admins = append(admins, s)
		}
	}

	return admins, nil
}
