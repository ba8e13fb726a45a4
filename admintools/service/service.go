package service

import (
	"context"
	"errors"

	"github.com/vinoterra/winery-registry/admintools/dal"
	"github.com/vinoterra/winery-registry/blobs"
	"github.com/vinoterra/winery-registry/framework/connection"
	"github.com/vinoterra/winery-registry/logger"
)

var (
	// ErrMissingReplaceParams is returned when the rename is underspecified.
	ErrMissingReplaceParams = errors.New("collection, oldField and newField are required")

	// ErrEmptyPath is returned when no object path is given.
	ErrEmptyPath = errors.New("path is required")
)

type MaintenanceService struct {
	loggerProvider logger.Provider
	fieldsDAL      dal.Fields
	blobs          blobs.Blobs
}

func NewAdminToolsService(log logger.Provider, conn *connection.Connection) *MaintenanceService {
	return &MaintenanceService{
		loggerProvider: log,
		fieldsDAL:      dal.NewFieldsFirestoreWithClient(conn.Firestore),
		blobs:          blobs.NewCloudStorageBlobsWithClient(conn.CloudStorage),
	}
}

func (s *MaintenanceService) ReplaceFieldName(ctx context.Context, collection, oldField, newField string) (int, error) {
	if collection == "" || oldField == "" || newField == "" {
		return 0, ErrMissingReplaceParams
	}

	replaced, err := s.fieldsDAL.ReplaceFieldName(ctx, collection, oldField, newField)
	if err != nil {
		return 0, err
	}

	s.loggerProvider(ctx).Infof("renamed field %s to %s on %d documents in %s", oldField, newField, replaced, collection)

	return replaced, nil
}

func (s *MaintenanceService) FileDownloadURL(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	return s.blobs.SignedURL(ctx, path)
}
