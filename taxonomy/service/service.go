package service

import (
	"context"
	"errors"

	"github.com/vinoterra/winery-registry/framework/connection"
	"github.com/vinoterra/winery-registry/logger"
	"github.com/vinoterra/winery-registry/taxonomy/dal"
	"github.com/vinoterra/winery-registry/taxonomy/domain"
)

var (
	// ErrUnknownList is returned for a taxonomy key outside domain.Lists.
	ErrUnknownList = errors.New("unknown taxonomy list")

	// ErrIncompleteLevelMap is returned when a level map does not cover the fixed tiers.
	ErrIncompleteLevelMap = errors.New("level map must cover bronze, silver, gold and platinum")
)

// TaxonomyListService maintains the taxonomy reference lists and the tier
// pricing map on the system variables singleton. Create and update are the
// same operation: a full overwrite of one named list.
type TaxonomyListService struct {
	loggerProvider logger.Provider
	sysVarsDAL     dal.SystemVariables
}

func NewTaxonomyService(log logger.Provider, conn *connection.Connection) *TaxonomyListService {
	return &TaxonomyListService{
		loggerProvider: log,
		sysVarsDAL:     dal.NewSystemVariablesFirestoreWithClient(conn.Firestore),
	}
}

func (s *TaxonomyListService) GetList(ctx context.Context, key string) ([]string, error) {
	field, ok := domain.Lists[key]
	if !ok {
		return nil, ErrUnknownList
	}

	return s.sysVarsDAL.GetList(ctx, field)
}

func (s *TaxonomyListService) SetList(ctx context.Context, key string, values []string) error {
	field, ok := domain.Lists[key]
	if !ok {
		return ErrUnknownList
	}

	if values == nil {
		values = []string{}
	}

	s.loggerProvider(ctx).Infof("overwriting taxonomy list %s with %d values", field, len(values))

	return s.sysVarsDAL.SetList(ctx, field, values)
}

func (s *TaxonomyListService) GetLevelMap(ctx context.Context) (domain.LevelMap, error) {
	return s.sysVarsDAL.GetLevelMap(ctx)
}

func (s *TaxonomyListService) SetLevelMap(ctx context.Context, levelMap domain.LevelMap) error {
	if !levelMap.Complete() {
		return ErrIncompleteLevelMap
	}

	return s.sysVarsDAL.SetLevelMap(ctx, levelMap)
}
