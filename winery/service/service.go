package service

import (
	"context"
	"errors"

	"github.com/vinoterra/winery-registry/framework/connection"
	"github.com/vinoterra/winery-registry/logger"
	taxonomyDal "github.com/vinoterra/winery-registry/taxonomy/dal"
	"github.com/vinoterra/winery-registry/taxonomy/domain"
	"github.com/vinoterra/winery-registry/winery/dal"
)

var (
	// ErrUnknownTier is returned for a tier outside the fixed set.
	ErrUnknownTier = errors.New("unknown tier")

	// ErrEmptyField is returned when the bulk field write names no field.
	ErrEmptyField = errors.New("field name is required")

	// ErrEmptyGeneralInfo is returned when a merge carries no fields.
	ErrEmptyGeneralInfo = errors.New("general info is required")
)

type RegistryWineryService struct {
	loggerProvider logger.Provider
	wineriesDAL    dal.Wineries
	sysVarsDAL     taxonomyDal.SystemVariables
}

func NewWineryService(log logger.Provider, conn *connection.Connection) *RegistryWineryService {
	return &RegistryWineryService{
		loggerProvider: log,
		wineriesDAL:    dal.NewWineriesFirestoreWithClient(conn.Firestore),
		sysVarsDAL:     taxonomyDal.NewSystemVariablesFirestoreWithClient(conn.Firestore),
	}
}

func (s *RegistryWineryService) GetTierAndLevel(ctx context.Context, uid string) (string, int64, error) {
	winery, err := s.wineriesDAL.Get(ctx, uid)
	if err != nil {
		return "", 0, err
	}

	return winery.Tier, winery.Level, nil
}

func (s *RegistryWineryService) UpdateTierAndLevel(ctx context.Context, uid, tier string, level int64) error {
	valid := false

	for _, t := range domain.Tiers() {
		if t == tier {
			valid = true
			break
		}
	}

	if !valid {
		return ErrUnknownTier
	}

	return s.wineriesDAL.UpdateTierAndLevel(ctx, uid, tier, level)
}

func (s *RegistryWineryService) GetWineryName(ctx context.Context, uid string) (string, error) {
	winery, err := s.wineriesDAL.Get(ctx, uid)
	if err != nil {
		return "", err
	}

	return winery.GeneralInfo.Name, nil
}

// RegisterGeneralInfo merges the given fields into the winery's general info.
// Fields absent from the payload keep their stored values.
func (s *RegistryWineryService) RegisterGeneralInfo(ctx context.Context, uid string, generalInfo map[string]interface{}) error {
	if len(generalInfo) == 0 {
		return ErrEmptyGeneralInfo
	}

	return s.wineriesDAL.MergeGeneralInfo(ctx, uid, generalInfo)
}

// CreateField writes the field with the given initial value on every winery
// document and returns the number of documents written. All writes are
// awaited; the first failure aborts the remainder and is returned.
func (s *RegistryWineryService) CreateField(ctx context.Context, field string, value interface{}) (int, error) {
	if field == "" {
		return 0, ErrEmptyField
	}

	return s.wineriesDAL.SetFieldAll(ctx, field, value)
}

// TotalIncome sums the subscription price of every winery. The level map is
// read once for the whole aggregation; a winery whose tier has no mapping
// contributes zero.
func (s *RegistryWineryService) TotalIncome(ctx context.Context) (float64, error) {
	levelMap, err := s.sysVarsDAL.GetLevelMap(ctx)
	if err != nil {
		return 0, err
	}

	wineries, err := s.wineriesDAL.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	var total float64

	for _, winery := range wineries {
		if pricing, ok := levelMap[winery.Tier]; ok {
			total += pricing.Price
		}
	}

	return total, nil
}
