package dal

import (
	"context"

	"github.com/vinoterra/winery-registry/winery/domain"
)

//go:generate mockery --name Wineries --output=./mocks
type Wineries interface {
	Get(ctx context.Context, uid string) (*domain.Winery, error)
	GetRaw(ctx context.Context, uid string) (map[string]interface{}, error)
	GetAll(ctx context.Context) ([]*domain.Winery, error)
	Create(ctx context.Context, uid string, winery *domain.Winery) error
	Delete(ctx context.Context, uid string) error
	SetDisabled(ctx context.Context, uid string, disabled bool) error
	UpdateTierAndLevel(ctx context.Context, uid, tier string, level int64) error
	MergeGeneralInfo(ctx context.Context, uid string, generalInfo map[string]interface{}) error
	SetFieldAll(ctx context.Context, field string, value interface{}) (int, error)
	SaveTrashBackup(ctx context.Context, uid string, backup map[string]interface{}) error
}
