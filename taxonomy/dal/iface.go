package dal

import (
	"context"

	"github.com/vinoterra/winery-registry/taxonomy/domain"
)

//go:generate mockery --name SystemVariables --output=./mocks
type SystemVariables interface {
	GetList(ctx context.Context, field string) ([]string, error)
	SetList(ctx context.Context, field string, values []string) error
	GetDefaults(ctx context.Context) (*domain.Defaults, error)
	GetLevelMap(ctx context.Context) (domain.LevelMap, error)
	SetLevelMap(ctx context.Context, levelMap domain.LevelMap) error
	GetAdmins(ctx context.Context) ([]string, error)
}
