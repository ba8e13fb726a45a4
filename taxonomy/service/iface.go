package service

import (
	"context"

	"github.com/vinoterra/winery-registry/taxonomy/domain"
)

//go:generate mockery --name TaxonomyService --output=./mocks
type TaxonomyService interface {
	GetList(ctx context.Context, key string) ([]string, error)
	SetList(ctx context.Context, key string, values []string) error
	GetLevelMap(ctx context.Context) (domain.LevelMap, error)
	SetLevelMap(ctx context.Context, levelMap domain.LevelMap) error
}
