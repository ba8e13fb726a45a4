package service

import (
	"context"
)

//go:generate mockery --name WineryService --output ./mocks

type WineryService interface {
	GetTierAndLevel(ctx context.Context, uid string) (tier string, level int64, err error)
	UpdateTierAndLevel(ctx context.Context, uid, tier string, level int64) error
	GetWineryName(ctx context.Context, uid string) (string, error)
	RegisterGeneralInfo(ctx context.Context, uid string, generalInfo map[string]interface{}) error
	CreateField(ctx context.Context, field string, value interface{}) (int, error)
	TotalIncome(ctx context.Context) (float64, error)
}
