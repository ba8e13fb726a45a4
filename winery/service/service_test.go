package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vinoterra/winery-registry/docstore"
	"github.com/vinoterra/winery-registry/logger"
	taxonomyMocks "github.com/vinoterra/winery-registry/taxonomy/dal/mocks"
	taxonomyDomain "github.com/vinoterra/winery-registry/taxonomy/domain"
	"github.com/vinoterra/winery-registry/winery/dal/mocks"
	"github.com/vinoterra/winery-registry/winery/domain"
)

func TestRegistryWineryService_TotalIncome(t *testing.T) {
	type fields struct {
		wineriesDAL *mocks.Wineries
		sysVarsDAL  *taxonomyMocks.SystemVariables
	}

	ctx := context.Background()

	levelMap := taxonomyDomain.LevelMap{
		taxonomyDomain.TierBronze: {Price: 10, Quota: 5},
		taxonomyDomain.TierGold:   {Price: 100, Quota: 200},
	}

	tests := []struct {
		name        string
		want        float64
		wantErr     bool
		expectedErr error

		on func(*fields)
	}{
		{
			name: "sums prices over all wineries",
			want: 120,
			on: func(f *fields) {
				f.sysVarsDAL.On("GetLevelMap", ctx).Return(levelMap, nil)
				f.wineriesDAL.On("GetAll", ctx).Return([]*domain.Winery{
					{ID: "a", Tier: taxonomyDomain.TierBronze},
					{ID: "b", Tier: taxonomyDomain.TierGold},
					{ID: "c", Tier: taxonomyDomain.TierBronze},
				}, nil)
			},
		},
		{
			name: "tier without a mapping contributes zero",
			want: 100,
			on: func(f *fields) {
				f.sysVarsDAL.On("GetLevelMap", ctx).Return(levelMap, nil)
				f.wineriesDAL.On("GetAll", ctx).Return([]*domain.Winery{
					{ID: "a", Tier: taxonomyDomain.TierGold},
					{ID: "b", Tier: "trial"},
					{ID: "c", Tier: ""},
				}, nil)
			},
		},
		{
			name: "no wineries",
			want: 0,
			on: func(f *fields) {
				f.sysVarsDAL.On("GetLevelMap", ctx).Return(levelMap, nil)
				f.wineriesDAL.On("GetAll", ctx).Return([]*domain.Winery{}, nil)
			},
		},
		{
			name:        "level map read failure",
			wantErr:     true,
			expectedErr: errors.New("no singleton"),
			on: func(f *fields) {
				f.sysVarsDAL.On("GetLevelMap", ctx).Return(nil, errors.New("no singleton"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				wineriesDAL: &mocks.Wineries{},
				sysVarsDAL:  &taxonomyMocks.SystemVariables{},
			}

			if tt.on != nil {
				tt.on(&f)
			}

			s := &RegistryWineryService{
				loggerProvider: logger.FromContext,
				wineriesDAL:    f.wineriesDAL,
				sysVarsDAL:     f.sysVarsDAL,
			}

			got, err := s.TotalIncome(ctx)

			if tt.wantErr {
				assert.EqualError(t, err, tt.expectedErr.Error())
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// the pricing map is read once, not per winery
			f.sysVarsDAL.AssertNumberOfCalls(t, "GetLevelMap", 1)
		})
	}
}

func TestRegistryWineryService_UpdateTierAndLevel(t *testing.T) {
	ctx := context.Background()

	t.Run("known tier is written", func(t *testing.T) {
		wineriesDAL := &mocks.Wineries{}
		wineriesDAL.On("UpdateTierAndLevel", ctx, "uid-1", taxonomyDomain.TierSilver, int64(2)).Return(nil)

		s := &RegistryWineryService{
			loggerProvider: logger.FromContext,
			wineriesDAL:    wineriesDAL,
		}

		assert.NoError(t, s.UpdateTierAndLevel(ctx, "uid-1", taxonomyDomain.TierSilver, 2))
		wineriesDAL.AssertExpectations(t)
	})

	t.Run("unknown tier is rejected", func(t *testing.T) {
		wineriesDAL := &mocks.Wineries{}

		s := &RegistryWineryService{
			loggerProvider: logger.FromContext,
			wineriesDAL:    wineriesDAL,
		}

		assert.ErrorIs(t, s.UpdateTierAndLevel(ctx, "uid-1", "diamond", 9), ErrUnknownTier)
		wineriesDAL.AssertNotCalled(t, "UpdateTierAndLevel")
	})
}

func TestRegistryWineryService_RegisterGeneralInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("partial payload is merged, not replaced", func(t *testing.T) {
		wineriesDAL := &mocks.Wineries{}
		payload := map[string]interface{}{"name": "Quinta do Vale"}
		wineriesDAL.On("MergeGeneralInfo", ctx, "uid-1", payload).Return(nil)

		s := &RegistryWineryService{
			loggerProvider: logger.FromContext,
			wineriesDAL:    wineriesDAL,
		}

		assert.NoError(t, s.RegisterGeneralInfo(ctx, "uid-1", payload))
		wineriesDAL.AssertExpectations(t)
	})

	t.Run("empty payload is rejected", func(t *testing.T) {
		wineriesDAL := &mocks.Wineries{}

		s := &RegistryWineryService{
			loggerProvider: logger.FromContext,
			wineriesDAL:    wineriesDAL,
		}

		assert.ErrorIs(t, s.RegisterGeneralInfo(ctx, "uid-1", nil), ErrEmptyGeneralInfo)
		wineriesDAL.AssertNotCalled(t, "MergeGeneralInfo")
	})
}

func TestRegistryWineryService_CreateField(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the number of documents written", func(t *testing.T) {
		wineriesDAL := &mocks.Wineries{}
		wineriesDAL.On("SetFieldAll", ctx, "harvestNotes", "").Return(42, nil)

		s := &RegistryWineryService{
			loggerProvider: logger.FromContext,
			wineriesDAL:    wineriesDAL,
		}

		count, err := s.CreateField(ctx, "harvestNotes", "")
		assert.NoError(t, err)
		assert.Equal(t, 42, count)
	})

	t.Run("missing field name", func(t *testing.T) {
		wineriesDAL := &mocks.Wineries{}

		s := &RegistryWineryService{
			loggerProvider: logger.FromContext,
			wineriesDAL:    wineriesDAL,
		}

		_, err := s.CreateField(ctx, "", "x")
		assert.ErrorIs(t, err, ErrEmptyField)
	})
}

func TestRegistryWineryService_GetWineryName(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored name", func(t *testing.T) {
		wineriesDAL := &mocks.Wineries{}
		wineriesDAL.On("Get", ctx, "uid-1").Return(&domain.Winery{
			ID:          "uid-1",
			GeneralInfo: domain.GeneralInfo{Name: "Bodega Sur"},
		}, nil)

		s := &RegistryWineryService{
			loggerProvider: logger.FromContext,
			wineriesDAL:    wineriesDAL,
		}

		name, err := s.GetWineryName(ctx, "uid-1")
		assert.NoError(t, err)
		assert.Equal(t, "Bodega Sur", name)
	})

	t.Run("missing document", func(t *testing.T) {
		wineriesDAL := &mocks.Wineries{}
		wineriesDAL.On("Get", ctx, "uid-2").Return(nil, docstore.ErrNotFound)

		s := &RegistryWineryService{
			loggerProvider: logger.FromContext,
			wineriesDAL:    wineriesDAL,
		}

		_, err := s.GetWineryName(ctx, "uid-2")
		assert.ErrorIs(t, err, docstore.ErrNotFound)
	})
}
