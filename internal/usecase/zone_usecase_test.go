package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/parking-availability/internal/domain"
	apperrors "github.com/parking-availability/internal/pkg/errors"
	"github.com/parking-availability/internal/pkg/metrics"
	"github.com/parking-availability/internal/usecase"
	"github.com/parking-availability/internal/usecase/dto"
)

func newZoneUseCase(t *testing.T, facilities []domain.FacilityRecord, live domain.LiveReport, maxZones int, now time.Time) *usecase.ZoneUseCase {
	t.Helper()

	inventoryRepo := &MockInventoryRepository{}
	inventoryRepo.On("Snapshot").Return(&domain.Inventory{Facilities: facilities})

	liveRepo := &MockLiveStateRepository{}
	liveRepo.On("Read").Return(live)

	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	return usecase.NewZoneUseCase(
		inventoryRepo,
		liveRepo,
		newBuilder(stubRandom{intN: 5, float64: 0.5}),
		metrics.Nop{},
		zap.NewNop(),
		maxZones,
		ist,
		func() time.Time { return now },
	)
}

func TestZoneUseCase_GetZones(t *testing.T) {
	ctx := context.Background()
	live := domain.LiveReport{Occupied: 25, Total: 60, Confidence: 98.4, AvailabilityPct: 58.3}
	// 12:30:01 UTC = 18:00:01 IST
	now := time.Date(2024, 3, 1, 12, 30, 1, 0, time.UTC)

	t.Run("default hour follows service timezone", func(t *testing.T) {
		uc := newZoneUseCase(t, sampleFacilities(), live, 50, now)

		resp, err := uc.GetZones(ctx, dto.ZonesRequest{})
		require.NoError(t, err)

		assert.Equal(t, 18, resp.Hour)
		require.Len(t, resp.Zones, 4)
		assert.Equal(t, 58.3, resp.Zones[0].AvailabilityPct)
		// Adajan West: peak 20, hour 18 -> 30
		assert.Equal(t, 30.0, resp.Zones[1].AvailabilityPct)
	})

	t.Run("explicit hour", func(t *testing.T) {
		uc := newZoneUseCase(t, sampleFacilities(), live, 50, now)

		resp, err := uc.GetZones(ctx, dto.ZonesRequest{Hour: intPtr(20)})
		require.NoError(t, err)

		assert.Equal(t, 20, resp.Hour)
		assert.Equal(t, 20.0, resp.Zones[1].AvailabilityPct)
	})

	t.Run("hour out of range", func(t *testing.T) {
		uc := newZoneUseCase(t, sampleFacilities(), live, 50, now)

		_, err := uc.GetZones(ctx, dto.ZonesRequest{Hour: intPtr(24)})
		assert.Equal(t, apperrors.ErrInvalidHour, err)
	})

	t.Run("prefix limits response size", func(t *testing.T) {
		uc := newZoneUseCase(t, sampleFacilities(), live, 2, now)

		resp, err := uc.GetZones(ctx, dto.ZonesRequest{})
		require.NoError(t, err)
		assert.Len(t, resp.Zones, 2)
	})

	t.Run("empty inventory is an empty success", func(t *testing.T) {
		uc := newZoneUseCase(t, nil, live, 50, now)

		resp, err := uc.GetZones(ctx, dto.ZonesRequest{})
		require.NoError(t, err)
		assert.NotNil(t, resp.Zones)
		assert.Empty(t, resp.Zones)
	})
}

func TestZoneUseCase_Recommend(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 30, 1, 0, time.UTC)
	live := domain.LiveReport{Occupied: 55, Total: 60, Confidence: 98.4, AvailabilityPct: 8.3}

	t.Run("best zone overall", func(t *testing.T) {
		uc := newZoneUseCase(t, sampleFacilities(), live, 50, now)

		resp, err := uc.Recommend(ctx, dto.RecommendationRequest{Hour: intPtr(12)})
		require.NoError(t, err)

		// hour 12: Adajan West 60, Market 20, Katargam 35
		assert.Equal(t, "Adajan Patiya", resp.Zone.Name)
		assert.Equal(t, 4, resp.Considered)
		assert.Nil(t, resp.DistanceKm)
		assert.Contains(t, resp.Reply, "Adajan Patiya")
		assert.Contains(t, resp.Reply, "12:00")
	})

	t.Run("nearby restricts to radius", func(t *testing.T) {
		uc := newZoneUseCase(t, sampleFacilities(), live, 50, now)

		resp, err := uc.Recommend(ctx, dto.RecommendationRequest{
			Hour:     intPtr(12),
			Lat:      floatPtr(21.2300),
			Lon:      floatPtr(72.8200),
			RadiusKm: 1,
		})
		require.NoError(t, err)

		assert.Equal(t, "Katargam Darwaja", resp.Zone.Name)
		assert.Equal(t, 1, resp.Considered)
		require.NotNil(t, resp.DistanceKm)
		assert.Equal(t, 0.0, *resp.DistanceKm)
	})

	t.Run("nothing in radius", func(t *testing.T) {
		uc := newZoneUseCase(t, sampleFacilities(), live, 50, now)

		_, err := uc.Recommend(ctx, dto.RecommendationRequest{Lat: floatPtr(23.03), Lon: floatPtr(72.53), RadiusKm: 1})
		assert.True(t, errors.Is(err, apperrors.ErrNoZones))
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		uc := newZoneUseCase(t, sampleFacilities(), live, 50, now)

		_, err := uc.Recommend(ctx, dto.RecommendationRequest{Lat: floatPtr(95), Lon: floatPtr(72.53)})
		assert.Equal(t, apperrors.ErrInvalidCoordinates, err)
	})

	t.Run("live zone reply", func(t *testing.T) {
		free := domain.LiveReport{Occupied: 0, Total: 60, Confidence: 98.4, AvailabilityPct: 100}
		uc := newZoneUseCase(t, sampleFacilities(), free, 50, now)

		resp, err := uc.Recommend(ctx, dto.RecommendationRequest{})
		require.NoError(t, err)
		assert.Equal(t, domain.ZoneSourceLive, resp.Zone.Source)
		assert.Contains(t, resp.Reply, "camera")
	})
}

func TestInventoryUseCase_Reload(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &MockInventoryRepository{}
		inv := &domain.Inventory{Facilities: sampleFacilities(), Source: "data.csv", Dropped: 1, LoadedAt: time.Now()}
		repo.On("Reload", ctx).Return(inv, nil)

		uc := usecase.NewInventoryUseCase(repo, metrics.Nop{}, zap.NewNop())
		resp, err := uc.Reload(ctx)

		require.NoError(t, err)
		assert.Equal(t, 4, resp.Facilities)
		assert.Equal(t, 1, resp.Dropped)
	})

	t.Run("source unavailable", func(t *testing.T) {
		repo := &MockInventoryRepository{}
		repo.On("Reload", ctx).Return(&domain.Inventory{Source: "data.csv"}, domain.ErrDataUnavailable)

		uc := usecase.NewInventoryUseCase(repo, metrics.Nop{}, zap.NewNop())
		_, err := uc.Reload(ctx)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "INVENTORY_UNAVAILABLE", appErr.Code)
	})
}
