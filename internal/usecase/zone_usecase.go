package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/parking-availability/internal/domain"
	"github.com/parking-availability/internal/domain/repository"
	"github.com/parking-availability/internal/pkg/errors"
	"github.com/parking-availability/internal/pkg/metrics"
	"github.com/parking-availability/internal/pkg/utils"
	"github.com/parking-availability/internal/usecase/dto"
	"go.uber.org/zap"
)

const defaultRecommendationRadiusKm = 3.0

// Clock - источник текущего времени
type Clock func() time.Time

// ZoneUseCase отдаёт слитый список зон и рекомендации поверх него
type ZoneUseCase struct {
	inventoryRepo repository.InventoryRepository
	liveRepo      repository.LiveStateRepository
	builder       *FusionBuilder
	metrics       metrics.Recorder
	logger        *zap.Logger
	maxZones      int
	location      *time.Location
	clock         Clock
}

func NewZoneUseCase(
	inventoryRepo repository.InventoryRepository,
	liveRepo repository.LiveStateRepository,
	builder *FusionBuilder,
	recorder metrics.Recorder,
	logger *zap.Logger,
	maxZones int,
	location *time.Location,
	clock Clock,
) *ZoneUseCase {
	return &ZoneUseCase{
		inventoryRepo: inventoryRepo,
		liveRepo:      liveRepo,
		builder:       builder,
		metrics:       recorder,
		logger:        logger,
		maxZones:      maxZones,
		location:      location,
		clock:         clock,
	}
}

// GetZones собирает свежий снимок всех зон. Час по умолчанию - текущий
// час в часовом поясе сервиса.
func (uc *ZoneUseCase) GetZones(ctx context.Context, req dto.ZonesRequest) (*dto.ZonesResponse, error) {
	now := uc.clock()
	hour, err := uc.effectiveHour(req.Hour, now)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	zones := uc.build(hour, now)
	uc.metrics.ZonesServed(len(zones), time.Since(start))

	uc.logger.Debug("Zones built",
		zap.Int("hour", hour),
		zap.Int("zones", len(zones)))

	return &dto.ZonesResponse{
		Zones:      zones,
		Hour:       hour,
		ObservedAt: now.UTC(),
	}, nil
}

// Recommend выбирает зону с наибольшей доступностью; при заданных
// координатах - только среди зон в радиусе.
func (uc *ZoneUseCase) Recommend(ctx context.Context, req dto.RecommendationRequest) (*dto.RecommendationResponse, error) {
	now := uc.clock()
	hour, err := uc.effectiveHour(req.Hour, now)
	if err != nil {
		return nil, err
	}

	nearby := req.Lat != nil && req.Lon != nil
	radius := req.RadiusKm
	var origin domain.Point
	if nearby {
		origin = domain.Point{Lat: *req.Lat, Lon: *req.Lon}
		if !utils.ValidPoint(origin) {
			return nil, errors.ErrInvalidCoordinates
		}
		if radius == 0 {
			radius = defaultRecommendationRadiusKm
		}
		if !utils.ValidRadius(radius) {
			return nil, errors.ErrInvalidRadius
		}
	}

	zones := uc.build(hour, now)

	var best *domain.ZoneView
	var bestDistance float64
	considered := 0
	for i := range zones {
		z := &zones[i]
		distance := 0.0
		if nearby {
			distance = utils.DistanceKm(origin, domain.Point{Lat: z.Lat, Lon: z.Lng})
			if distance > radius {
				continue
			}
		}
		considered++
		if best == nil || z.AvailabilityPct > best.AvailabilityPct {
			best = z
			bestDistance = distance
		}
	}

	if best == nil {
		return nil, errors.ErrNoZones
	}

	resp := &dto.RecommendationResponse{
		Zone:       best,
		Hour:       hour,
		Considered: considered,
		Reply:      recommendationReply(best, hour),
	}
	if nearby {
		d := math.Round(bestDistance*100) / 100
		resp.DistanceKm = &d
	}
	return resp, nil
}

func (uc *ZoneUseCase) build(hour int, now time.Time) []domain.ZoneView {
	facilities := uc.inventoryRepo.Snapshot().Facilities
	// Префикс ограничивает размер ответа; сам инвентарь не трогаем
	if uc.maxZones > 0 && len(facilities) > uc.maxZones {
		facilities = facilities[:uc.maxZones]
	}
	return uc.builder.Build(facilities, uc.liveRepo.Read(), hour, now)
}

func (uc *ZoneUseCase) effectiveHour(hour *int, now time.Time) (int, error) {
	if hour == nil {
		return now.In(uc.location).Hour(), nil
	}
	if *hour < 0 || *hour > 23 {
		return 0, errors.ErrInvalidHour
	}
	return *hour, nil
}

func recommendationReply(z *domain.ZoneView, hour int) string {
	if z.Source == domain.ZoneSourceLive {
		return fmt.Sprintf("The camera at %s reports %.1f%% of spots free right now.", z.Name, z.AvailabilityPct)
	}
	return fmt.Sprintf("Based on the %s demand pattern, %s should have about %.0f%% of spots free at %02d:00.",
		z.Region, z.Name, z.AvailabilityPct, hour)
}
