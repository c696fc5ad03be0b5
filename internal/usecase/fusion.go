package usecase

import (
	"fmt"
	"time"

	"github.com/parking-availability/internal/domain"
	"github.com/parking-availability/internal/pkg/utils"
)

const (
	// InstrumentedZoneIndex - позиция в инвентаре зоны, покрытой камерой
	InstrumentedZoneIndex = 0

	minPredictedConfidence = 90.0
	maxPredictedConfidence = 98.0

	liveStatus = "Live · vision sensor"
)

// FusionBuilder собирает единый список зон: живые данные для
// инструментированной зоны и прогноз для всех остальных.
type FusionBuilder struct {
	predictor *Predictor
	gazetteer *Gazetteer
	rnd       RandomSource
}

func NewFusionBuilder(predictor *Predictor, gazetteer *Gazetteer, rnd RandomSource) *FusionBuilder {
	return &FusionBuilder{
		predictor: predictor,
		gazetteer: gazetteer,
		rnd:       rnd,
	}
}

// Build возвращает по одному ZoneView на запись в порядке инвентаря.
// Пустой инвентарь даёт пустой (не nil) список.
func (b *FusionBuilder) Build(
	facilities []domain.FacilityRecord,
	live domain.LiveReport,
	hour int,
	now time.Time,
) []domain.ZoneView {
	zones := make([]domain.ZoneView, 0, len(facilities))
	observedAt := now.UTC()

	for i, f := range facilities {
		region := b.gazetteer.Resolve(f.Location)

		view := domain.ZoneView{
			ID:         f.ID,
			Name:       f.Name,
			Lat:        f.Location.Lat,
			Lng:        f.Location.Lon,
			Capacity:   f.Capacity,
			Region:     region.Label,
			ObservedAt: observedAt,
		}
		if view.Name == "" {
			view.Name = fmt.Sprintf("%s #%d", region.Label, f.ID)
		}

		if i == InstrumentedZoneIndex {
			view.AvailabilityPct = utils.Clamp(live.AvailabilityPct, 0, 100)
			view.Confidence = live.Confidence
			view.Source = domain.ZoneSourceLive
			view.Status = liveStatus
		} else {
			profile := ZoneProfile{PeakHour: region.PeakHour, Label: region.Label}
			view.AvailabilityPct = b.predictor.Predict(profile, hour, now)
			view.Confidence = b.predictedConfidence()
			view.Source = domain.ZoneSourcePredicted
			view.Status = "Predicted · " + region.Label
		}

		view.Trend = domain.TrendFor(view.AvailabilityPct)
		zones = append(zones, view)
	}

	return zones
}

func (b *FusionBuilder) predictedConfidence() float64 {
	span := maxPredictedConfidence - minPredictedConfidence
	return utils.Round1(minPredictedConfidence + b.rnd.Float64()*span)
}
