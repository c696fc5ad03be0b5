package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/parking-availability/internal/domain"
	"github.com/parking-availability/internal/domain/repository"
	apperrors "github.com/parking-availability/internal/pkg/errors"
	"github.com/parking-availability/internal/pkg/metrics"
	"github.com/parking-availability/internal/pkg/utils"
	"github.com/parking-availability/internal/usecase/dto"
	"go.uber.org/zap"
)

// IngestUseCase принимает отчёты сенсора от любого транспорта (HTTP, MQTT, Redis Stream)
type IngestUseCase struct {
	liveRepo repository.LiveStateRepository
	metrics  metrics.Recorder
	logger   *zap.Logger
}

func NewIngestUseCase(
	liveRepo repository.LiveStateRepository,
	recorder metrics.Recorder,
	logger *zap.Logger,
) *IngestUseCase {
	return &IngestUseCase{
		liveRepo: liveRepo,
		metrics:  recorder,
		logger:   logger,
	}
}

// Ingest передаёт отчёт в хранилище. Отказ хранилища не глотается:
// вызывающий получает ErrInvalidReport.
func (uc *IngestUseCase) Ingest(ctx context.Context, report domain.OccupancyReport) (*dto.IngestReportResponse, error) {
	state, err := uc.liveRepo.Update(report)
	if err != nil {
		uc.metrics.ReportIngested(report.Source, false)
		if errors.Is(err, domain.ErrInvalidReport) {
			uc.logger.Warn("Occupancy report rejected",
				zap.String("source", report.Source),
				zap.Int("occupied", report.Occupied),
				zap.Int("total", report.Total),
				zap.Error(err))
			return nil, apperrors.ErrInvalidReport.WithDetails(map[string]interface{}{
				"total": report.Total,
			})
		}
		uc.logger.Error("Failed to update live state", zap.Error(err))
		return nil, err
	}

	uc.metrics.ReportIngested(report.Source, true)
	uc.metrics.LiveAvailability(utils.Clamp(state.AvailabilityPct, 0, 100))

	uc.logger.Debug("Occupancy report accepted",
		zap.String("report_id", state.ID.String()),
		zap.String("source", state.Source),
		zap.Int("occupied", state.Occupied),
		zap.Int("total", state.Total),
		zap.Float64("availability_pct", state.AvailabilityPct))

	return &dto.IngestReportResponse{
		ID:              state.ID,
		Status:          "accepted",
		AvailabilityPct: state.AvailabilityPct,
		ReceivedAt:      state.ReceivedAt,
	}, nil
}

// IngestEvent - вход для асинхронных транспортов: сначала проверка полноты события
func (uc *IngestUseCase) IngestEvent(ctx context.Context, event domain.VisionReportEvent, source string) (*dto.IngestReportResponse, error) {
	if !event.IsComplete() {
		uc.metrics.ReportIngested(source, false)
		return nil, fmt.Errorf("%w: occupied, total and confidence are required", domain.ErrInvalidReport)
	}
	if *event.Occupied < 0 || *event.Confidence < 0 || *event.Confidence > 100 {
		uc.metrics.ReportIngested(source, false)
		return nil, fmt.Errorf("%w: occupied=%d confidence=%v out of range",
			domain.ErrInvalidReport, *event.Occupied, *event.Confidence)
	}

	return uc.Ingest(ctx, event.ToReport(source))
}

// Live возвращает текущее состояние; наружу доступность отдаётся в [0, 100]
func (uc *IngestUseCase) Live(ctx context.Context) *dto.LiveStateResponse {
	state := uc.liveRepo.Read()
	return &dto.LiveStateResponse{
		ID:                 state.ID,
		Occupied:           state.Occupied,
		Total:              state.Total,
		Confidence:         state.Confidence,
		AvailabilityPct:    utils.Clamp(state.AvailabilityPct, 0, 100),
		RawAvailabilityPct: state.AvailabilityPct,
		Source:             state.Source,
		ReceivedAt:         state.ReceivedAt,
	}
}
