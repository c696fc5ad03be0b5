package worker

import (
	"context"

	"github.com/parking-availability/internal/domain"
	"github.com/parking-availability/internal/usecase/dto"
)

// ReportIngester - то, во что транспорты передают события сенсора
type ReportIngester interface {
	IngestEvent(ctx context.Context, event domain.VisionReportEvent, source string) (*dto.IngestReportResponse, error)
}
