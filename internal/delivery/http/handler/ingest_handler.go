package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parking-availability/internal/domain"
	"github.com/parking-availability/internal/pkg/errors"
	"github.com/parking-availability/internal/pkg/utils"
	"github.com/parking-availability/internal/pkg/validator"
	"github.com/parking-availability/internal/usecase"
	"github.com/parking-availability/internal/usecase/dto"
	"go.uber.org/zap"
)

// IngestHandler - приём отчётов vision-сенсора
type IngestHandler struct {
	ingestUC *usecase.IngestUseCase
	logger   *zap.Logger
}

// NewIngestHandler - создание нового IngestHandler
func NewIngestHandler(ingestUC *usecase.IngestUseCase, logger *zap.Logger) *IngestHandler {
	return &IngestHandler{
		ingestUC: ingestUC,
		logger:   logger,
	}
}

// IngestReport godoc
// @Summary Приём отчёта о занятости
// @Description Принимает отчёт vision-сенсора по инструментированной зоне. Последний принятый отчёт замещает предыдущий целиком.
// @Tags Vision
// @Accept json
// @Produce json
// @Param request body dto.IngestReportRequest true "Отчёт сенсора"
// @Success 201 {object} utils.SuccessResponse{data=dto.IngestReportResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/vision/reports [post]
func (h *IngestHandler) IngestReport(c *fiber.Ctx) error {
	var req dto.IngestReportRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "malformed JSON",
		}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(validator.FieldErrors(err)))
	}

	result, err := h.ingestUC.Ingest(c.Context(), domain.OccupancyReport{
		Occupied:   *req.Occupied,
		Total:      *req.Total,
		Confidence: *req.Confidence,
		Source:     domain.ReportSourceHTTP,
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// GetLive godoc
// @Summary Текущее состояние инструментированной зоны
// @Tags Vision
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.LiveStateResponse}
// @Router /api/v1/vision/live [get]
func (h *IngestHandler) GetLive(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.ingestUC.Live(c.Context()), nil)
}
