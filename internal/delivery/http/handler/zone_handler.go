package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/parking-availability/internal/domain"
	"github.com/parking-availability/internal/pkg/errors"
	"github.com/parking-availability/internal/pkg/utils"
	"github.com/parking-availability/internal/pkg/validator"
	"github.com/parking-availability/internal/usecase"
	"github.com/parking-availability/internal/usecase/dto"
	"go.uber.org/zap"
)

// ZoneHandler - список зон для карты
type ZoneHandler struct {
	zoneUC *usecase.ZoneUseCase
	logger *zap.Logger
}

// NewZoneHandler - создание нового ZoneHandler
func NewZoneHandler(zoneUC *usecase.ZoneUseCase, logger *zap.Logger) *ZoneHandler {
	return &ZoneHandler{
		zoneUC: zoneUC,
		logger: logger,
	}
}

// GetZones godoc
// @Summary Доступность парковок по зонам
// @Description Возвращает все зоны инвентаря: первая - по данным камеры, остальные - прогноз по профилю часа пика.
// @Tags Zones
// @Produce json
// @Param hour query int false "Час суток 0-23 (по умолчанию текущий)"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ZoneView}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/zones [get]
func (h *ZoneHandler) GetZones(c *fiber.Ctx) error {
	start := time.Now()

	req, err := parseZonesRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.zoneUC.GetZones(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	live, predicted := countSources(result)
	return utils.SendSuccess(c, result.Zones, &utils.Meta{
		Total:      len(result.Zones),
		Hour:       &result.Hour,
		Live:       live,
		Predicted:  predicted,
		TimeMSec:   float64(time.Since(start).Microseconds()) / 1000,
		ObservedAt: result.ObservedAt.Format(time.RFC3339),
	})
}

// GetZonesLegacy - тот же список голым массивом, как его ждёт старый клиент карты
// @Router /api/predict [get]
func (h *ZoneHandler) GetZonesLegacy(c *fiber.Ctx) error {
	req, err := parseZonesRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.zoneUC.GetZones(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result.Zones)
}

// GetRecommendation godoc
// @Summary Лучшая зона для парковки
// @Description Выбирает зону с наибольшей доступностью; при переданных lat/lng - в радиусе radius_km (по умолчанию 3 км).
// @Tags Zones
// @Produce json
// @Param hour query int false "Час суток 0-23"
// @Param lat query number false "Широта"
// @Param lng query number false "Долгота"
// @Param radius_km query number false "Радиус поиска, км (0.1-100)"
// @Success 200 {object} utils.SuccessResponse{data=dto.RecommendationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/zones/recommendation [get]
func (h *ZoneHandler) GetRecommendation(c *fiber.Ctx) error {
	var req dto.RecommendationRequest

	hour, err := parseHour(c.Query("hour"))
	if err != nil {
		return utils.SendError(c, err)
	}
	req.Hour = hour

	if req.Lat, err = parseOptionalFloat(c.Query("lat")); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	if req.Lon, err = parseOptionalFloat(c.Query("lng")); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	if (req.Lat == nil) != (req.Lon == nil) {
		return utils.SendError(c, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"lat/lng": "must be provided together",
		}))
	}
	if radius, err := parseOptionalFloat(c.Query("radius_km")); err != nil {
		return utils.SendError(c, errors.ErrInvalidRadius)
	} else if radius != nil {
		req.RadiusKm = *radius
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(validator.FieldErrors(err)))
	}

	result, err := h.zoneUC.Recommend(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

func parseZonesRequest(c *fiber.Ctx) (dto.ZonesRequest, error) {
	hour, err := parseHour(c.Query("hour"))
	if err != nil {
		return dto.ZonesRequest{}, err
	}
	return dto.ZonesRequest{Hour: hour}, nil
}

func parseHour(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	hour, err := strconv.Atoi(raw)
	if err != nil || hour < 0 || hour > 23 {
		return nil, errors.ErrInvalidHour
	}
	return &hour, nil
}

func parseOptionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !utils.IsFinite(v) {
		return nil, errors.ErrInvalidRequest
	}
	return &v, nil
}

func countSources(resp *dto.ZonesResponse) (live, predicted int) {
	for _, z := range resp.Zones {
		if z.Source == domain.ZoneSourceLive {
			live++
		} else {
			predicted++
		}
	}
	return live, predicted
}
