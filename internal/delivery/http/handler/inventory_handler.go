package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/parking-availability/internal/pkg/utils"
	"github.com/parking-availability/internal/usecase"
	"go.uber.org/zap"
)

// InventoryHandler - состояние и перезагрузка инвентаря
type InventoryHandler struct {
	inventoryUC *usecase.InventoryUseCase
	logger      *zap.Logger
}

// NewInventoryHandler создает новый экземпляр InventoryHandler
func NewInventoryHandler(inventoryUC *usecase.InventoryUseCase, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: inventoryUC,
		logger:      logger,
	}
}

// GetInventory godoc
// @Summary Сводка по текущему инвентарю
// @Tags Inventory
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.InventoryResponse}
// @Router /api/v1/inventory [get]
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.inventoryUC.Current(), nil)
}

// Reload godoc
// @Summary Перечитать инвентарь
// @Description Атомарно заменяет снимок инвентаря. Если источник недоступен, список зон становится пустым.
// @Tags Inventory
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.InventoryResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/inventory/reload [post]
func (h *InventoryHandler) Reload(c *fiber.Ctx) error {
	h.logger.Info("Handling inventory reload request")

	result, err := h.inventoryUC.Reload(c.Context())
	if err != nil {
		h.logger.Warn("Inventory reload failed", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *InventoryHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":     "healthy",
		"time":       time.Now(),
		"facilities": h.inventoryUC.Current().Facilities,
	})
}
