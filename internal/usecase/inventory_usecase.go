package usecase

import (
	"context"

	"github.com/parking-availability/internal/domain/repository"
	"github.com/parking-availability/internal/pkg/errors"
	"github.com/parking-availability/internal/pkg/metrics"
	"github.com/parking-availability/internal/usecase/dto"
	"go.uber.org/zap"
)

// InventoryUseCase управляет загрузкой инвентаря
type InventoryUseCase struct {
	inventoryRepo repository.InventoryRepository
	metrics       metrics.Recorder
	logger        *zap.Logger
}

func NewInventoryUseCase(
	inventoryRepo repository.InventoryRepository,
	recorder metrics.Recorder,
	logger *zap.Logger,
) *InventoryUseCase {
	return &InventoryUseCase{
		inventoryRepo: inventoryRepo,
		metrics:       recorder,
		logger:        logger,
	}
}

// Reload перечитывает источник. Ошибка не фатальна: снимок уже пустой,
// список зон продолжает отдаваться.
func (uc *InventoryUseCase) Reload(ctx context.Context) (*dto.InventoryResponse, error) {
	inv, err := uc.inventoryRepo.Reload(ctx)
	uc.metrics.InventoryLoaded(inv.Len(), inv.Dropped)
	if err != nil {
		return nil, errors.ErrInventoryUnavailable.WithDetails(map[string]interface{}{
			"source": inv.Source,
			"reason": err.Error(),
		})
	}

	return &dto.InventoryResponse{
		Facilities: inv.Len(),
		Dropped:    inv.Dropped,
		Source:     inv.Source,
		LoadedAt:   inv.LoadedAt,
	}, nil
}

// Current - сводка по текущему снимку без перечитывания
func (uc *InventoryUseCase) Current() *dto.InventoryResponse {
	inv := uc.inventoryRepo.Snapshot()
	return &dto.InventoryResponse{
		Facilities: inv.Len(),
		Dropped:    inv.Dropped,
		Source:     inv.Source,
		LoadedAt:   inv.LoadedAt,
	}
}
