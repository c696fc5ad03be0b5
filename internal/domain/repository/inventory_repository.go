package repository

import (
	"context"

	"github.com/parking-availability/internal/domain"
)

// InventoryLoader - чтение и очистка сырого набора парковок
type InventoryLoader interface {
	Load(ctx context.Context, path string) ([]domain.FacilityRecord, int, error)
}

// InventoryRepository - текущий снимок инвентаря
type InventoryRepository interface {
	// Snapshot возвращает текущий снимок; никогда не nil
	Snapshot() *domain.Inventory

	// Reload перечитывает источник и атомарно подменяет снимок
	Reload(ctx context.Context) (*domain.Inventory, error)
}
