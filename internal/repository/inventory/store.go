package inventory

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/parking-availability/internal/domain"
	"github.com/parking-availability/internal/domain/repository"
	"go.uber.org/zap"
)

// Store держит текущий снимок инвентаря за atomic.Pointer:
// читатели никогда не видят наполовину загруженный набор.
type Store struct {
	loader  repository.InventoryLoader
	path    string
	current atomic.Pointer[domain.Inventory]
	reload  sync.Mutex
	logger  *zap.Logger
}

// NewStore создаёт пустое хранилище; данные появляются после Reload
func NewStore(loader repository.InventoryLoader, path string, logger *zap.Logger) *Store {
	s := &Store{
		loader: loader,
		path:   path,
		logger: logger,
	}
	s.current.Store(&domain.Inventory{Source: path})
	return s
}

var _ repository.InventoryRepository = (*Store)(nil)

// Snapshot возвращает текущий снимок
func (s *Store) Snapshot() *domain.Inventory {
	return s.current.Load()
}

// Reload перечитывает источник. При ошибке инвентарь деградирует до пустого,
// сервис продолжает отвечать, ошибка возвращается для логов/ответа.
func (s *Store) Reload(ctx context.Context) (*domain.Inventory, error) {
	s.reload.Lock()
	defer s.reload.Unlock()

	start := time.Now()
	records, dropped, err := s.loader.Load(ctx, s.path)

	inv := &domain.Inventory{
		Facilities: records,
		Source:     s.path,
		LoadedAt:   time.Now().UTC(),
		Dropped:    dropped,
	}
	if err != nil {
		s.logger.Warn("Inventory unavailable, serving empty zone list",
			zap.String("path", s.path),
			zap.Error(err))
		inv.Facilities = nil
	}

	s.current.Store(inv)

	s.logger.Info("Inventory snapshot swapped",
		zap.Int("facilities", inv.Len()),
		zap.Int("dropped_rows", dropped),
		zap.Duration("took", time.Since(start)))

	return inv, err
}
