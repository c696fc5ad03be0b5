package livestate

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/parking-availability/internal/domain"
	"github.com/parking-availability/internal/domain/repository"
	"github.com/parking-availability/internal/pkg/utils"
)

// Baseline - состояние до первого отчёта сенсора
var Baseline = domain.OccupancyReport{
	Occupied:   0,
	Total:      100,
	Confidence: 0,
	Source:     domain.ReportSourceBaseline,
}

// Store - единственное разделяемое изменяемое состояние ядра.
// Отчёт хранится по значению и заменяется целиком под одним RWMutex.
type Store struct {
	mu      sync.RWMutex
	current domain.LiveReport
	now     func() time.Time
}

// NewStore создаёт хранилище, инициализированное Baseline
func NewStore() *Store {
	return newStoreWithClock(time.Now)
}

func newStoreWithClock(now func() time.Time) *Store {
	s := &Store{now: now}
	s.current = s.build(Baseline)
	return s
}

var _ repository.LiveStateRepository = (*Store)(nil)

// Update проверяет отчёт и атомарно заменяет текущее состояние
func (s *Store) Update(report domain.OccupancyReport) (domain.LiveReport, error) {
	if report.Total <= 0 {
		return domain.LiveReport{}, fmt.Errorf("%w: total=%d", domain.ErrInvalidReport, report.Total)
	}

	// Собираем запись вне блокировки: под локом только присваивание
	next := s.build(report)

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	return next, nil
}

// Read возвращает копию текущего состояния
func (s *Store) Read() domain.LiveReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) build(report domain.OccupancyReport) domain.LiveReport {
	return domain.LiveReport{
		ID:              uuid.New(),
		Occupied:        report.Occupied,
		Total:           report.Total,
		Confidence:      report.Confidence,
		AvailabilityPct: utils.Percent1(int64(report.Total-report.Occupied), int64(report.Total)),
		Source:          report.Source,
		ReceivedAt:      s.now().UTC(),
	}
}
