package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/parking-availability/internal/domain"
)

// stubRandom returns fixed values so predictions are deterministic
type stubRandom struct {
	intN    int // returned IntN result, must be < n
	float64 float64
}

func (s stubRandom) IntN(n int) int {
	if s.intN >= n {
		return n - 1
	}
	return s.intN
}

func (s stubRandom) Float64() float64 { return s.float64 }

// MockLiveStateRepository is a mock of LiveStateRepository
type MockLiveStateRepository struct {
	mock.Mock
}

func (m *MockLiveStateRepository) Update(report domain.OccupancyReport) (domain.LiveReport, error) {
	args := m.Called(report)
	return args.Get(0).(domain.LiveReport), args.Error(1)
}

func (m *MockLiveStateRepository) Read() domain.LiveReport {
	args := m.Called()
	return args.Get(0).(domain.LiveReport)
}

// MockInventoryRepository is a mock of InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) Snapshot() *domain.Inventory {
	args := m.Called()
	return args.Get(0).(*domain.Inventory)
}

func (m *MockInventoryRepository) Reload(ctx context.Context) (*domain.Inventory, error) {
	args := m.Called(ctx)
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}
