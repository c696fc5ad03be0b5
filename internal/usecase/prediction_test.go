package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/parking-availability/internal/usecase"
)

var (
	evenSecond = time.Unix(1_700_000_000, 0)
	oddSecond  = time.Unix(1_700_000_001, 0)
)

func TestBaseAvailability(t *testing.T) {
	tests := []struct {
		name     string
		peak     int
		hour     int
		expected float64
	}{
		{"at peak", 18, 18, 20},
		{"one hour before peak", 18, 17, 25},
		{"morning far from evening peak", 18, 6, 80},
		{"no wrap across midnight", 1, 23, 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.BaseAvailability(usecase.ZoneProfile{PeakHour: tt.peak}, tt.hour)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSurgeFactor(t *testing.T) {
	assert.Equal(t, 0.7, usecase.SurgeFactor(evenSecond))
	assert.Equal(t, 1.0, usecase.SurgeFactor(oddSecond))
}

func TestPredictor_Predict(t *testing.T) {
	profile := usecase.ZoneProfile{PeakHour: 18, Label: "Central"}

	t.Run("peak hour without jitter or surge", func(t *testing.T) {
		// IntN(11) = 5 -> jitter 0
		p := usecase.NewPredictor(stubRandom{intN: 5})
		assert.Equal(t, 20.0, p.Predict(profile, 18, oddSecond))
	})

	t.Run("surge multiplies after jitter", func(t *testing.T) {
		// jitter +5: (20 + 5) * 0.7 = 17.5
		p := usecase.NewPredictor(stubRandom{intN: 10})
		assert.Equal(t, 17.5, p.Predict(profile, 18, evenSecond))
	})

	t.Run("lowest jitter under surge", func(t *testing.T) {
		// jitter -5: (20 - 5) * 0.7 = 10.5
		p := usecase.NewPredictor(stubRandom{intN: 0})
		assert.Equal(t, 10.5, p.Predict(profile, 18, evenSecond))
	})

	t.Run("clamped to upper bound", func(t *testing.T) {
		p := usecase.NewPredictor(stubRandom{intN: 10})
		assert.Equal(t, 95.0, p.Predict(usecase.ZoneProfile{PeakHour: 0}, 23, oddSecond))
	})
}

func TestPredictor_PredictAlwaysInRange(t *testing.T) {
	p := usecase.NewPredictor(usecase.DefaultRandom())

	for peak := 0; peak < 24; peak++ {
		for hour := 0; hour < 24; hour++ {
			for _, now := range []time.Time{evenSecond, oddSecond} {
				for i := 0; i < 5; i++ {
					got := p.Predict(usecase.ZoneProfile{PeakHour: peak}, hour, now)
					assert.GreaterOrEqual(t, got, 5.0)
					assert.LessOrEqual(t, got, 95.0)
				}
			}
		}
	}
}

func TestPredictor_JitterCoversFullRange(t *testing.T) {
	profile := usecase.ZoneProfile{PeakHour: 12}

	seen := map[float64]bool{}
	for n := 0; n <= 10; n++ {
		p := usecase.NewPredictor(stubRandom{intN: n})
		seen[p.Predict(profile, 12, oddSecond)] = true
	}

	// 20 + [-5..5] -> 15..25, все 11 значений различны
	assert.Len(t, seen, 11)
	assert.True(t, seen[15])
	assert.True(t, seen[25])
}
