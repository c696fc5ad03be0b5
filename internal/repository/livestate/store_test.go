package livestate

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parking-availability/internal/domain"
)

func TestStore_Baseline(t *testing.T) {
	store := NewStore()

	state := store.Read()
	assert.Equal(t, 0, state.Occupied)
	assert.Equal(t, 100, state.Total)
	assert.Equal(t, 100.0, state.AvailabilityPct)
	assert.Equal(t, domain.ReportSourceBaseline, state.Source)
}

func TestStore_Update(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	store := newStoreWithClock(func() time.Time { return fixed })

	t.Run("sensor scenario", func(t *testing.T) {
		got, err := store.Update(domain.OccupancyReport{Occupied: 25, Total: 60, Confidence: 98.4, Source: domain.ReportSourceHTTP})
		require.NoError(t, err)

		assert.Equal(t, 58.3, got.AvailabilityPct)
		assert.Equal(t, 98.4, got.Confidence)
		assert.Equal(t, fixed, got.ReceivedAt)
		assert.Equal(t, got, store.Read())
	})

	t.Run("availability formula for every occupancy", func(t *testing.T) {
		for occupied := 0; occupied <= 37; occupied++ {
			_, err := store.Update(domain.OccupancyReport{Occupied: occupied, Total: 37, Confidence: 90})
			require.NoError(t, err)

			expected := float64(int((float64(37-occupied)/37*100)*10+0.5)) / 10
			assert.InDelta(t, expected, store.Read().AvailabilityPct, 1e-9, "occupied=%d", occupied)
		}
	})

	t.Run("overfull lot is stored negative", func(t *testing.T) {
		got, err := store.Update(domain.OccupancyReport{Occupied: 70, Total: 60, Confidence: 80})
		require.NoError(t, err)
		assert.Equal(t, -16.7, got.AvailabilityPct)
	})
}

func TestStore_UpdateRejectsNonPositiveTotal(t *testing.T) {
	store := NewStore()
	accepted, err := store.Update(domain.OccupancyReport{Occupied: 10, Total: 40, Confidence: 95})
	require.NoError(t, err)

	for _, total := range []int{0, -1} {
		_, err := store.Update(domain.OccupancyReport{Occupied: 0, Total: total, Confidence: 99})

		assert.True(t, errors.Is(err, domain.ErrInvalidReport))
		assert.Equal(t, accepted, store.Read(), "rejected update must not touch state")
	}
}

func TestStore_ConcurrentUpdateRead(t *testing.T) {
	store := NewStore()

	const writers = 10
	const perWriter = 100

	var wg sync.WaitGroup
	errs := make(chan string, writers*perWriter)

	// Каждый писатель кодирует свой номер в паре occupied/total,
	// поэтому смешанная запись сразу видна по нарушенной связи.
	for w := 1; w <= writers; w++ {
		wg.Add(2)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				total := w * 1000
				_, _ = store.Update(domain.OccupancyReport{Occupied: w, Total: total, Confidence: float64(w)})
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				state := store.Read()
				if state.Source == domain.ReportSourceBaseline {
					continue
				}
				if state.Total != state.Occupied*1000 || state.Confidence != float64(state.Occupied) {
					errs <- "mixed report observed"
				}
			}
		}()
	}

	wg.Wait()
	close(errs)

	for e := range errs {
		t.Fatal(e)
	}
}
