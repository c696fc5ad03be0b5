package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent1(t *testing.T) {
	tests := []struct {
		name     string
		part     int64
		whole    int64
		expected float64
	}{
		{"two thirds empty", 35, 60, 58.3},
		{"all free", 60, 60, 100},
		{"full", 0, 60, 0},
		{"overfull goes negative", -5, 60, -8.3},
		{"one of three", 1, 3, 33.3},
		{"half up", 1, 8, 12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Percent1(tt.part, tt.whole))
		})
	}
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 58.3, Round1(58.333333))
	assert.Equal(t, 17.5, Round1(17.45))
	assert.Equal(t, -2.5, Round1(-2.45))
	assert.Equal(t, 5.0, Round1(5))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(1, 5, 95))
	assert.Equal(t, 95.0, Clamp(120, 5, 95))
	assert.Equal(t, 42.0, Clamp(42, 5, 95))
	assert.Equal(t, 0.0, Clamp(-8.3, 0, 100))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(21.17))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
}
