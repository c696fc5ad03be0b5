package usecase

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/parking-availability/internal/pkg/utils"
)

const (
	minPredicted = 5.0
	maxPredicted = 95.0

	baseAvailability = 20.0
	perHourRecovery  = 5.0

	jitterSpan  = 5
	surgeFactor = 0.7
)

// RandomSource - источник случайности; подменяется в тестах
type RandomSource interface {
	IntN(n int) int
	Float64() float64
}

// globalRand использует потокобезопасные функции пакета math/rand/v2
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// DefaultRandom - общий источник для продакшена
func DefaultRandom() RandomSource {
	return globalRand{}
}

// ZoneProfile - статический профиль неинструментированной зоны
type ZoneProfile struct {
	PeakHour int
	Label    string
}

// Predictor синтезирует доступность по часу пика зоны.
// Модель намеренно простая: затухание от пика, джиттер и периодический всплеск.
type Predictor struct {
	rnd RandomSource
}

func NewPredictor(rnd RandomSource) *Predictor {
	return &Predictor{rnd: rnd}
}

// Predict возвращает доступность в процентах в диапазоне [5, 95]
func (p *Predictor) Predict(profile ZoneProfile, hour int, now time.Time) float64 {
	v := (BaseAvailability(profile, hour) + float64(p.jitter())) * SurgeFactor(now)
	return utils.Round1(utils.Clamp(v, minPredicted, maxPredicted))
}

// BaseAvailability - 20 + 5 за каждый час от пика. Расстояние линейное,
// через полночь не переносится: час 23 при пике 1 даёт 22, а не 2.
func BaseAvailability(profile ZoneProfile, hour int) float64 {
	distance := math.Abs(float64(hour - profile.PeakHour))
	return baseAvailability + distance*perHourRecovery
}

// SurgeFactor - 0.7 на чётных секундах, иначе 1.0
func SurgeFactor(now time.Time) float64 {
	if now.Unix()%2 == 0 {
		return surgeFactor
	}
	return 1.0
}

// jitter - равномерное целое в [-5, 5]
func (p *Predictor) jitter() int {
	return p.rnd.IntN(2*jitterSpan+1) - jitterSpan
}
