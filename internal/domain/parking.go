package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrDataUnavailable - источник инвентаря отсутствует или не читается ни в одной кодировке
	ErrDataUnavailable = errors.New("inventory data unavailable")

	// ErrInvalidReport - отчёт сенсора отклонён (total <= 0)
	ErrInvalidReport = errors.New("invalid occupancy report")

	// ErrMalformedRow - строка инвентаря без валидных координат, отбрасывается
	ErrMalformedRow = errors.New("malformed inventory row")
)

// FacilityRecord - парковка из инвентаря
type FacilityRecord struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location Point  `json:"location"`
	Capacity int    `json:"capacity"`
}

// Inventory - неизменяемый снимок инвентаря; заменяется только целиком
type Inventory struct {
	Facilities []FacilityRecord
	Source     string
	LoadedAt   time.Time
	Dropped    int
}

// Len возвращает количество парковок в снимке
func (inv *Inventory) Len() int {
	if inv == nil {
		return 0
	}
	return len(inv.Facilities)
}

// Report sources
const (
	ReportSourceBaseline = "baseline"
	ReportSourceHTTP     = "http"
	ReportSourceMQTT     = "mqtt"
	ReportSourceStream   = "stream"
)

// OccupancyReport - входящее наблюдение от vision-сенсора
type OccupancyReport struct {
	Occupied   int     `json:"occupied"`
	Total      int     `json:"total"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source,omitempty"`
}

// LiveReport - последнее принятое наблюдение по инструментированной зоне.
// AvailabilityPct может быть отрицательной, если occupied > total; clamp
// выполняется только при отдаче наружу.
type LiveReport struct {
	ID              uuid.UUID `json:"id"`
	Occupied        int       `json:"occupied"`
	Total           int       `json:"total"`
	Confidence      float64   `json:"confidence"`
	AvailabilityPct float64   `json:"availability_pct"`
	Source          string    `json:"source"`
	ReceivedAt      time.Time `json:"received_at"`
}

// Zone sources and trends
const (
	ZoneSourceLive      = "live"
	ZoneSourcePredicted = "predicted"

	TrendFalling = "falling"
	TrendStable  = "stable"

	// FallingThreshold - ниже этого процента доступности тренд считается падающим
	FallingThreshold = 30.0
)

// ZoneView - снимок зоны, собирается заново на каждый запрос
type ZoneView struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Lat             float64   `json:"lat"`
	Lng             float64   `json:"lng"`
	Capacity        int       `json:"capacity"`
	AvailabilityPct float64   `json:"availability"`
	Confidence      float64   `json:"confidence"`
	Trend           string    `json:"trend"`
	Source          string    `json:"source"`
	Status          string    `json:"status"`
	Region          string    `json:"region"`
	ObservedAt      time.Time `json:"observed_at"`
}

// TrendFor возвращает тренд для процента доступности
func TrendFor(availabilityPct float64) string {
	if availabilityPct < FallingThreshold {
		return TrendFalling
	}
	return TrendStable
}
