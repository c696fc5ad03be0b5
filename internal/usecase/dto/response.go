package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/parking-availability/internal/domain"
)

// IngestReportResponse - подтверждение принятого отчёта
type IngestReportResponse struct {
	ID              uuid.UUID `json:"id"`
	Status          string    `json:"status"`
	AvailabilityPct float64   `json:"availability_pct"`
	ReceivedAt      time.Time `json:"received_at"`
}

// LiveStateResponse - текущее состояние инструментированной зоны.
// AvailabilityPct уже ограничен [0, 100], RawAvailabilityPct - как в хранилище.
type LiveStateResponse struct {
	ID                 uuid.UUID `json:"id"`
	Occupied           int       `json:"occupied"`
	Total              int       `json:"total"`
	Confidence         float64   `json:"confidence"`
	AvailabilityPct    float64   `json:"availability_pct"`
	RawAvailabilityPct float64   `json:"raw_availability_pct"`
	Source             string    `json:"source"`
	ReceivedAt         time.Time `json:"received_at"`
}

// ZonesResponse - список зон после слияния
type ZonesResponse struct {
	Zones      []domain.ZoneView `json:"zones"`
	Hour       int               `json:"hour"`
	ObservedAt time.Time         `json:"observed_at"`
}

// RecommendationResponse - лучшая зона и короткий текст для клиента
type RecommendationResponse struct {
	Zone       *domain.ZoneView `json:"zone"`
	DistanceKm *float64         `json:"distance_km,omitempty"`
	Reply      string           `json:"reply"`
	Hour       int              `json:"hour"`
	Considered int              `json:"considered"`
}

// InventoryResponse - результат перезагрузки инвентаря
type InventoryResponse struct {
	Facilities int       `json:"facilities"`
	Dropped    int       `json:"dropped_rows"`
	Source     string    `json:"source"`
	LoadedAt   time.Time `json:"loaded_at"`
}
