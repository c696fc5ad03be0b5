package domain

import "time"

// Stream names
const (
	StreamVisionReports = "stream:vision:reports"
)

// VisionReportEvent - отчёт сенсора, пришедший через Redis Stream или MQTT
type VisionReportEvent struct {
	SensorID   string    `json:"sensor_id,omitempty"`
	Occupied   *int      `json:"occupied"`
	Total      *int      `json:"total"`
	Confidence *float64  `json:"confidence"`
	CapturedAt time.Time `json:"captured_at,omitempty"`
}

// IsComplete проверяет наличие всех обязательных числовых полей
func (e *VisionReportEvent) IsComplete() bool {
	return e.Occupied != nil && e.Total != nil && e.Confidence != nil
}

// ToReport конвертирует событие в OccupancyReport. Вызывать только после IsComplete.
func (e *VisionReportEvent) ToReport(source string) OccupancyReport {
	return OccupancyReport{
		Occupied:   *e.Occupied,
		Total:      *e.Total,
		Confidence: *e.Confidence,
		Source:     source,
	}
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
