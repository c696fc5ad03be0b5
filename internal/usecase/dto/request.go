package dto

// IngestReportRequest - отчёт vision-сенсора. Указатели нужны, чтобы отличить
// отсутствующее поле от нуля: occupied=0 валиден.
type IngestReportRequest struct {
	Occupied   *int     `json:"occupied" validate:"required,min=0"`
	Total      *int     `json:"total" validate:"required"`
	Confidence *float64 `json:"confidence" validate:"required,min=0,max=100"`
}

// ZonesRequest - параметры запроса списка зон
type ZonesRequest struct {
	Hour *int `json:"hour" query:"hour" validate:"omitempty,min=0,max=23"`
}

// RecommendationRequest - запрос лучшей зоны; координаты опциональны, но только парой
type RecommendationRequest struct {
	Hour     *int     `json:"hour" query:"hour" validate:"omitempty,min=0,max=23"`
	Lat      *float64 `json:"lat" query:"lat" validate:"omitempty,min=-90,max=90"`
	Lon      *float64 `json:"lng" query:"lng" validate:"omitempty,min=-180,max=180"`
	RadiusKm float64  `json:"radius_km" query:"radius_km" validate:"omitempty,min=0.1,max=100"`
}
