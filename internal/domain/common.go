package domain

// Point - координаты WGS84
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lng"`
}
