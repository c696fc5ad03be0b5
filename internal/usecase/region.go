package usecase

import "github.com/parking-availability/internal/domain"

// Region - корзина простого газеттира: предикат по координатам, подпись и час пика
type Region struct {
	Label    string
	PeakHour int
	Contains func(p domain.Point) bool
}

// Gazetteer - упорядоченный список регионов, выигрывает первое совпадение.
// Регионы пересекаются, поэтому порядок определяет видимую подпись.
type Gazetteer struct {
	regions  []Region
	fallback Region
}

// NewGazetteer создаёт газеттир; fallback используется, если ни один регион не подошёл
func NewGazetteer(regions []Region, fallback Region) *Gazetteer {
	return &Gazetteer{regions: regions, fallback: fallback}
}

// DefaultGazetteer - корзины для Сурата (набор данных муниципальных парковок).
// Рыночный хаб проверяется раньше восточного пояса: он пересекается с ним по долготе.
func DefaultGazetteer() *Gazetteer {
	return NewGazetteer([]Region{
		{
			Label:    "Textile Market Hub",
			PeakHour: 12,
			Contains: func(p domain.Point) bool { return p.Lat < 21.195 && p.Lon > 72.835 },
		},
		{
			Label:    "Varachha East",
			PeakHour: 11,
			Contains: func(p domain.Point) bool { return p.Lon > 72.85 },
		},
		{
			Label:    "Adajan West",
			PeakHour: 20,
			Contains: func(p domain.Point) bool { return p.Lon < 72.80 },
		},
		{
			Label:    "Vesu South",
			PeakHour: 19,
			Contains: func(p domain.Point) bool { return p.Lat < 21.16 },
		},
		{
			Label:    "Katargam North",
			PeakHour: 9,
			Contains: func(p domain.Point) bool { return p.Lat > 21.22 },
		},
	}, Region{Label: "Central", PeakHour: 18})
}

// Resolve возвращает первый регион, содержащий точку
func (g *Gazetteer) Resolve(p domain.Point) Region {
	for _, r := range g.regions {
		if r.Contains(p) {
			return r
		}
	}
	return g.fallback
}

// Labels - подписи в порядке проверки, fallback последним
func (g *Gazetteer) Labels() []string {
	labels := make([]string, 0, len(g.regions)+1)
	for _, r := range g.regions {
		labels = append(labels, r.Label)
	}
	return append(labels, g.fallback.Label)
}
