package inventory

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/parking-availability/internal/config"
	"github.com/parking-availability/internal/domain"
	"github.com/parking-availability/internal/domain/repository"
	"github.com/parking-availability/internal/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
)

var (
	latitudeAliases  = []string{"latitude", "lat"}
	longitudeAliases = []string{"longitude", "lng", "lon", "long"}

	utf8BOM = []byte{0xEF, 0xBB, 0xBF}
)

// decoder - попытка интерпретировать сырые байты как текст
type decoder struct {
	name   string
	decode func([]byte) ([]byte, error)
}

var decoders = []decoder{
	{name: "utf-8", decode: decodeUTF8},
	// Windows-1252 отображает любой байт, поэтому это последняя попытка
	{name: "windows-1252", decode: func(raw []byte) ([]byte, error) {
		return charmap.Windows1252.NewDecoder().Bytes(raw)
	}},
}

// Loader читает CSV с парковками и отбрасывает строки без координат
type Loader struct {
	nameColumns     []string
	capacityColumns []string
	logger          *zap.Logger
}

// NewLoader создаёт Loader; списки колонок берутся из конфигурации
func NewLoader(cfg *config.InventoryConfig, logger *zap.Logger) *Loader {
	return &Loader{
		nameColumns:     cfg.NameColumns,
		capacityColumns: cfg.CapacityColumns,
		logger:          logger,
	}
}

var _ repository.InventoryLoader = (*Loader)(nil)

// Load возвращает очищенные записи и количество отброшенных строк.
// Любая ошибка оборачивает domain.ErrDataUnavailable, записи при этом пустые.
func (l *Loader) Load(ctx context.Context, path string) ([]domain.FacilityRecord, int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrDataUnavailable, err)
	}

	var lastErr error
	for _, dec := range decoders {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		text, err := dec.decode(raw)
		if err != nil {
			l.logger.Debug("Inventory decoding failed, trying next encoding",
				zap.String("path", path),
				zap.String("encoding", dec.name),
				zap.Error(err))
			lastErr = err
			continue
		}

		rows, err := readRows(text)
		if err != nil {
			l.logger.Debug("Inventory CSV parsing failed, trying next encoding",
				zap.String("path", path),
				zap.String("encoding", dec.name),
				zap.Error(err))
			lastErr = err
			continue
		}

		records, dropped, err := l.clean(rows)
		if err != nil {
			return nil, 0, err
		}

		l.logger.Info("Inventory loaded",
			zap.String("path", path),
			zap.String("encoding", dec.name),
			zap.Int("facilities", len(records)),
			zap.Int("dropped_rows", dropped))
		return records, dropped, nil
	}

	return nil, 0, fmt.Errorf("%w: %s: %v", domain.ErrDataUnavailable, path, lastErr)
}

func decodeUTF8(raw []byte) ([]byte, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if !utf8.Valid(raw) {
		return nil, errors.New("invalid utf-8 byte sequence")
	}
	return raw, nil
}

func readRows(text []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(text))
	// Наборы данных городских порталов часто содержат кавычки внутри значений (21°11" N)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, errors.New("empty dataset")
	}
	return rows, nil
}

// columns - индексы колонок после разрешения заголовка; -1 если колонки нет
type columns struct {
	lat      int
	lng      int
	name     int
	capacity []int
}

func (l *Loader) resolveColumns(header []string) (columns, error) {
	cols := columns{
		lat:  findColumn(header, latitudeAliases),
		lng:  findColumn(header, longitudeAliases),
		name: findColumn(header, l.nameColumns),
	}
	if cols.lat < 0 || cols.lng < 0 {
		return cols, fmt.Errorf("%w: latitude/longitude columns not found in header %v", domain.ErrDataUnavailable, header)
	}

	for _, name := range l.capacityColumns {
		if idx := findColumn(header, []string{name}); idx >= 0 {
			cols.capacity = append(cols.capacity, idx)
		}
	}
	return cols, nil
}

func (l *Loader) clean(rows [][]string) ([]domain.FacilityRecord, int, error) {
	cols, err := l.resolveColumns(rows[0])
	if err != nil {
		return nil, 0, err
	}

	records := make([]domain.FacilityRecord, 0, len(rows)-1)
	dropped := 0
	for i, row := range rows[1:] {
		record, err := parseRow(row, cols)
		if err != nil {
			dropped++
			l.logger.Debug("Dropping inventory row",
				zap.Int("line", i+2),
				zap.Error(err))
			continue
		}
		record.ID = len(records)
		records = append(records, record)
	}

	return records, dropped, nil
}

func parseRow(row []string, cols columns) (domain.FacilityRecord, error) {
	lat, okLat := parseNumber(field(row, cols.lat))
	lng, okLng := parseNumber(field(row, cols.lng))
	if !okLat || !okLng || !utils.ValidPoint(domain.Point{Lat: lat, Lon: lng}) {
		return domain.FacilityRecord{}, fmt.Errorf("%w: lat=%q lng=%q",
			domain.ErrMalformedRow, field(row, cols.lat), field(row, cols.lng))
	}

	capacity := 0
	for _, idx := range cols.capacity {
		// Отсутствующая или нечисловая вместимость - это 0, а не ошибка строки
		if v, ok := parseNumber(field(row, idx)); ok && v > 0 {
			capacity += int(math.Round(v))
		}
	}

	return domain.FacilityRecord{
		Name:     strings.TrimSpace(field(row, cols.name)),
		Location: domain.Point{Lat: lat, Lon: lng},
		Capacity: capacity,
	}, nil
}

func findColumn(header []string, names []string) int {
	for _, name := range names {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(name)) {
				return i
			}
		}
	}
	return -1
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !utils.IsFinite(v) {
		return 0, false
	}
	return v, true
}
