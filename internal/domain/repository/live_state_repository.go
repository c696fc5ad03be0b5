package repository

import "github.com/parking-availability/internal/domain"

// LiveStateRepository - хранилище последнего отчёта сенсора.
// Все реализации обязаны заменять отчёт целиком: читатель никогда
// не видит поля из двух разных отчётов.
type LiveStateRepository interface {
	// Update проверяет отчёт, пересчитывает доступность и атомарно заменяет состояние.
	// При total <= 0 возвращает domain.ErrInvalidReport и не меняет состояние.
	Update(report domain.OccupancyReport) (domain.LiveReport, error)

	// Read возвращает текущее состояние
	Read() domain.LiveReport
}
