package worker

import (
	"context"
)

// Worker - фоновый транспорт приёма отчётов.
// Start блокирует до Stop или отмены ctx.
type Worker interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}
