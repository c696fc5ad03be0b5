package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/parking-availability/internal/domain"
	"github.com/parking-availability/internal/domain/repository"
	"github.com/parking-availability/internal/worker"
	"go.uber.org/zap"
)

const (
	maxBatchSize    = 20                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep      = time.Second
)

// ReportWorker читает отчёты сенсора из Redis Stream и применяет их к live-состоянию
type ReportWorker struct {
	*worker.BaseWorker
	streamRepo    repository.StreamRepository
	ingester      worker.ReportIngester
	consumerGroup string
	consumerName  string
}

// NewReportWorker создает новый ReportWorker
func NewReportWorker(
	streamRepo repository.StreamRepository,
	ingester worker.ReportIngester,
	consumerGroup string,
	logger *zap.Logger,
) *ReportWorker {
	hostname, _ := os.Hostname()

	return &ReportWorker{
		BaseWorker:    worker.NewBaseWorker("vision-report-stream", logger),
		streamRepo:    streamRepo,
		ingester:      ingester,
		consumerGroup: consumerGroup,
		consumerName:  fmt.Sprintf("%s-%d", hostname, os.Getpid()),
	}
}

// Start запускает цикл чтения стрима
func (w *ReportWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ReportWorker",
		zap.String("stream", domain.StreamVisionReports),
		zap.String("consumer_group", w.consumerGroup),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamVisionReports, w.consumerGroup); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return nil
		default:
		}

		processed, err := w.ProcessBatch(ctx)
		pause := time.Duration(0)
		switch {
		case err != nil:
			logger.Error("Failed to process batch", zap.Error(err))
			pause = errorSleep
		case processed == 0:
			pause = emptyQueueSleep
		}

		if pause > 0 && !w.Pause(ctx, pause) {
			logger.Info("Worker stopped")
			return nil
		}
	}
}

// ProcessBatch читает и применяет одну пачку. Отчёты применяются по порядку
// стрима, поэтому в live-состоянии остаётся последний.
// Битые и отклонённые сообщения подтверждаются, чтобы не застревали в PEL.
func (w *ReportWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamVisionReports,
		w.consumerGroup,
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(messages))
	accepted := 0
	for _, msg := range messages {
		ids = append(ids, msg.ID)

		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			continue
		}

		if _, err := w.ingester.IngestEvent(ctx, *event, domain.ReportSourceStream); err != nil {
			logger.Warn("Report rejected",
				zap.String("message_id", msg.ID),
				zap.String("sensor_id", event.SensorID),
				zap.Error(err))
			continue
		}
		accepted++
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamVisionReports, w.consumerGroup, ids); err != nil {
		// не критично: сообщения перечитаются, последний отчёт всё равно победит
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Debug("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("accepted", accepted))

	return len(messages), nil
}

func parseMessage(msg domain.StreamMessage) (*domain.VisionReportEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing 'data' field")
	}

	var event domain.VisionReportEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}
