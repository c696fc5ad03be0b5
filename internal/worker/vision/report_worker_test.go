package vision_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/parking-availability/internal/domain"
	"github.com/parking-availability/internal/pkg/metrics"
	"github.com/parking-availability/internal/repository/livestate"
	"github.com/parking-availability/internal/usecase"
	"github.com/parking-availability/internal/worker/vision"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func newWorker(stream *MockStreamRepository) (*vision.ReportWorker, *livestate.Store) {
	store := livestate.NewStore()
	ingestUC := usecase.NewIngestUseCase(store, metrics.Nop{}, zap.NewNop())
	return vision.NewReportWorker(stream, ingestUC, "test-group", zap.NewNop()), store
}

func TestReportWorker_Name(t *testing.T) {
	w, _ := newWorker(&MockStreamRepository{})
	assert.Equal(t, "vision-report-stream", w.Name())
}

func TestReportWorker_ProcessBatch_LastReportWins(t *testing.T) {
	stream := &MockStreamRepository{}
	w, store := newWorker(stream)

	messages := []domain.StreamMessage{
		{ID: "1-0", Data: `{"sensor_id":"cam-1","occupied":10,"total":40,"confidence":90}`},
		{ID: "2-0", Data: `{"sensor_id":"cam-1","occupied":25,"total":60,"confidence":98.4}`},
	}
	stream.On("ConsumeBatch", mock.Anything, domain.StreamVisionReports, "test-group", mock.Anything, 20).
		Return(messages, nil).Once()
	stream.On("AckMessages", mock.Anything, domain.StreamVisionReports, "test-group", []string{"1-0", "2-0"}).
		Return(nil).Once()

	processed, err := w.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, processed)

	state := store.Read()
	assert.Equal(t, 25, state.Occupied)
	assert.Equal(t, 58.3, state.AvailabilityPct)
	assert.Equal(t, domain.ReportSourceStream, state.Source)
	stream.AssertExpectations(t)
}

func TestReportWorker_ProcessBatch_AcksInvalidMessages(t *testing.T) {
	stream := &MockStreamRepository{}
	w, store := newWorker(stream)

	messages := []domain.StreamMessage{
		{ID: "1-0", Data: `not json`},
		{ID: "2-0", Data: ""},
		{ID: "3-0", Data: `{"occupied":5,"total":0,"confidence":90}`},
		{ID: "4-0", Data: `{"occupied":5,"confidence":90}`},
		{ID: "5-0", Data: `{"occupied":5,"total":10,"confidence":120}`},
	}
	stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(messages, nil).Once()
	stream.On("AckMessages", mock.Anything, domain.StreamVisionReports, "test-group",
		[]string{"1-0", "2-0", "3-0", "4-0", "5-0"}).Return(nil).Once()

	processed, err := w.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, processed)

	// ни один отчёт не принят - состояние осталось базовым
	assert.Equal(t, livestate.Baseline.Total, store.Read().Total)
	assert.Equal(t, domain.ReportSourceBaseline, store.Read().Source)
	stream.AssertExpectations(t)
}

func TestReportWorker_ProcessBatch_Empty(t *testing.T) {
	stream := &MockStreamRepository{}
	w, _ := newWorker(stream)

	stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Once()

	processed, err := w.ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Zero(t, processed)
	stream.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportWorker_ProcessBatch_ConsumeError(t *testing.T) {
	stream := &MockStreamRepository{}
	w, _ := newWorker(stream)

	stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	_, err := w.ProcessBatch(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}

func TestReportWorker_StartFailsWithoutGroup(t *testing.T) {
	stream := &MockStreamRepository{}
	w, _ := newWorker(stream)

	stream.On("CreateConsumerGroup", mock.Anything, domain.StreamVisionReports, "test-group").
		Return(errors.New("NOAUTH")).Once()

	assert.Error(t, w.Start(context.Background()))
}

func TestReportWorker_StopEndsLoop(t *testing.T) {
	stream := &MockStreamRepository{}
	w, _ := newWorker(stream)

	stream.On("CreateConsumerGroup", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	stream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
