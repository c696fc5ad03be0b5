package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/parking-availability/internal/config"
	"github.com/parking-availability/internal/domain"
	"github.com/parking-availability/internal/worker"
	"go.uber.org/zap"
)

const (
	subscribeQoS     = byte(1) // at least once
	subscribeTimeout = 5 * time.Second
	disconnectQuiesce = 250 // ms
)

// Client - часть paho.Client, которой пользуется Subscriber
type Client interface {
	Connect() paho.Token
	IsConnected() bool
	Disconnect(quiesce uint)
	Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token
	Unsubscribe(topics ...string) paho.Token
}

// NewClient собирает paho-клиент с автопереподключением
func NewClient(cfg *config.MQTTConfig, logger *zap.Logger) paho.Client {
	opts := paho.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.Broker, cfg.Port)).
		SetClientID(cfg.ClientID).
		SetCleanSession(true).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetMaxReconnectInterval(60 * time.Second).
		SetConnectTimeout(5 * time.Second).
		SetKeepAlive(30 * time.Second)

	opts.SetOnConnectHandler(func(_ paho.Client) {
		logger.Info("MQTT connected",
			zap.String("broker", cfg.Broker),
			zap.Int("port", cfg.Port))
	})
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		logger.Warn("MQTT connection lost", zap.Error(err))
	})

	return paho.NewClient(opts)
}

// Subscriber получает отчёты сенсора из MQTT-топика
type Subscriber struct {
	*worker.BaseWorker
	client   Client
	topic    string
	ingester worker.ReportIngester
}

// NewSubscriber создает новый Subscriber
func NewSubscriber(client Client, topic string, ingester worker.ReportIngester, logger *zap.Logger) *Subscriber {
	return &Subscriber{
		BaseWorker: worker.NewBaseWorker("vision-report-mqtt", logger),
		client:     client,
		topic:      topic,
		ingester:   ingester,
	}
}

// Start подключается, подписывается и держит подписку до Stop или отмены ctx
func (s *Subscriber) Start(ctx context.Context) error {
	logger := s.Logger()

	if err := s.connect(ctx); err != nil {
		return err
	}
	defer s.client.Disconnect(disconnectQuiesce)

	token := s.client.Subscribe(s.topic, subscribeQoS, func(_ paho.Client, msg paho.Message) {
		s.HandleMessage(ctx, msg.Topic(), msg.Payload())
	})
	if !token.WaitTimeout(subscribeTimeout) {
		return fmt.Errorf("subscribe timeout for topic %s", s.topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribe to %s: %w", s.topic, err)
	}

	logger.Info("Subscribed to MQTT topic", zap.String("topic", s.topic))

	select {
	case <-s.StopChan():
	case <-ctx.Done():
	}

	s.client.Unsubscribe(s.topic).WaitTimeout(subscribeTimeout)
	logger.Info("MQTT subscriber stopped")
	return nil
}

// connect ждёт подключения, не блокируя Stop
func (s *Subscriber) connect(ctx context.Context) error {
	if s.client.IsConnected() {
		return nil
	}

	token := s.client.Connect()
	const poll = 200 * time.Millisecond
	for !token.WaitTimeout(poll) {
		select {
		case <-ctx.Done():
			s.client.Disconnect(0)
			return ctx.Err()
		case <-s.StopChan():
			s.client.Disconnect(0)
			return nil
		default:
		}
	}

	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt connect: %w", err)
	}
	return nil
}

// HandleMessage разбирает и применяет одно сообщение. Ошибки только логируются:
// повторная доставка битого отчёта ничего не исправит.
func (s *Subscriber) HandleMessage(ctx context.Context, topic string, payload []byte) {
	logger := s.Logger()

	var event domain.VisionReportEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		logger.Warn("Failed to parse MQTT report",
			zap.String("topic", topic),
			zap.Int("size", len(payload)),
			zap.Error(err))
		return
	}

	result, err := s.ingester.IngestEvent(ctx, event, domain.ReportSourceMQTT)
	if err != nil {
		logger.Warn("MQTT report rejected",
			zap.String("topic", topic),
			zap.String("sensor_id", event.SensorID),
			zap.Error(err))
		return
	}

	logger.Debug("MQTT report applied",
		zap.String("sensor_id", event.SensorID),
		zap.String("report_id", result.ID.String()),
		zap.Float64("availability_pct", result.AvailabilityPct))
}
