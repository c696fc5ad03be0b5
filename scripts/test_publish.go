//go:build ignore

// Публикует тестовый отчёт сенсора в Redis Stream или MQTT.
//
//	go run scripts/test_publish.go -occupied 25 -total 60
//	go run scripts/test_publish.go -transport mqtt -broker tcp://localhost:1883
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/redis/go-redis/v9"
)

type VisionReportEvent struct {
	SensorID   string    `json:"sensor_id,omitempty"`
	Occupied   int       `json:"occupied"`
	Total      int       `json:"total"`
	Confidence float64   `json:"confidence"`
	CapturedAt time.Time `json:"captured_at"`
}

func main() {
	transport := flag.String("transport", "redis", "redis or mqtt")
	redisAddr := flag.String("redis", "localhost:6379", "Redis address")
	stream := flag.String("stream", "stream:vision:reports", "Redis stream")
	broker := flag.String("broker", "tcp://localhost:1883", "MQTT broker")
	topic := flag.String("topic", "parking/vision/reports", "MQTT topic")
	occupied := flag.Int("occupied", 25, "occupied spots")
	total := flag.Int("total", 60, "total spots")
	confidence := flag.Float64("confidence", 98.4, "detection confidence")
	flag.Parse()

	event := VisionReportEvent{
		SensorID:   "test-publisher",
		Occupied:   *occupied,
		Total:      *total,
		Confidence: *confidence,
		CapturedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	switch *transport {
	case "redis":
		publishRedis(*redisAddr, *stream, data)
	case "mqtt":
		publishMQTT(*broker, *topic, data)
	default:
		log.Fatalf("Unknown transport %q", *transport)
	}
}

func publishRedis(addr, stream string, data []byte) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Published to %s: %s\n%s\n", stream, id, data)
}

func publishMQTT(broker, topic string, data []byte) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(fmt.Sprintf("test-publisher-%d", time.Now().Unix())).
		SetConnectTimeout(5 * time.Second)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("Failed to connect to MQTT: %v", token.Error())
	}
	defer client.Disconnect(250)

	token := client.Publish(topic, 1, false, data)
	token.Wait()
	if err := token.Error(); err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Published to %s\n%s\n", topic, data)
}
