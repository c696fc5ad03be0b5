package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Inventory InventoryConfig
	Redis     RedisConfig
	MQTT      MQTTConfig
	Metrics   MetricsConfig
	Log       LogConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Host      string
	Port      int
	Env       string
	Timezone    string
	StaticDir   string
	CORSOrigins string
}

type InventoryConfig struct {
	Path            string
	MaxZones        int
	NameColumns     []string
	CapacityColumns []string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type MQTTConfig struct {
	Enabled  bool
	Broker   string
	Port     int
	ClientID string
	Topic    string
}

type MetricsConfig struct {
	Enabled bool
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	ConsumerGroup     string
	StreamReadTimeout time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env необязателен: в контейнере всё приходит через окружение
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        viper.GetString("API_HOST"),
			Port:        viper.GetInt("API_PORT"),
			Env:         viper.GetString("API_ENV"),
			Timezone:    viper.GetString("API_TIMEZONE"),
			StaticDir:   viper.GetString("STATIC_DIR"),
			CORSOrigins: viper.GetString("CORS_ALLOW_ORIGINS"),
		},
		Inventory: InventoryConfig{
			Path:            viper.GetString("INVENTORY_PATH"),
			MaxZones:        viper.GetInt("INVENTORY_MAX_ZONES"),
			NameColumns:     parseList(viper.GetString("INVENTORY_NAME_COLUMNS")),
			CapacityColumns: parseList(viper.GetString("INVENTORY_CAPACITY_COLUMNS")),
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		MQTT: MQTTConfig{
			Enabled:  viper.GetBool("MQTT_ENABLED"),
			Broker:   viper.GetString("MQTT_BROKER"),
			Port:     viper.GetInt("MQTT_PORT"),
			ClientID: viper.GetString("MQTT_CLIENT_ID"),
			Topic:    viper.GetString("MQTT_TOPIC"),
		},
		Metrics: MetricsConfig{
			Enabled: viper.GetBool("METRICS_ENABLED"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
		},
	}

	applyDefaults(cfg)

	if _, err := time.LoadLocation(cfg.Server.Timezone); err != nil {
		return nil, fmt.Errorf("invalid API_TIMEZONE %q: %w", cfg.Server.Timezone, err)
	}

	return cfg, nil
}

// applyDefaults - значения по умолчанию для незаданных ключей
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Server.Timezone == "" {
		cfg.Server.Timezone = "Asia/Kolkata"
	}
	if cfg.Server.CORSOrigins == "" {
		// карта открывается как статический файл с любого хоста
		cfg.Server.CORSOrigins = "*"
	}
	if cfg.Inventory.Path == "" {
		cfg.Inventory.Path = "data/parking_inventory.csv"
	}
	if cfg.Inventory.MaxZones == 0 {
		cfg.Inventory.MaxZones = 50
	}
	if len(cfg.Inventory.NameColumns) == 0 {
		cfg.Inventory.NameColumns = []string{"Parking Name", "Name", "Location"}
	}
	if len(cfg.Inventory.CapacityColumns) == 0 {
		cfg.Inventory.CapacityColumns = []string{"4 Wheeler Capacity", "2 Wheeler Capacity"}
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.MQTT.Broker == "" {
		cfg.MQTT.Broker = "localhost"
	}
	if cfg.MQTT.Port == 0 {
		cfg.MQTT.Port = 1883
	}
	if cfg.MQTT.ClientID == "" {
		cfg.MQTT.ClientID = "parking-availability"
	}
	if cfg.MQTT.Topic == "" {
		cfg.MQTT.Topic = "parking/vision/reports"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "vision-report-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 1000 * time.Millisecond
	}
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// Location - часовой пояс для часа по умолчанию в запросах зон
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Server.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
