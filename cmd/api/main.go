package main

// @title Parking Availability API
// @version 1.0.0
// @description Сервис доступности парковок: live-данные vision-сенсора по инструментированной зоне плюс прогноз по профилям часа пика для остальных зон.
// @description
// @description Основные возможности:
// @description - Приём отчётов сенсора (HTTP, MQTT, Redis Stream)
// @description - Слитый список зон для карты
// @description - Рекомендация зоны с наибольшей доступностью

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/parking-availability/docs/swagger"
	"github.com/parking-availability/internal/config"
	httpDelivery "github.com/parking-availability/internal/delivery/http"
	"github.com/parking-availability/internal/delivery/http/handler"
	"github.com/parking-availability/internal/infrastructure/mqtt"
	"github.com/parking-availability/internal/pkg/logger"
	"github.com/parking-availability/internal/pkg/metrics"
	"github.com/parking-availability/internal/repository/inventory"
	"github.com/parking-availability/internal/repository/livestate"
	redisRepo "github.com/parking-availability/internal/repository/redis"
	"github.com/parking-availability/internal/usecase"
	"github.com/parking-availability/internal/worker"
	"github.com/parking-availability/internal/worker/vision"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Parking Availability service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("timezone", cfg.Server.Timezone),
		zap.String("inventory", cfg.Inventory.Path),
	)

	// 3. Metrics
	var recorder metrics.Recorder = metrics.Nop{}
	var gatherer prometheus.Gatherer
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		prom, err := metrics.NewPromRecorder(reg)
		if err != nil {
			log.Fatal("Failed to register metrics", zap.Error(err))
		}
		recorder = prom
		gatherer = reg
		log.Info("Prometheus metrics enabled")
	}

	// 4. Initialize Repositories
	liveStore := livestate.NewStore()
	inventoryStore := inventory.NewStore(
		inventory.NewLoader(&cfg.Inventory, log),
		cfg.Inventory.Path,
		log,
	)

	log.Info("Repositories initialized")

	// 5. Initialize Use Cases
	rnd := usecase.DefaultRandom()
	builder := usecase.NewFusionBuilder(
		usecase.NewPredictor(rnd),
		usecase.DefaultGazetteer(),
		rnd,
	)

	ingestUC := usecase.NewIngestUseCase(liveStore, recorder, log)
	inventoryUC := usecase.NewInventoryUseCase(inventoryStore, recorder, log)
	zoneUC := usecase.NewZoneUseCase(
		inventoryStore,
		liveStore,
		builder,
		recorder,
		log,
		cfg.Inventory.MaxZones,
		cfg.Location(),
		time.Now,
	)

	// Инвентарь недоступен - не фатально, карта просто пустая до reload
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if inv, err := inventoryUC.Reload(loadCtx); err != nil {
		log.Warn("Inventory unavailable, serving empty zone list", zap.Error(err))
	} else {
		log.Info("Inventory loaded",
			zap.Int("facilities", inv.Facilities),
			zap.Int("dropped_rows", inv.Dropped))
	}
	loadCancel()

	log.Info("Use cases initialized")

	// 6. Ingest workers
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	workerManager := worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redisRepo.NewClient(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		streamRepo := redisRepo.NewStreamRepository(redisClient, cfg.Worker.StreamReadTimeout, log)
		workerManager.Register(vision.NewReportWorker(streamRepo, ingestUC, cfg.Worker.ConsumerGroup, log))
	}

	if cfg.MQTT.Enabled {
		client := mqtt.NewClient(&cfg.MQTT, log)
		workerManager.Register(mqtt.NewSubscriber(client, cfg.MQTT.Topic, ingestUC, log))
	}

	workerManager.Start(workerCtx)

	// 7. Initialize HTTP Handlers
	ingestHandler := handler.NewIngestHandler(ingestUC, log)
	zoneHandler := handler.NewZoneHandler(zoneUC, log)
	inventoryHandler := handler.NewInventoryHandler(inventoryUC, log)

	log.Info("HTTP handlers initialized")

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		ingestHandler,
		zoneHandler,
		inventoryHandler,
		gatherer,
	)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
		zap.Int("workers", workerManager.Len()),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Сначала HTTP: новые отчёты перестают приниматься
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := workerManager.Stop(); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}
	workerCancel()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
