package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/parking-availability/internal/config"
	"github.com/parking-availability/internal/delivery/http/handler"
	"github.com/parking-availability/internal/delivery/http/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	ingestHandler    *handler.IngestHandler
	zoneHandler      *handler.ZoneHandler
	inventoryHandler *handler.InventoryHandler

	// nil, если метрики выключены
	gatherer prometheus.Gatherer
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	ingestHandler *handler.IngestHandler,
	zoneHandler *handler.ZoneHandler,
	inventoryHandler *handler.InventoryHandler,
	gatherer prometheus.Gatherer,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Parking Availability",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		ingestHandler:    ingestHandler,
		zoneHandler:      zoneHandler,
		inventoryHandler: inventoryHandler,
		gatherer:         gatherer,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App для тестов
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	if s.gatherer != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	// Legacy routes - ими пользуются уже развёрнутые сенсоры и старый клиент карты
	s.app.Post("/api/sync_vision", s.ingestHandler.IngestReport)
	s.app.Get("/api/predict", s.zoneHandler.GetZonesLegacy)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.inventoryHandler.Health)

	// Vision routes
	api.Post("/vision/reports", s.ingestHandler.IngestReport)
	api.Get("/vision/live", s.ingestHandler.GetLive)

	// Zone routes
	api.Get("/zones", s.zoneHandler.GetZones)
	api.Get("/zones/recommendation", s.zoneHandler.GetRecommendation)

	// Inventory routes
	api.Get("/inventory", s.inventoryHandler.GetInventory)
	api.Post("/inventory/reload", s.inventoryHandler.Reload)

	// Static map UI, регистрируется последним, чтобы не перекрывать API
	if s.config.Server.StaticDir != "" {
		s.app.Static("/", s.config.Server.StaticDir, fiber.Static{
			Index: "index.html",
		})
	}
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := "INTERNAL_SERVER_ERROR"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			if code == fiber.StatusNotFound {
				errCode = "NOT_FOUND"
			} else if code < fiber.StatusInternalServerError {
				errCode = "INVALID_REQUEST"
			}
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errCode,
				"message": err.Error(),
			},
		})
	}
}
