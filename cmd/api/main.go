package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pos-platform/inventory-service/pkg/kafka"
	"github.com/pos-platform/inventory-service/pkg/logging"
	"github.com/pos-platform/inventory-service/pkg/metrics"
	"github.com/pos-platform/inventory-service/pkg/middleware"
	"github.com/pos-platform/inventory-service/pkg/mongodb"
	"github.com/pos-platform/inventory-service/pkg/tracing"

	httpapi "github.com/pos-platform/inventory-service/internal/api/http"
	"github.com/pos-platform/inventory-service/internal/application"
	infrakafka "github.com/pos-platform/inventory-service/internal/infrastructure/kafka"
	inframongo "github.com/pos-platform/inventory-service/internal/infrastructure/mongodb"
)

const serviceName = "inventory-service"

type config struct {
	Port            string
	Environment     string
	MongoURI        string
	MongoDatabase   string
	KafkaBrokers    []string
	OTLPEndpoint    string
	TracingEnabled  bool
	TraceSampleRate float64
	LogLevel        string
	ShutdownTimeout time.Duration
}

func loadConfig() *config {
	return &config{
		Port:            getEnv("PORT", "8084"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		MongoURI:        getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGODB_DATABASE", "pos"),
		KafkaBrokers:    strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		OTLPEndpoint:    getEnv("OTLP_ENDPOINT", "localhost:4317"),
		TracingEnabled:  getEnvBool("TRACING_ENABLED", true),
		TraceSampleRate: getEnvFloat("TRACE_SAMPLE_RATE", 1.0),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: 30 * time.Second,
	}
}

func main() {
	cfg := loadConfig()

	logCfg := logging.DefaultConfig(serviceName)
	logCfg.Level = logging.LogLevel(cfg.LogLevel)
	logCfg.Environment = cfg.Environment
	logger := logging.New(logCfg)
	logger.SetDefault()

	logger.Info("Starting inventory service", "port", cfg.Port, "environment", cfg.Environment)

	ctx := context.Background()

	traceCfg := tracing.DefaultConfig(serviceName)
	traceCfg.Environment = cfg.Environment
	traceCfg.OTLPEndpoint = cfg.OTLPEndpoint
	traceCfg.SampleRate = cfg.TraceSampleRate
	traceCfg.Enabled = cfg.TracingEnabled

	tracerProvider, err := tracing.Initialize(ctx, traceCfg)
	if err != nil {
		logger.Error("Failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Failed to shut down tracer provider", "error", err)
		}
	}()

	m := metrics.New(metrics.DefaultConfig(serviceName))

	mongoCfg := mongodb.DefaultConfig()
	mongoCfg.URI = cfg.MongoURI
	mongoCfg.Database = cfg.MongoDatabase

	connectCtx, cancel := context.WithTimeout(ctx, mongoCfg.ConnectTimeout)
	mongoClient, err := mongodb.NewClient(connectCtx, mongoCfg)
	cancel()
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Close(disconnectCtx); err != nil {
			logger.Warn("Failed to disconnect from MongoDB", "error", err)
		}
	}()

	kafkaCfg := kafka.DefaultConfig()
	kafkaCfg.Brokers = cfg.KafkaBrokers
	producer := kafka.NewCircuitBreakerProducer(kafka.NewProducer(kafkaCfg), logger.Logger)
	publisher := infrakafka.NewEventPublisher(producer, m, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close Kafka producer", "error", err)
		}
	}()

	db := mongoClient.Database()
	productRepo := inframongo.NewProductRepository(db, m)
	movementRepo := inframongo.NewStockMovementRepository(db, m)
	adjustmentRepo := inframongo.NewAdjustmentRepository(db, m)
	saleRepo := inframongo.NewSaleRepository(db, m)
	auditRepo := inframongo.NewAuditLogRepository(db, m)

	inventoryService := application.NewInventoryService(productRepo, movementRepo, adjustmentRepo, auditRepo, publisher, m, logger)
	dashboardService := application.NewDashboardService(saleRepo, productRepo, logger)
	reportService := application.NewReportService(saleRepo, movementRepo, logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	middleware.Setup(router, middleware.DefaultConfig(serviceName, logger.Logger))
	router.Use(middleware.TracingMiddleware(middleware.DefaultTracingConfig(serviceName)))
	router.Use(middleware.MetricsMiddleware(m))

	router.GET("/health", middleware.HealthCheck(serviceName))
	router.GET("/ready", middleware.ReadinessCheck(serviceName, func() error {
		checkCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return mongoClient.HealthCheck(checkCtx)
	}))
	router.GET("/metrics", middleware.MetricsEndpoint(m))
	router.NoRoute(middleware.NoRoute())
	router.NoMethod(middleware.NoMethod())

	httpapi.RegisterRoutes(router, httpapi.NewHandlers(inventoryService, dashboardService, reportService, logger))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("Shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}

	logger.Info("Server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
