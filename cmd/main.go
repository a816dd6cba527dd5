package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createManualBlockHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_manual_block"
	deleteManualBlockHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/delete_manual_block"
	deletePackageConfigHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/delete_package_config"
	getAvailableDatesHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_slots"
	getCompletionHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_completion"
	getPackageConfigHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_package_config"
	getScheduleProposalHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_schedule_proposal"
	listManualBlocksHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_manual_blocks"
	upsertPackageConfigHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/upsert_package_config"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	collaboratorCache "github.com/m04kA/SMC-SchedulingService/internal/infra/cache/collaborator"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/config"
	manualBlockRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/manualblock"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/marketplace"
	blocksService "github.com/m04kA/SMC-SchedulingService/internal/service/blocks"
	configService "github.com/m04kA/SMC-SchedulingService/internal/service/config"
	plannerService "github.com/m04kA/SMC-SchedulingService/internal/service/planner"
	snapshotService "github.com/m04kA/SMC-SchedulingService/internal/service/snapshot"
	getAvailableDatesUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	getCompletionUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_completion"
	getScheduleProposalUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_schedule_proposal"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Метрики: при выключенных метриках collector остается nil, все его методы nil-safe
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Репозитории и менеджер транзакций
	configRepository := configRepo.NewRepository(wrappedDB)
	manualBlockRepository := manualBlockRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Клиент маркетплейса с circuit breaker
	marketplaceClient := marketplace.NewClient(
		cfg.Marketplace.URL,
		time.Duration(cfg.Marketplace.Timeout)*time.Second,
		marketplace.BreakerConfig{
			MaxRequests:      cfg.Marketplace.BreakerMaxRequests,
			Interval:         time.Duration(cfg.Marketplace.BreakerInterval) * time.Second,
			Timeout:          time.Duration(cfg.Marketplace.BreakerTimeout) * time.Second,
			FailureThreshold: cfg.Marketplace.BreakerFailureThreshold,
		},
		metricsCollector,
		log,
	)
	log.Info("Marketplace client initialized (url=%s, timeout=%ds, failure_threshold=%d)",
		cfg.Marketplace.URL, cfg.Marketplace.Timeout, cfg.Marketplace.BreakerFailureThreshold)

	// Кэш ответов маркетплейса (опционально)
	var snapshotCache snapshotService.Cache
	if cfg.Cache.Enabled {
		redisCache := collaboratorCache.New(context.Background(), collaboratorCache.Config{
			Addr:           cfg.Cache.Addr,
			Password:       cfg.Cache.Password,
			DB:             cfg.Cache.DB,
			TTL:            time.Duration(cfg.Cache.TTL) * time.Second,
			KeyPrefix:      cfg.Cache.KeyPrefix,
			DisableOnError: cfg.Cache.DisableOnError,
		}, log)
		defer redisCache.Close()
		snapshotCache = redisCache
		log.Info("Collaborator cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
	}

	// Инициализируем сервисы
	configSvc := configService.NewService(configRepository, log)
	blocksSvc := blocksService.NewService(manualBlockRepository, txMgr, log)
	snapshotSvc := snapshotService.NewService(
		marketplaceClient,
		manualBlockRepository,
		snapshotCache,
		metricsCollector,
		log,
	)
	planner := plannerService.NewService(configSvc, snapshotSvc, log)

	// Инициализируем use cases
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(planner, log).
		WithDefaultDays(cfg.Engine.DefaultDatesDays)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(planner, metricsCollector, log)
	getCompletionUseCase := getCompletionUC.NewUseCase(planner, log)
	getScheduleProposalUseCase := getScheduleProposalUC.NewUseCase(planner, metricsCollector, log)

	// Инициализируем handlers
	getPackageConfig := getPackageConfigHandler.NewHandler(configSvc, log)
	upsertPackageConfig := upsertPackageConfigHandler.NewHandler(configSvc, log)
	deletePackageConfig := deletePackageConfigHandler.NewHandler(configSvc, log)
	createManualBlock := createManualBlockHandler.NewHandler(blocksSvc, log)
	listManualBlocks := listManualBlocksHandler.NewHandler(blocksSvc, log)
	deleteManualBlock := deleteManualBlockHandler.NewHandler(blocksSvc, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCompletion := getCompletionHandler.NewHandler(getCompletionUseCase, log)
	getScheduleProposal := getScheduleProposalHandler.NewHandler(getScheduleProposalUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Конфигурация пакета (с учетом иерархии и значения по умолчанию)
	api.HandleFunc("/projects/{projectId}/package-config",
		getPackageConfig.Handle).Methods(http.MethodGet)

	// Календарь доступности
	api.HandleFunc("/projects/{projectId}/available-dates",
		getAvailableDates.Handle).Methods(http.MethodGet)

	// Слоты часового режима
	api.HandleFunc("/projects/{projectId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Прогноз завершения работ
	api.HandleFunc("/projects/{projectId}/completion",
		getCompletion.Handle).Methods(http.MethodGet)

	// Ближайшая доступная дата
	api.HandleFunc("/projects/{projectId}/schedule-proposal",
		getScheduleProposal.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Конфигурация пакетов ---
	protected.HandleFunc("/projects/{projectId}/package-config",
		upsertPackageConfig.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/projects/{projectId}/package-config",
		deletePackageConfig.Handle).Methods(http.MethodDelete)

	// --- Ручные блокировки ---
	protected.HandleFunc("/projects/{projectId}/manual-blocks",
		createManualBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/projects/{projectId}/manual-blocks",
		listManualBlocks.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/manual-blocks/{blockId}",
		deleteManualBlock.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
