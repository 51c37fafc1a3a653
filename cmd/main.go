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
	"github.com/redis/go-redis/v9"

	createAppointmentHandler "github.com/m04kA/BeautyBookingService/internal/api/handlers/create_appointment"
	createManualBlockHandler "github.com/m04kA/BeautyBookingService/internal/api/handlers/create_manual_block"
	createRegularWindowHandler "github.com/m04kA/BeautyBookingService/internal/api/handlers/create_regular_window"
	createServiceHandler "github.com/m04kA/BeautyBookingService/internal/api/handlers/create_service"
	deleteManualBlockHandler "github.com/m04kA/BeautyBookingService/internal/api/handlers/delete_manual_block"
	deleteRegularWindowHandler "github.com/m04kA/BeautyBookingService/internal/api/handlers/delete_regular_window"
	deleteSpecialDateHandler "github.com/m04kA/BeautyBookingService/internal/api/handlers/delete_special_date"
	getAppointmentHandler "github.com/m04kA/BeautyBookingService/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/m04kA/BeautyBookingService/internal/api/handlers/get_availability"
	healthHandler "github.com/m04kA/BeautyBookingService/internal/api/handlers/health"
	listAppointmentsHandler "github.com/m04kA/BeautyBookingService/internal/api/handlers/list_appointments"
	listManualBlocksHandler "github.com/m04kA/BeautyBookingService/internal/api/handlers/list_manual_blocks"
	listRegularWindowsHandler "github.com/m04kA/BeautyBookingService/internal/api/handlers/list_regular_windows"
	listServicesHandler "github.com/m04kA/BeautyBookingService/internal/api/handlers/list_services"
	updateAppointmentStatusHandler "github.com/m04kA/BeautyBookingService/internal/api/handlers/update_appointment_status"
	updateServiceHandler "github.com/m04kA/BeautyBookingService/internal/api/handlers/update_service"
	upsertSpecialDateHandler "github.com/m04kA/BeautyBookingService/internal/api/handlers/upsert_special_date"
	"github.com/m04kA/BeautyBookingService/internal/api/middleware"
	"github.com/m04kA/BeautyBookingService/internal/config"
	appointmentRepo "github.com/m04kA/BeautyBookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/BeautyBookingService/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/BeautyBookingService/internal/infra/storage/schedule"
	appointmentsService "github.com/m04kA/BeautyBookingService/internal/service/appointments"
	catalogService "github.com/m04kA/BeautyBookingService/internal/service/catalog"
	scheduleService "github.com/m04kA/BeautyBookingService/internal/service/schedule"
	createAppointmentUC "github.com/m04kA/BeautyBookingService/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/m04kA/BeautyBookingService/internal/usecase/get_availability"
	"github.com/m04kA/BeautyBookingService/pkg/dbmetrics"
	"github.com/m04kA/BeautyBookingService/pkg/logger"
	"github.com/m04kA/BeautyBookingService/pkg/metrics"
	"github.com/m04kA/BeautyBookingService/pkg/txmanager"
)

const rateLimitKeyPrefix = "beauty:ratelimit"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting BeautyBookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Часовой пояс бизнеса (проверен в config.Validate)
	businessLocation, err := cfg.Business.Location()
	if err != nil {
		log.Fatal("Failed to load business timezone %s: %v", cfg.Business.Timezone, err)
	}
	log.Info("Business timezone: %s", businessLocation)

	// Инициализируем метрики (если включены)
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

	// Обёртка над БД: без метрик просто проксирует вызовы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	if cfg.Metrics.Enabled {
		log.Info("Database metrics collection started")
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, txMgr, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		catalogRepository,
		appointmentRepository,
		scheduleRepository,
		businessLocation,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		getAvailabilityUseCase,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)

	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)

	listAllServices := listServicesHandler.NewAdminHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)

	listRegularWindows := listRegularWindowsHandler.NewHandler(scheduleSvc, log)
	createRegularWindow := createRegularWindowHandler.NewHandler(scheduleSvc, log)
	deleteRegularWindow := deleteRegularWindowHandler.NewHandler(scheduleSvc, log)
	upsertSpecialDate := upsertSpecialDateHandler.NewHandler(scheduleSvc, log)
	deleteSpecialDate := deleteSpecialDateHandler.NewHandler(scheduleSvc, log)
	listManualBlocks := listManualBlocksHandler.NewHandler(scheduleSvc, log)
	createManualBlock := createManualBlockHandler.NewHandler(scheduleSvc, log)
	deleteManualBlock := deleteManualBlockHandler.NewHandler(scheduleSvc, log)

	health := healthHandler.NewHandler(db, log)

	// Настраиваем лимитер запросов (Redis, если задан адрес, иначе в памяти процесса)
	var limiter middleware.Limiter
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UsesRedis() {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.RateLimit.RedisAddr,
				Password: cfg.RateLimit.RedisPassword,
				DB:       cfg.RateLimit.RedisDB,
			})
			defer rdb.Close()

			pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
			if err := rdb.Ping(pingCtx).Err(); err != nil {
				log.Warn("Redis is not reachable at %s: %v (fail_open=%t)",
					cfg.RateLimit.RedisAddr, err, cfg.RateLimit.FailOpen)
			}
			pingCancel()

			limiter = middleware.NewRedisLimiter(rdb, cfg.RateLimit.RequestsPerMinute, time.Minute, rateLimitKeyPrefix)
			log.Info("Rate limit enabled via Redis %s (%d req/min)",
				cfg.RateLimit.RedisAddr, cfg.RateLimit.RequestsPerMinute)
		} else {
			limiter = middleware.NewMemoryLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
			log.Info("Rate limit enabled in memory (%d req/min, burst=%d)",
				cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		}
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))
	r.Use(middleware.Recover(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (с ограничением частоты запросов)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if limiter != nil {
		public.Use(middleware.RateLimit(limiter, cfg.RateLimit.FailOpen, log))
	}

	// Доступные интервалы на дату
	public.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание записи
	public.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Активные услуги
	public.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Business.AdminToken, log))

	// --- Записи ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Каталог услуг ---
	admin.HandleFunc("/services", listAllServices.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)

	// --- Расписание ---
	admin.HandleFunc("/availability/regular", listRegularWindows.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability/regular", createRegularWindow.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/availability/regular/{windowId}", deleteRegularWindow.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/availability/special-dates/{date}", upsertSpecialDate.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/availability/special-dates/{date}", deleteSpecialDate.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/availability/blocks", listManualBlocks.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability/blocks", createManualBlock.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/availability/blocks/{blockId}", deleteManualBlock.Handle).Methods(http.MethodDelete)

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
