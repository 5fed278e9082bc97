package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/m04kA/DogPlanner-PricingService/internal/api/handlers"
	cancelBookingHandler "github.com/m04kA/DogPlanner-PricingService/internal/api/handlers/cancel_booking"
	cancellationPreviewHandler "github.com/m04kA/DogPlanner-PricingService/internal/api/handlers/cancellation_preview"
	createBookingHandler "github.com/m04kA/DogPlanner-PricingService/internal/api/handlers/create_booking"
	exportReportHandler "github.com/m04kA/DogPlanner-PricingService/internal/api/handlers/export_report"
	getBookingHandler "github.com/m04kA/DogPlanner-PricingService/internal/api/handlers/get_booking"
	getMyBookingsHandler "github.com/m04kA/DogPlanner-PricingService/internal/api/handlers/get_my_bookings"
	getOrgBookingsHandler "github.com/m04kA/DogPlanner-PricingService/internal/api/handlers/get_org_bookings"
	getPolicyHandler "github.com/m04kA/DogPlanner-PricingService/internal/api/handlers/get_policy"
	occupancyReportHandler "github.com/m04kA/DogPlanner-PricingService/internal/api/handlers/occupancy_report"
	quoteHandler "github.com/m04kA/DogPlanner-PricingService/internal/api/handlers/quote"
	resetPolicyHandler "github.com/m04kA/DogPlanner-PricingService/internal/api/handlers/reset_policy"
	updatePolicyHandler "github.com/m04kA/DogPlanner-PricingService/internal/api/handlers/update_policy"
	updateStatusHandler "github.com/m04kA/DogPlanner-PricingService/internal/api/handlers/update_status"
	"github.com/m04kA/DogPlanner-PricingService/internal/api/middleware"
	"github.com/m04kA/DogPlanner-PricingService/internal/config"
	reportCache "github.com/m04kA/DogPlanner-PricingService/internal/infra/cache/report"
	bookingRepo "github.com/m04kA/DogPlanner-PricingService/internal/infra/storage/booking"
	policyRepo "github.com/m04kA/DogPlanner-PricingService/internal/infra/storage/policy"
	roomRepo "github.com/m04kA/DogPlanner-PricingService/internal/infra/storage/room"
	dogRegistryClient "github.com/m04kA/DogPlanner-PricingService/internal/integrations/dogregistry"
	orgServiceClient "github.com/m04kA/DogPlanner-PricingService/internal/integrations/orgservice"
	"github.com/m04kA/DogPlanner-PricingService/internal/jobs/report_warmup"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/access"
	bookingsService "github.com/m04kA/DogPlanner-PricingService/internal/service/bookings"
	policyService "github.com/m04kA/DogPlanner-PricingService/internal/service/policy"
	cancelBookingUC "github.com/m04kA/DogPlanner-PricingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/DogPlanner-PricingService/internal/usecase/create_booking"
	exportReportUC "github.com/m04kA/DogPlanner-PricingService/internal/usecase/export_report"
	occupancyReportUC "github.com/m04kA/DogPlanner-PricingService/internal/usecase/occupancy_report"
	quotePriceUC "github.com/m04kA/DogPlanner-PricingService/internal/usecase/quote_price"
	updateStatusUC "github.com/m04kA/DogPlanner-PricingService/internal/usecase/update_status"
	"github.com/m04kA/DogPlanner-PricingService/pkg/dbmetrics"
	"github.com/m04kA/DogPlanner-PricingService/pkg/logger"
	"github.com/m04kA/DogPlanner-PricingService/pkg/metrics"
	"github.com/m04kA/DogPlanner-PricingService/pkg/txmanager"
)

const warmupTimeout = 10 * time.Minute

func main() {
	// .env не обязателен: в контейнере переменные приходят из окружения
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Failed to load .env: %v\n", err)
		os.Exit(1)
	}

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

	log.Info("Starting DogPlanner-PricingService...")
	log.Info("Configuration loaded from %s", configPath)

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

	// Без метрик обёртка работает как прозрачный прокси
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш отчётов в Redis (опционально)
	var (
		redisClient *redis.Client
		cache       reportCacheStore
	)
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancelPing()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Address, err)
		}

		cache = reportCache.NewCache(redisClient, time.Duration(cfg.Reports.CacheTTLSeconds)*time.Second, log)
		log.Info("Report cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Address, cfg.Reports.CacheTTLSeconds)
	} else {
		log.Warn("Redis disabled, occupancy reports are computed on every request")
	}

	// Инициализируем интеграционных клиентов
	dogClient := dogRegistryClient.NewClient(
		cfg.DogRegistry.URL,
		time.Duration(cfg.DogRegistry.Timeout)*time.Second,
		log,
	)
	orgClient := orgServiceClient.NewClient(
		cfg.OrgService.URL,
		time.Duration(cfg.OrgService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (DogRegistry=%s timeout=%ds, OrgService=%s timeout=%ds)",
		cfg.DogRegistry.URL, cfg.DogRegistry.Timeout, cfg.OrgService.URL, cfg.OrgService.Timeout)

	// Дефолтные политики из конфигурации
	defaultPricing := cfg.PricingPolicy()
	defaultCancellation := cfg.CancellationPolicy()

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	roomRepository := roomRepo.NewRepository(wrappedDB)
	policyRepository := policyRepo.NewRepository(wrappedDB, defaultPricing, defaultCancellation)

	// Инициализируем сервисы
	accessChecker := access.NewChecker(orgClient, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		accessChecker,
		log,
	)
	policySvc := policyService.NewService(
		policyRepository,
		accessChecker,
		defaultPricing,
		defaultCancellation,
		log,
	)

	serviceMetrics := metricsCollector.ForService(cfg.Metrics.ServiceName)

	// Инициализируем use cases
	quotePriceUseCase := quotePriceUC.NewUseCase(
		dogClient,
		policySvc,
		serviceMetrics,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		dogClient,
		policySvc,
		cache,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		policySvc,
		accessChecker,
		cache,
		serviceMetrics,
		txMgr,
		log,
	)
	updateStatusUseCase := updateStatusUC.NewUseCase(
		bookingRepository,
		accessChecker,
		cache,
		txMgr,
		log,
	)
	occupancyReportUseCase := occupancyReportUC.NewUseCase(
		bookingRepository,
		roomRepository,
		accessChecker,
		cache,
		serviceMetrics,
		log,
	)
	exportReportUseCase := exportReportUC.NewUseCase(
		occupancyReportUseCase,
		roomRepository,
		accessChecker,
		log,
	)

	// Инициализируем handlers
	quote := quoteHandler.NewHandler(quotePriceUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingSvc, log)
	getOrgBookings := getOrgBookingsHandler.NewHandler(bookingSvc, log)
	cancellationPreview := cancellationPreviewHandler.NewHandler(cancelBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	updateStatus := updateStatusHandler.NewHandler(updateStatusUseCase, log)
	getPolicy := getPolicyHandler.NewHandler(policySvc, log)
	updatePolicy := updatePolicyHandler.NewHandler(policySvc, log)
	resetPolicy := resetPolicyHandler.NewHandler(policySvc, log)
	occupancyReport := occupancyReportHandler.NewHandler(occupancyReportUseCase, log)
	exportReport := exportReportHandler.NewHandler(exportReportUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondNotFound(w, "resursen hittades inte")
	})

	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestID)

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		r.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расчёт цены пребывания
	api.HandleFunc("/quotes", quote.Handle).Methods(http.MethodPost)

	// Действующая политика цен и отмены организации
	api.HandleFunc("/orgs/{orgId:[0-9]+}/policy", getPolicy.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// /bookings/my регистрируется раньше /bookings/{bookingId}
	protected.HandleFunc("/bookings/my", getMyBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)

	// Предпросмотр и выполнение отмены
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/cancellation-preview",
		cancellationPreview.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса персоналом (заезд, выезд, подтверждение)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// --- Управление организацией (для персонала) ---
	protected.HandleFunc("/orgs/{orgId:[0-9]+}/bookings", getOrgBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/orgs/{orgId:[0-9]+}/policy", updatePolicy.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/orgs/{orgId:[0-9]+}/policy", resetPolicy.Handle).Methods(http.MethodDelete)

	// --- Отчёты ---
	protected.HandleFunc("/orgs/{orgId:[0-9]+}/reports/occupancy", occupancyReport.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/orgs/{orgId:[0-9]+}/reports/export", exportReport.Handle).Methods(http.MethodGet)

	// Прогрев кэша отчётов по расписанию
	scheduler := cron.New()
	if cfg.Reports.WarmupSchedule != "" && cache != nil {
		warmup := report_warmup.NewJob(bookingRepository, occupancyReportUseCase, warmupTimeout, log)
		if _, err := warmup.Register(scheduler, cfg.Reports.WarmupSchedule); err != nil {
			log.Fatal("Failed to schedule report warmup: %v", err)
		}
		scheduler.Start()
		log.Info("Report warmup scheduled (%s)", cfg.Reports.WarmupSchedule)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Health-check сервер на отдельном порту
	var healthSrv *http.Server
	if cfg.Server.HealthPort != 0 {
		healthSrv = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.HealthPort),
			Handler:           healthRouter(wrappedDB, redisClient),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info("Starting health server on %s", healthSrv.Addr)
			if err := healthSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("Health server failed: %v", err)
			}
		}()
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

	// Дожидаемся запущенного прогрева
	<-scheduler.Stop().Done()

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if healthSrv != nil {
		if err := healthSrv.Shutdown(shutdownCtx); err != nil {
			log.Error("Health server forced to shutdown: %v", err)
		}
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// healthRouter liveness и readiness пробы
func healthRouter(db *dbmetrics.DB, redisClient *redis.Client) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			handlers.RespondError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		if redisClient != nil {
			if err := redisClient.Ping(ctx).Err(); err != nil {
				handlers.RespondError(w, http.StatusServiceUnavailable, "redis unavailable")
				return
			}
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}).Methods(http.MethodGet)

	return r
}

// reportCacheStore объединение интерфейсов кэша отчётов всех use case'ов.
// Если Redis выключен, значение остаётся nil-интерфейсом.
type reportCacheStore interface {
	occupancyReportUC.ReportCache
	InvalidateOrg(ctx context.Context, orgID int64) error
}

var _ reportCacheStore = (*reportCache.Cache)(nil)
