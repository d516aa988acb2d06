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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createPromoHandler "github.com/m04kA/PZA-SlotService/internal/api/handlers/create_promo"
	deletePromoHandler "github.com/m04kA/PZA-SlotService/internal/api/handlers/delete_promo"
	generateSlotsHandler "github.com/m04kA/PZA-SlotService/internal/api/handlers/generate_slots"
	getAvailableSlotsHandler "github.com/m04kA/PZA-SlotService/internal/api/handlers/get_available_slots"
	getSlotOrdersHandler "github.com/m04kA/PZA-SlotService/internal/api/handlers/get_slot_orders"
	listPromosHandler "github.com/m04kA/PZA-SlotService/internal/api/handlers/list_promos"
	redeemPromoHandler "github.com/m04kA/PZA-SlotService/internal/api/handlers/redeem_promo"
	releaseSlotHandler "github.com/m04kA/PZA-SlotService/internal/api/handlers/release_slot"
	reserveSlotHandler "github.com/m04kA/PZA-SlotService/internal/api/handlers/reserve_slot"
	updatePromoHandler "github.com/m04kA/PZA-SlotService/internal/api/handlers/update_promo"
	updateSlotStatusHandler "github.com/m04kA/PZA-SlotService/internal/api/handlers/update_slot_status"
	validatePromoHandler "github.com/m04kA/PZA-SlotService/internal/api/handlers/validate_promo"
	"github.com/m04kA/PZA-SlotService/internal/api/middleware"
	"github.com/m04kA/PZA-SlotService/internal/config"
	promoCache "github.com/m04kA/PZA-SlotService/internal/infra/cache/promo"
	promoRepo "github.com/m04kA/PZA-SlotService/internal/infra/storage/promo"
	slotRepo "github.com/m04kA/PZA-SlotService/internal/infra/storage/slot"
	promosService "github.com/m04kA/PZA-SlotService/internal/service/promos"
	slotsService "github.com/m04kA/PZA-SlotService/internal/service/slots"
	getAvailableSlotsUC "github.com/m04kA/PZA-SlotService/internal/usecase/get_available_slots"
	releaseSlotUC "github.com/m04kA/PZA-SlotService/internal/usecase/release_slot"
	reserveSlotUC "github.com/m04kA/PZA-SlotService/internal/usecase/reserve_slot"
	validatePromoUC "github.com/m04kA/PZA-SlotService/internal/usecase/validate_promo"
	"github.com/m04kA/PZA-SlotService/pkg/dbmetrics"
	"github.com/m04kA/PZA-SlotService/pkg/logger"
	"github.com/m04kA/PZA-SlotService/pkg/metrics"
	"github.com/m04kA/PZA-SlotService/pkg/ratelimit"
	"github.com/m04kA/PZA-SlotService/pkg/simpletxmanager"
	"github.com/m04kA/PZA-SlotService/pkg/txmanager"
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

	log.Info("Starting PZA-SlotService...")
	log.Info("Configuration loaded from config.toml")

	// Операционное расписание пиццерии
	schedule, err := cfg.Schedule.ToDomainSchedule()
	if err != nil {
		log.Fatal("Failed to build schedule: %v", err)
	}
	log.Info("Schedule loaded: slot duration=%dmin, capacity per slot=%d",
		schedule.SlotDurationMinutes, schedule.CapacityPerSlot)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Подключаемся к Redis (кеш промокодов и rate limiter)
	var redisClient *redis.Client
	var cache *promoCache.Cache

	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		cancel()

		cache = promoCache.NewCache(redisClient, time.Duration(cfg.Redis.CacheTTL)*time.Second)
		defer redisClient.Close()
		log.Info("Connected to redis at %s, promo cache TTL=%ds", cfg.Redis.Addr, cfg.Redis.CacheTTL)
	} else {
		log.Info("Redis disabled, promo cache and rate limiter are off")
	}

	// Rate limiter для публичных ручек
	var limiter *ratelimit.Limiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter = ratelimit.New(redisClient, cfg.RateLimit.Requests, cfg.RateLimit.WindowSeconds, cfg.RateLimit.KeyPrefix)
		log.Info("Rate limiter enabled: %d requests per %ds", cfg.RateLimit.Requests, cfg.RateLimit.WindowSeconds)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository  *slotRepo.Repository
		promoRepository *promoRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		promoRepository = promoRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		promoRepository = promoRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotsSvc := slotsService.NewService(slotRepository, schedule, txMgr, log)

	var promosCacheDep promosService.PromoCache
	if cache != nil {
		promosCacheDep = cache
	}
	promosSvc := promosService.NewService(promoRepository, promosCacheDep, txMgr, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(slotRepository, slotsSvc, log)
	reserveSlotUseCase := reserveSlotUC.NewUseCase(slotRepository, txMgr, log)
	releaseSlotUseCase := releaseSlotUC.NewUseCase(slotRepository, txMgr, log)

	var validateCacheDep validatePromoUC.PromoCache
	if cache != nil {
		validateCacheDep = cache
	}
	validatePromoUseCase := validatePromoUC.NewUseCase(promoRepository, validateCacheDep, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	reserveSlot := reserveSlotHandler.NewHandler(reserveSlotUseCase, log)
	releaseSlot := releaseSlotHandler.NewHandler(releaseSlotUseCase, log)
	validatePromo := validatePromoHandler.NewHandler(validatePromoUseCase, log)
	generateSlots := generateSlotsHandler.NewHandler(slotsSvc, log)
	updateSlotStatus := updateSlotStatusHandler.NewHandler(slotsSvc, log)
	getSlotOrders := getSlotOrdersHandler.NewHandler(slotsSvc, log)
	createPromo := createPromoHandler.NewHandler(promosSvc, log)
	updatePromo := updatePromoHandler.NewHandler(promosSvc, log)
	deletePromo := deletePromoHandler.NewHandler(promosSvc, log)
	listPromos := listPromosHandler.NewHandler(promosSvc, log)
	redeemPromo := redeemPromoHandler.NewHandler(promosSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (с rate limiting по IP клиента)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.RateLimit(limiter, log))

	// Слоты на дату или диапазон дат
	public.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Бронирование пицц в слоте
	public.HandleFunc("/slots/{slotId}/reserve", reserveSlot.Handle).Methods(http.MethodPost)

	// Проверка промокода для корзины
	public.HandleFunc("/promo/validate", validatePromo.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminToken))

	// --- Слоты ---
	admin.HandleFunc("/slots/generate", generateSlots.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots/{slotId}/status", updateSlotStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/slots/{slotId}/release", releaseSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots/{slotId}/orders", getSlotOrders.Handle).Methods(http.MethodGet)

	// --- Промокоды ---
	admin.HandleFunc("/promos", createPromo.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/promos", listPromos.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/promos/{code}", listPromos.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/promos/{code}", updatePromo.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/promos/{code}", deletePromo.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/promos/{code}/redeem", redeemPromo.Handle).Methods(http.MethodPost)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
