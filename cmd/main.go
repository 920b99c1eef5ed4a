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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	createBookingHandler "github.com/m04kA/SMC-CalendarBooking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-CalendarBooking/internal/api/handlers/get_available_slots"
	"github.com/m04kA/SMC-CalendarBooking/internal/api/handlers/health"
	"github.com/m04kA/SMC-CalendarBooking/internal/api/handlers/info"
	listAppointmentsHandler "github.com/m04kA/SMC-CalendarBooking/internal/api/handlers/list_appointments"
	setAvailabilityHandler "github.com/m04kA/SMC-CalendarBooking/internal/api/handlers/set_availability"
	"github.com/m04kA/SMC-CalendarBooking/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarBooking/internal/config"
	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
	"github.com/m04kA/SMC-CalendarBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-CalendarBooking/internal/infra/storage/postgres"
	createBookingUC "github.com/m04kA/SMC-CalendarBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-CalendarBooking/internal/usecase/get_available_slots"
	listAppointmentsUC "github.com/m04kA/SMC-CalendarBooking/internal/usecase/list_appointments"
	setAvailabilityUC "github.com/m04kA/SMC-CalendarBooking/internal/usecase/set_availability"
	"github.com/m04kA/SMC-CalendarBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarBooking/pkg/keylock"
	"github.com/m04kA/SMC-CalendarBooking/pkg/logger"
	"github.com/m04kA/SMC-CalendarBooking/pkg/metrics"
	"github.com/m04kA/SMC-CalendarBooking/pkg/types"
)

// Repository набор операций хранилища, общий для обоих бэкендов
type Repository interface {
	SetAvailability(ctx context.Context, window domain.AvailabilityWindow) error
	GetAvailability(ctx context.Context, ownerID string) (*domain.AvailabilityWindow, error)
	GetBookedStartTimes(ctx context.Context, ownerID string, date time.Time) ([]types.TimeString, error)
	IsSlotBooked(ctx context.Context, ownerID string, date time.Time, start types.TimeString) (bool, error)
	CreateAppointment(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListAppointmentsByOwner(ctx context.Context, ownerID string) ([]*domain.Appointment, error)
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
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

	log.Info("Starting SMC-CalendarBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище
	var repo Repository

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			repo = postgres.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh))
			log.Info("Database metrics collection started")
		} else {
			repo = postgres.NewRepository(db)
		}

	default:
		repo = memory.NewRepository()
		log.Info("Using in-memory storage")
	}

	policy := cfg.Booking.Policy()
	log.Info("Booking policy: slot=%dm, max advance=%dd", policy.SlotDurationMinutes, policy.MaxAdvanceBookingDays)

	// Инициализируем use cases
	setAvailabilityUseCase := setAvailabilityUC.NewUseCase(repo, policy, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(repo, policy, log)
	createBookingUseCase := createBookingUC.NewUseCase(repo, keylock.New(), policy, log)
	listAppointmentsUseCase := listAppointmentsUC.NewUseCase(repo, log)

	// Инициализируем handlers
	setAvailability := setAvailabilityHandler.NewHandler(setAvailabilityUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, metricsCollector, log)
	listAppointments := listAppointmentsHandler.NewHandler(listAppointmentsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.ProcessTime)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/", info.NewHandler(cfg.App.Name, cfg.App.Version).Handle).Methods(http.MethodGet)
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Чтение
	api.HandleFunc("/owners/{ownerId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/owners/{ownerId}/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Запись (с ограничением частоты запросов)
	writes := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		defer limiter.Stop()
		writes.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %.2f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}
	writes.HandleFunc("/availability", setAvailability.Handle).Methods(http.MethodPost)
	writes.HandleFunc("/appointments", createBooking.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(r),
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
