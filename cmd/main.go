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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	clearAppointmentsHandler "github.com/m04kA/RTC-AppointmentService/internal/api/handlers/clear_appointments"
	createAppointmentHandler "github.com/m04kA/RTC-AppointmentService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/RTC-AppointmentService/internal/api/handlers/delete_appointment"
	exportAppointmentsHandler "github.com/m04kA/RTC-AppointmentService/internal/api/handlers/export_appointments"
	getAppointmentHandler "github.com/m04kA/RTC-AppointmentService/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/m04kA/RTC-AppointmentService/internal/api/handlers/get_appointments"
	getReportHandler "github.com/m04kA/RTC-AppointmentService/internal/api/handlers/get_report"
	getScheduleHandler "github.com/m04kA/RTC-AppointmentService/internal/api/handlers/get_schedule"
	"github.com/m04kA/RTC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/RTC-AppointmentService/internal/config"
	memoryRepo "github.com/m04kA/RTC-AppointmentService/internal/infra/storage/appointment/memory"
	postgresRepo "github.com/m04kA/RTC-AppointmentService/internal/infra/storage/appointment/postgres"
	notifierClient "github.com/m04kA/RTC-AppointmentService/internal/integrations/notifier"
	appointmentsService "github.com/m04kA/RTC-AppointmentService/internal/service/appointments"
	bookAppointmentUC "github.com/m04kA/RTC-AppointmentService/internal/usecase/book_appointment"
	getScheduleUC "github.com/m04kA/RTC-AppointmentService/internal/usecase/get_schedule"
	"github.com/m04kA/RTC-AppointmentService/pkg/logger"
	"github.com/m04kA/RTC-AppointmentService/pkg/metrics"
	"github.com/m04kA/RTC-AppointmentService/pkg/txmanager"
)

// appointmentRepository общий интерфейс обоих хранилищ (memory и postgres)
type appointmentRepository interface {
	bookAppointmentUC.AppointmentRepository
	getScheduleUC.AppointmentRepository
	appointmentsService.AppointmentRepository
}

// transactionManager интерфейс менеджера транзакций для use case бронирования
type transactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting RTC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище по выбранному драйверу
	var (
		repo  appointmentRepository
		txMgr transactionManager
	)

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

		repo = postgresRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(db)

	case config.StorageMemory:
		repo = memoryRepo.NewRepository()
		txMgr = memoryRepo.NewTxManager()
		log.Info("Using in-memory appointment storage")

	default:
		log.Fatal("Unknown storage driver: %s", cfg.Storage.Driver)
	}

	// Инициализируем канал уведомлений (если включен)
	var notifier bookAppointmentUC.NotifierClient
	if cfg.Notifier.Enabled {
		notifier = notifierClient.NewClient(
			cfg.Notifier.URL,
			time.Duration(cfg.Notifier.Timeout)*time.Second,
			log,
		)
		log.Info("Notifier client initialized (url=%s, timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)
	}

	// Метрики опциональны: typed-nil в интерфейс не заворачиваем
	var bookMetrics bookAppointmentUC.MetricsCollector
	var adminMetrics appointmentsService.MetricsCollector
	if metricsCollector != nil {
		bookMetrics = metricsCollector
		adminMetrics = metricsCollector
	}

	// Инициализируем сервисы и use cases
	appointmentSvc := appointmentsService.NewService(repo, adminMetrics, log)
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(repo, txMgr, notifier, bookMetrics, log)
	getScheduleUseCase := getScheduleUC.NewUseCase(repo, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentSvc, log)
	getReport := getReportHandler.NewHandler(appointmentSvc, log)
	exportAppointments := exportAppointmentsHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	clearAppointments := clearAppointmentsHandler.NewHandler(appointmentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Расписание: две ближайшие даты сессий и каталог слотов
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Бронирование консультации
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Квитанция по ID записи
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// Список записей (опциональный фильтр ?date=YYYY-MM-DD)
	admin.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)

	// Сводный отчёт
	admin.HandleFunc("/report", getReport.Handle).Methods(http.MethodGet)

	// CSV выгрузка
	admin.HandleFunc("/appointments/export", exportAppointments.Handle).Methods(http.MethodGet)

	// Удаление одной записи
	admin.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// Полная очистка записей
	admin.HandleFunc("/appointments", clearAppointments.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
