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
	"github.com/rs/cors"

	createBlockedSlotHandler "github.com/m04kA/IS-SalonBookingService/internal/api/handlers/create_blocked_slot"
	createBookingHandler "github.com/m04kA/IS-SalonBookingService/internal/api/handlers/create_booking"
	deleteBlockedSlotHandler "github.com/m04kA/IS-SalonBookingService/internal/api/handlers/delete_blocked_slot"
	getAvailableSlotsHandler "github.com/m04kA/IS-SalonBookingService/internal/api/handlers/get_available_slots"
	getBlockedSlotsHandler "github.com/m04kA/IS-SalonBookingService/internal/api/handlers/get_blocked_slots"
	getBookingHandler "github.com/m04kA/IS-SalonBookingService/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/m04kA/IS-SalonBookingService/internal/api/handlers/get_client_bookings"
	getProfessionalAgendaHandler "github.com/m04kA/IS-SalonBookingService/internal/api/handlers/get_professional_agenda"
	getWorkingHoursHandler "github.com/m04kA/IS-SalonBookingService/internal/api/handlers/get_working_hours"
	updateBookingStatusHandler "github.com/m04kA/IS-SalonBookingService/internal/api/handlers/update_booking_status"
	updateWorkingHoursHandler "github.com/m04kA/IS-SalonBookingService/internal/api/handlers/update_working_hours"
	"github.com/m04kA/IS-SalonBookingService/internal/api/middleware"
	"github.com/m04kA/IS-SalonBookingService/internal/config"
	blockedSlotRepo "github.com/m04kA/IS-SalonBookingService/internal/infra/storage/blockedslot"
	bookingRepo "github.com/m04kA/IS-SalonBookingService/internal/infra/storage/booking"
	notificationRepo "github.com/m04kA/IS-SalonBookingService/internal/infra/storage/notification"
	professionalRepo "github.com/m04kA/IS-SalonBookingService/internal/infra/storage/professional"
	serviceRepo "github.com/m04kA/IS-SalonBookingService/internal/infra/storage/service"
	mailerClient "github.com/m04kA/IS-SalonBookingService/internal/integrations/mailer"
	blockedSlotsService "github.com/m04kA/IS-SalonBookingService/internal/service/blockedslots"
	bookingsService "github.com/m04kA/IS-SalonBookingService/internal/service/bookings"
	notificationsService "github.com/m04kA/IS-SalonBookingService/internal/service/notifications"
	workingHoursService "github.com/m04kA/IS-SalonBookingService/internal/service/workinghours"
	createBookingUC "github.com/m04kA/IS-SalonBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/IS-SalonBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/IS-SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/IS-SalonBookingService/pkg/logger"
	"github.com/m04kA/IS-SalonBookingService/pkg/metrics"
	"github.com/m04kA/IS-SalonBookingService/pkg/simpletxmanager"
	"github.com/m04kA/IS-SalonBookingService/pkg/txmanager"
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

	log.Info("Starting IS-SalonBookingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем клиент исходящей почты
	mailer := mailerClient.NewClient(
		cfg.Mailer.BaseURL,
		cfg.Mailer.ServiceID,
		cfg.Mailer.TemplateID,
		cfg.Mailer.PublicKey,
		cfg.Mailer.Enabled,
		time.Duration(cfg.Mailer.Timeout)*time.Second,
		log,
	)
	log.Info("Mailer client initialized (enabled=%t, base_url=%s)", cfg.Mailer.Enabled, cfg.Mailer.BaseURL)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		blockedSlotRepository  *blockedSlotRepo.Repository
		professionalRepository *professionalRepo.Repository
		serviceRepository      *serviceRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		blockedSlotRepository = blockedSlotRepo.NewRepository(wrappedDB)
		professionalRepository = professionalRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		blockedSlotRepository = blockedSlotRepo.NewRepository(db)
		professionalRepository = professionalRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	notificationsSvc := notificationsService.NewService(notificationRepository, mailer, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, blockedSlotRepository, notificationsSvc, log)
	blockedSlotsSvc := blockedSlotsService.NewService(blockedSlotRepository, log)
	workingHoursSvc := workingHoursService.NewService(professionalRepository, log)

	timeProvider := &getAvailableSlotsUC.RealTimeProvider{}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		blockedSlotRepository,
		professionalRepository,
		serviceRepository,
		notificationsSvc,
		txMgr,
		timeProvider,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		blockedSlotRepository,
		professionalRepository,
		serviceRepository,
		timeProvider,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingsSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, log)
	getProfessionalAgenda := getProfessionalAgendaHandler.NewHandler(bookingsSvc, log)
	createBlockedSlot := createBlockedSlotHandler.NewHandler(blockedSlotsSvc, log)
	deleteBlockedSlot := deleteBlockedSlotHandler.NewHandler(blockedSlotsSvc, log)
	getBlockedSlots := getBlockedSlotsHandler.NewHandler(blockedSlotsSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(workingHoursSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(workingHoursSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		public.Use(rateLimiter.Middleware)
		log.Info("Rate limiting enabled for public routes (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Сетка слотов дня для пары профессионал+услуга
	public.HandleFunc("/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Рабочее расписание профессионала
	public.HandleFunc("/professionals/{professionalId}/working-hours",
		getWorkingHours.Handle).Methods(http.MethodGet)

	// Создание бронирования (доступно гостям без авторизации)
	public.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/clients/me/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// --- Панель администратора ---
	protected.HandleFunc("/professionals/{professionalId}/agenda", getProfessionalAgenda.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{professionalId}/blocked-slots", getBlockedSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/blocked-slots", createBlockedSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/blocked-slots/{blockId}", deleteBlockedSlot.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/professionals/{professionalId}/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)

	// CORS для браузерного клиента
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", middleware.HeaderUserID, middleware.HeaderRequestID},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
