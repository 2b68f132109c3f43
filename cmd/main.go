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

	analyticsHandler "github.com/evenderechit/evenderechit/internal/api/handlers/analytics"
	appointmentsHandler "github.com/evenderechit/evenderechit/internal/api/handlers/appointments"
	availabilityHandler "github.com/evenderechit/evenderechit/internal/api/handlers/availability"
	createAppointmentHandler "github.com/evenderechit/evenderechit/internal/api/handlers/create_appointment"
	getAvailableSlotsHandler "github.com/evenderechit/evenderechit/internal/api/handlers/get_available_slots"
	manageAppointmentHandler "github.com/evenderechit/evenderechit/internal/api/handlers/manage_appointment"
	messagingHandler "github.com/evenderechit/evenderechit/internal/api/handlers/messaging"
	remindersHandler "github.com/evenderechit/evenderechit/internal/api/handlers/reminders"
	servicesHandler "github.com/evenderechit/evenderechit/internal/api/handlers/services"
	settingsHandler "github.com/evenderechit/evenderechit/internal/api/handlers/settings"
	staffHandler "github.com/evenderechit/evenderechit/internal/api/handlers/staff"
	"github.com/evenderechit/evenderechit/internal/api/middleware"
	"github.com/evenderechit/evenderechit/internal/config"
	"github.com/evenderechit/evenderechit/internal/cron"
	appointmentRepo "github.com/evenderechit/evenderechit/internal/infra/storage/appointment"
	availabilityRepo "github.com/evenderechit/evenderechit/internal/infra/storage/availability"
	reminderRepo "github.com/evenderechit/evenderechit/internal/infra/storage/reminder"
	serviceRepo "github.com/evenderechit/evenderechit/internal/infra/storage/service"
	settingsRepo "github.com/evenderechit/evenderechit/internal/infra/storage/settings"
	staffRepo "github.com/evenderechit/evenderechit/internal/infra/storage/staff"
	whatsappRepo "github.com/evenderechit/evenderechit/internal/infra/storage/whatsapp"
	whatsappClient "github.com/evenderechit/evenderechit/internal/integrations/whatsapp"
	analyticsService "github.com/evenderechit/evenderechit/internal/service/analytics"
	appointmentsService "github.com/evenderechit/evenderechit/internal/service/appointments"
	availabilityService "github.com/evenderechit/evenderechit/internal/service/availability"
	catalogService "github.com/evenderechit/evenderechit/internal/service/catalog"
	settingsService "github.com/evenderechit/evenderechit/internal/service/settings"
	whatsappService "github.com/evenderechit/evenderechit/internal/service/whatsapp"
	createAppointmentUC "github.com/evenderechit/evenderechit/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/evenderechit/evenderechit/internal/usecase/get_available_slots"
	processRemindersUC "github.com/evenderechit/evenderechit/internal/usecase/process_reminders"
	scheduleRemindersUC "github.com/evenderechit/evenderechit/internal/usecase/schedule_reminders"
	"github.com/evenderechit/evenderechit/pkg/dbmetrics"
	"github.com/evenderechit/evenderechit/pkg/logger"
	"github.com/evenderechit/evenderechit/pkg/metrics"
	"github.com/evenderechit/evenderechit/pkg/simpletxmanager"
	"github.com/evenderechit/evenderechit/pkg/txmanager"
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

	log.Info("Starting evenderechit booking service...")
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

	// Клиент WhatsApp Cloud API
	waClient := whatsappClient.NewClient(
		cfg.Whatsapp.APIBaseURL,
		time.Duration(cfg.Whatsapp.Timeout)*time.Second,
		log,
	)
	log.Info("WhatsApp client initialized (base=%s timeout=%ds)", cfg.Whatsapp.APIBaseURL, cfg.Whatsapp.Timeout)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		serviceRepository      *serviceRepo.Repository
		staffRepository        *staffRepo.Repository
		settingsRepository     *settingsRepo.Repository
		whatsappRepository     *whatsappRepo.Repository
		reminderRepository     *reminderRepo.Repository
		txMgr                  TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		whatsappRepository = whatsappRepo.NewRepository(wrappedDB)
		reminderRepository = reminderRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		whatsappRepository = whatsappRepo.NewRepository(db)
		reminderRepository = reminderRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, reminderRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, staffRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	whatsappSvc := whatsappService.NewService(whatsappRepository, settingsRepository, waClient, log)
	analyticsSvc := analyticsService.NewService(appointmentRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		availabilityRepository,
		appointmentRepository,
		serviceRepository,
		settingsRepository,
		log,
	)

	scheduleRemindersUseCase := scheduleRemindersUC.NewUseCase(reminderRepository, log)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		serviceRepository,
		settingsRepository,
		scheduleRemindersUseCase,
		whatsappSvc,
		txMgr,
		cfg.Server.PublicBaseURL,
		log,
	)

	processRemindersUseCase := processRemindersUC.NewUseCase(reminderRepository, whatsappSvc, log)

	// Фоновая обработка напоминаний
	var reminderScheduler *cron.Scheduler
	if cfg.Reminders.Enabled {
		reminderScheduler = cron.NewScheduler(processRemindersUseCase, log)
		if err := reminderScheduler.Start(cfg.Reminders.Schedule); err != nil {
			log.Fatal("Failed to start reminder scheduler: %v", err)
		}
	} else {
		log.Info("Reminder processing disabled")
	}

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	manageAppointment := manageAppointmentHandler.NewHandler(appointmentsSvc, log)
	appointments := appointmentsHandler.NewHandler(appointmentsSvc, log)
	availability := availabilityHandler.NewHandler(availabilitySvc, log)
	services := servicesHandler.NewHandler(catalogSvc, log)
	staff := staffHandler.NewHandler(catalogSvc, log)
	settings := settingsHandler.NewHandler(settingsSvc, log)
	messaging := messagingHandler.NewHandler(whatsappSvc, log)
	reminders := remindersHandler.NewHandler(processRemindersUseCase, log)
	analytics := analyticsHandler.NewHandler(analyticsSvc, log)

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
	// PUBLIC ROUTES (клиентская запись, без аутентификации)
	// ============================================================

	// Публичная страница бизнеса по слагу
	api.HandleFunc("/public/{slug}", settings.HandleGetBySlug).Methods(http.MethodGet)

	// Доступные слоты для записи
	api.HandleFunc("/businesses/{businessId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи клиентом
	api.HandleFunc("/businesses/{businessId}/appointments",
		createAppointment.Handle).Methods(http.MethodPost)

	// Самообслуживание по токену из ссылки
	api.HandleFunc("/manage/{token}/cancel", manageAppointment.HandleCancel).Methods(http.MethodPost)
	api.HandleFunc("/manage/{token}/confirm", manageAppointment.HandleConfirm).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (кабинет владельца, требуют X-Business-ID)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", appointments.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", appointments.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status", appointments.HandleUpdateStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/notes", appointments.HandleUpdateNotes).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}", appointments.HandleDelete).Methods(http.MethodDelete)

	// --- Окна доступности и блокировки дат ---
	protected.HandleFunc("/availability/windows", availability.HandleCreateWindow).Methods(http.MethodPost)
	protected.HandleFunc("/availability/windows", availability.HandleGetWindows).Methods(http.MethodGet)
	protected.HandleFunc("/availability/windows/{windowId}", availability.HandleUpdateWindow).Methods(http.MethodPut)
	protected.HandleFunc("/availability/windows/{windowId}", availability.HandleDeleteWindow).Methods(http.MethodDelete)
	protected.HandleFunc("/availability/blocked-dates", availability.HandleAddBlockedDate).Methods(http.MethodPost)
	protected.HandleFunc("/availability/blocked-dates", availability.HandleGetBlockedDates).Methods(http.MethodGet)
	protected.HandleFunc("/availability/blocked-dates/{blockedDateId}", availability.HandleRemoveBlockedDate).Methods(http.MethodDelete)

	// --- Услуги и сотрудники ---
	protected.HandleFunc("/services", services.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/services", services.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/services/{serviceId}", services.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/services/{serviceId}", services.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId}", services.HandleDelete).Methods(http.MethodDelete)

	protected.HandleFunc("/staff", staff.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/staff", staff.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId}", staff.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId}", staff.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/staff/{staffId}", staff.HandleDelete).Methods(http.MethodDelete)

	// --- Настройки ---
	protected.HandleFunc("/settings", settings.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/settings", settings.HandleUpdate).Methods(http.MethodPut)

	// --- WhatsApp шаблоны и сообщения ---
	protected.HandleFunc("/whatsapp/templates", messaging.HandleUpsertTemplate).Methods(http.MethodPut)
	protected.HandleFunc("/whatsapp/templates", messaging.HandleListTemplates).Methods(http.MethodGet)
	protected.HandleFunc("/whatsapp/messages", messaging.HandleSend).Methods(http.MethodPost)
	protected.HandleFunc("/whatsapp/messages", messaging.HandleListMessages).Methods(http.MethodGet)

	// --- Напоминания ---
	protected.HandleFunc("/reminders/process", reminders.HandleProcess).Methods(http.MethodPost)

	// --- Аналитика ---
	protected.HandleFunc("/analytics/overview", analytics.HandleOverview).Methods(http.MethodGet)
	protected.HandleFunc("/analytics/dashboard", analytics.HandleDashboard).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
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

	if reminderScheduler != nil {
		reminderScheduler.Stop()
	}

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
