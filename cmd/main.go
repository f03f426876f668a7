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

	cancelBookingHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/create_booking"
	createRoomHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/create_room"
	deleteRoomHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/delete_room"
	getAvailableRoomsHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/get_available_rooms"
	getBookingHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/get_booking"
	getRoomHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/get_room"
	getRoomAvailabilityHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/get_room_availability"
	listBookingsHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/list_bookings"
	listRoomsHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/list_rooms"
	updateBookingHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/update_booking"
	updateRoomHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/update_room"
	"github.com/m04kA/GH-BookingService/internal/api/middleware"
	"github.com/m04kA/GH-BookingService/internal/config"
	bookingRepo "github.com/m04kA/GH-BookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/GH-BookingService/internal/infra/storage/room"
	siteServiceClient "github.com/m04kA/GH-BookingService/internal/integrations/siteservice"
	availabilityService "github.com/m04kA/GH-BookingService/internal/service/availability"
	bookingsService "github.com/m04kA/GH-BookingService/internal/service/bookings"
	roomsService "github.com/m04kA/GH-BookingService/internal/service/rooms"
	createBookingUC "github.com/m04kA/GH-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/GH-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GH-BookingService/pkg/logger"
	"github.com/m04kA/GH-BookingService/pkg/metrics"
	"github.com/m04kA/GH-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/GH-BookingService/pkg/txmanager"
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

	log.Info("Starting GH-BookingService...")
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

	// Клиент инвалидации кэша сайта: после изменения комнат или бронирований
	// сбрасываем кэш страницы гостевого дома
	type siteInvalidator interface {
		RevalidateGuesthouse(ctx context.Context)
	}
	var siteClient siteInvalidator
	if cfg.SiteService.Enabled {
		siteClient = siteServiceClient.NewClient(
			cfg.SiteService.URL,
			time.Duration(cfg.SiteService.Timeout)*time.Second,
			log,
		)
		log.Info("SiteService client initialized (url=%s, timeout=%ds)",
			cfg.SiteService.URL, cfg.SiteService.Timeout)
	} else {
		siteClient = siteServiceClient.NopClient{}
		log.Info("SiteService integration disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		roomRepository    *roomRepo.Repository
		bookingRepository *bookingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecase)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		roomRepository = roomRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		roomRepository = roomRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	queryTimeout := time.Duration(cfg.Database.QueryTimeout) * time.Second

	// Инициализируем сервисы
	roomSvc := roomsService.NewService(
		roomRepository,
		siteClient,
		log,
		queryTimeout,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		siteClient,
		log,
		queryTimeout,
	)
	availabilitySvc := availabilityService.NewService(
		roomRepository,
		bookingRepository,
		log,
		queryTimeout,
	)

	// Инициализируем use case создания бронирования
	createBookingUseCase := createBookingUC.NewUseCase(
		roomRepository,
		bookingRepository,
		txMgr,
		siteClient,
		log,
		createBookingUC.Options{
			EnforceAdvanceLimit: cfg.Booking.EnforceAdvanceLimit,
		},
	)

	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(availabilitySvc, log)
	getRoomAvailability := getRoomAvailabilityHandler.NewHandler(availabilitySvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог комнат
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)

	// Комнаты, свободные в окне дат (с фильтрами по типу, цене, кондиционеру).
	// Конкретные пути регистрируются раньше шаблона /rooms/{roomId}.
	api.HandleFunc("/rooms/available", getAvailableRooms.Handle).Methods(http.MethodGet)

	// Доступность каждой комнаты в окне дат
	api.HandleFunc("/rooms/availability", getRoomAvailability.Handle).Methods(http.MethodGet)

	// Комната по человекочитаемому номеру ("101")
	api.HandleFunc("/rooms/by-number/{number}", getRoom.HandleByNumber).Methods(http.MethodGet)

	// Комната по внутреннему ID
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)

	// Создание бронирования - публичная ручка, гость бронирует сам
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-Token header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.AdminToken))

	// --- Бронирования ---
	// Список бронирований (фильтры ?roomId= или ?from=&to=)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Обновление данных гостя, сумм и флага оплаты
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Управление комнатами ---
	protected.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/rooms/{roomId}", deleteRoom.Handle).Methods(http.MethodDelete)

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
