package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	token_adapter "classifieds-service/internal/adapters/jwt"
	logger_adapter "classifieds-service/internal/adapters/logger"
	postgres_adapter "classifieds-service/internal/adapters/postgres"
	rabbitmq_adapter "classifieds-service/internal/adapters/rabbitmq"
	"classifieds-service/internal/adapters/rest"
	"classifieds-service/internal/configs"
	"classifieds-service/internal/constants"
	"classifieds-service/internal/core/port"
	"classifieds-service/internal/core/usecase"
	fluentlogger "classifieds-service/pkg/fluent_logger"
	"classifieds-service/pkg/postgres"
	"classifieds-service/pkg/rabbitmq/rabbitmq_common"
	"classifieds-service/pkg/rabbitmq/rabbitmq_producer"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	moderationReporter port.ModerationReporterPort
	rabbitManager      *rabbitmq_common.ConnectionManager
	fluentClient       *fluent.Fluent
	logger             port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName, // Используем имя приложения как префикс
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. НИЗКОУРОВНЕВЫЕ ЗАВИСИМОСТИ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	listingRepository, err := postgres_adapter.NewListingRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create listing repository: %w", err)
	}
	userRepository, err := postgres_adapter.NewUserRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	settingsRepository, err := postgres_adapter.NewSettingsRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create settings repository: %w", err)
	}

	tokenService, err := token_adapter.NewTokenService(appConfig.JWT.SigningKey)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	// Шина уведомлений опциональна: без брокера решения модерации
	// просто не публикуются наружу.
	var moderationReporter port.ModerationReporterPort = rabbitmq_adapter.NoopModerationReporter{}
	var rabbitManager *rabbitmq_common.ConnectionManager
	if appConfig.RabbitMQ.Enabled {
		pkgLogger := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))
		rabbitManager, err = rabbitmq_common.GetManager(appConfig.RabbitMQ.URL, pkgLogger)
		if err != nil {
			appLogger.Error("Failed to connect to RabbitMQ", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}

		producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
			Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
			ExchangeName:             constants.NotificationsExchange,
			ExchangeType:             constants.NotificationsExchangeType,
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,
			Logger:                   pkgLogger,
		}, rabbitManager)
		if err != nil {
			appLogger.Error("Failed to create RabbitMQ producer", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create rabbitmq producer: %w", err)
		}

		moderationReporter, err = rabbitmq_adapter.NewModerationReporterAdapter(producer, constants.RoutingKeyListingModeration)
		if err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("failed to create moderation reporter: %w", err)
		}
	}
	appLogger.Info("All persistence and service adapters initialized.", nil)

	// --- 4. USE CASES (ядро бизнес-логики) ---
	registerUC := usecase.NewRegisterUserUseCase(userRepository, tokenService, appConfig.JWT.AccessTokenTTL)
	loginUC := usecase.NewLoginUserUseCase(userRepository, tokenService, appConfig.JWT.AccessTokenTTL)
	validateUC := usecase.NewValidateTokenUseCase(tokenService)

	browseUC := usecase.NewBrowseListingsUseCase(listingRepository)
	detailsUC := usecase.NewGetListingDetailsUseCase(listingRepository)
	createUC := usecase.NewCreateListingUseCase(listingRepository)
	updateUC := usecase.NewUpdateListingUseCase(listingRepository)
	deleteUC := usecase.NewDeleteListingUseCase(listingRepository)
	ownListingsUC := usecase.NewGetOwnListingsUseCase(listingRepository)
	subadminRequestUC := usecase.NewRequestSubadminUseCase(userRepository)

	reviewUC := usecase.NewReviewListingsUseCase(listingRepository)
	moderateUC := usecase.NewModerateListingUseCase(listingRepository, moderationReporter)
	listUsersUC := usecase.NewListUsersUseCase(userRepository)
	updateUserUC := usecase.NewUpdateUserUseCase(userRepository)
	deleteUserUC := usecase.NewDeleteUserUseCase(userRepository, listingRepository)

	getSettingsUC := usecase.NewGetSettingsUseCase(settingsRepository)
	updateSettingsUC := usecase.NewUpdateSettingsUseCase(settingsRepository)

	// --- 5. REST API Server ---
	authHandlers := rest.NewAuthHandlers(registerUC, loginUC, validateUC)
	listingHandlers := rest.NewListingHandlers(browseUC, detailsUC, createUC, updateUC, deleteUC, ownListingsUC, subadminRequestUC)
	adminHandlers := rest.NewAdminHandlers(reviewUC, moderateUC, listUsersUC, updateUserUC, deleteUserUC)
	settingsHandlers := rest.NewSettingsHandlers(getSettingsUC, updateSettingsUC)
	authMW := rest.NewAuthMiddleware(validateUC, userRepository)

	apiServer := rest.NewServer(appConfig.Rest.PORT, authHandlers, listingHandlers, adminHandlers, settingsHandlers, authMW, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		moderationReporter: moderationReporter,
		rabbitManager:      rabbitManager,
		fluentClient:       fluentClient,
		logger:             appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	// Создаем единый контекст для всего приложения для управления graceful shutdown
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.moderationReporter != nil {
			if err := a.moderationReporter.Close(); err != nil {
				a.logger.Error("Error closing moderation reporter", err, nil)
			}
		}
		if a.rabbitManager != nil {
			if err := a.rabbitManager.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ connection", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	// Инициируем graceful shutdown, отменяя главный контекст
	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
