package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gitlab.com/babycash/clients/storefront-client/internal/adapters/config"
	"gitlab.com/babycash/clients/storefront-client/internal/adapters/httpclient"
	"gitlab.com/babycash/clients/storefront-client/internal/adapters/logger"
	"gitlab.com/babycash/clients/storefront-client/internal/adapters/notifier"
	"gitlab.com/babycash/clients/storefront-client/internal/adapters/storage"
	"gitlab.com/babycash/clients/storefront-client/internal/application"
	"gitlab.com/babycash/clients/storefront-client/internal/domain"
	"gitlab.com/babycash/clients/storefront-client/internal/rest"
)

// InitialZapLoggerProvider provides a basic *zap.Logger instance, primarily for config initialization.
// It returns the logger, a cleanup function (for syncing), and an error if creation fails.
func InitialZapLoggerProvider() (*zap.Logger, func(), error) {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		zapLogger, err = zap.NewDevelopment()
		if err != nil {
			zapLogger = zap.NewExample()
			fmt.Fprintf(os.Stderr, "Failed to create initial zap logger (production and development failed, falling back to example): %v\n", err)
		}
	}

	cleanup := func() {
		if syncErr := zapLogger.Sync(); syncErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to sync initial zap logger: %v\n", syncErr)
		}
	}
	return zapLogger, cleanup, nil
}

// App struct is defined here for Wire to use.
// It should be the single definition of App in the bootstrap package.
type App struct {
	configProvider config.Provider
	logger         domain.Logger
	sessions       *application.SessionManager
	auth           *application.AuthService
	cart           *application.CartManager
	services       *rest.Services
	notifier       domain.Notifier
	confirmer      domain.Confirmer
	opsServeMux    *http.ServeMux
	opsServer      *http.Server
}

// NewApp is the constructor for App, also for Wire.
func NewApp(
	cfgProvider config.Provider,
	appLogger domain.Logger,
	sessions *application.SessionManager,
	auth *application.AuthService,
	cart *application.CartManager,
	services *rest.Services,
	appNotifier domain.Notifier,
	confirmer domain.Confirmer,
	mux *http.ServeMux,
	server *http.Server,
) (*App, func(), error) {
	app := &App{
		configProvider: cfgProvider,
		logger:         appLogger,
		sessions:       sessions,
		auth:           auth,
		cart:           cart,
		services:       services,
		notifier:       appNotifier,
		confirmer:      confirmer,
		opsServeMux:    mux,
		opsServer:      server,
	}

	cleanup := func() {
		app.logger.Info(context.Background(), "Running app cleanup...")
	}
	return app, cleanup, nil
}

// ConfigProvider provides the application configuration.
// It accepts appCtx to be passed to NewViperProvider for graceful goroutine shutdown.
func ConfigProvider(appCtx context.Context, zapLogger *zap.Logger) (config.Provider, error) {
	return config.NewViperProvider(appCtx, zapLogger)
}

// LoggerProvider provides the application logger.
func LoggerProvider(cfgProvider config.Provider) (domain.Logger, error) {
	appCfg := cfgProvider.Get()
	return logger.NewZapAdapter(cfgProvider, appCfg.App.ServiceName)
}

// OpsServeMuxProvider provides the multiplexer for the operational endpoints.
func OpsServeMuxProvider() *http.ServeMux {
	return http.NewServeMux()
}

// OpsServerProvider provides the HTTP server exposing /metrics and /healthz.
func OpsServerProvider(cfgProvider config.Provider, mux *http.ServeMux) *http.Server {
	appCfg := cfgProvider.Get()

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", appCfg.App.OpsPort),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// RedisClientProvider provides a Redis client and a cleanup function.
// Only called when the redis storage backend is selected.
func RedisClientProvider(cfgProvider config.Provider, appLogger domain.Logger) (*redis.Client, func(), error) {
	appCfg := cfgProvider.Get()
	client := redis.NewClient(&redis.Options{
		Addr:     appCfg.Redis.Address,
		Password: appCfg.Redis.Password,
		DB:       appCfg.Redis.DB,
	})
	_, err := client.Ping(context.Background()).Result()
	if err != nil {
		appLogger.Error(context.Background(), "Failed to connect to Redis", "error", err.Error(), "address", appCfg.Redis.Address)
		return nil, nil, fmt.Errorf("failed to connect to Redis at %s: %w", appCfg.Redis.Address, err)
	}
	cleanup := func() {
		client.Close()
		appLogger.Info(context.Background(), "Redis connection closed")
	}
	appLogger.Info(context.Background(), "Successfully connected to Redis", "address", appCfg.Redis.Address)
	return client, cleanup, nil
}

// KVStoreProvider selects the local persistence backend from configuration.
// The redis backend opens (and owns) its own client; the returned cleanup
// closes it.
func KVStoreProvider(cfgProvider config.Provider, appLogger domain.Logger) (domain.KVStore, func(), error) {
	storageCfg := cfgProvider.Get().Storage

	switch storageCfg.Backend {
	case "memory":
		appLogger.Info(context.Background(), "Using in-memory storage backend")
		return storage.NewMemoryStore(), func() {}, nil
	case "redis":
		client, cleanup, err := RedisClientProvider(cfgProvider, appLogger)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisStore(client, appLogger), cleanup, nil
	case "file", "":
		appLogger.Info(context.Background(), "Using file storage backend", "path", storageCfg.FilePath)
		return storage.NewFileStore(storageCfg.FilePath, appLogger), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q (expected memory, file or redis)", storageCfg.Backend)
	}
}

// SessionManagerProvider provides the session manager.
func SessionManagerProvider(cfgProvider config.Provider, store domain.KVStore, appLogger domain.Logger) *application.SessionManager {
	return application.NewSessionManager(cfgProvider, store, appLogger)
}

// HTTPClientProvider provides the shared API client.
func HTTPClientProvider(cfgProvider config.Provider, sessions *application.SessionManager, appLogger domain.Logger) *httpclient.Client {
	return httpclient.New(cfgProvider, sessions, appLogger)
}

// ServicesProvider provides the per-resource REST wrappers.
func ServicesProvider(client *httpclient.Client) *rest.Services {
	return rest.NewServices(client)
}

// NotifierProvider provides the user-facing notifier.
func NotifierProvider() domain.Notifier {
	return notifier.NewConsoleNotifier()
}

// ConfirmerProvider provides the destructive-action confirmer.
func ConfirmerProvider() domain.Confirmer {
	return notifier.NewStdinConfirmer()
}

// AuthServiceProvider provides the AuthService.
func AuthServiceProvider(services *rest.Services, sessions *application.SessionManager, appLogger domain.Logger, appNotifier domain.Notifier) *application.AuthService {
	return application.NewAuthService(services.Auth, sessions, appLogger, appNotifier)
}

// CartManagerProvider provides the CartManager.
func CartManagerProvider(cfgProvider config.Provider, store domain.KVStore, services *rest.Services, sessions *application.SessionManager, appLogger domain.Logger, appNotifier domain.Notifier) *application.CartManager {
	return application.NewCartManager(cfgProvider, store, services.Cart, sessions, appLogger, appNotifier)
}

// ProviderSet is the Wire provider set for the entire application.
var ProviderSet = wire.NewSet(
	InitialZapLoggerProvider,
	ConfigProvider,
	LoggerProvider,
	OpsServeMuxProvider,
	OpsServerProvider,

	// Infrastructure adapters
	KVStoreProvider,
	NotifierProvider,
	ConfirmerProvider,

	// API client and resource wrappers
	HTTPClientProvider,
	ServicesProvider,

	// Application services
	SessionManagerProvider,
	AuthServiceProvider,
	CartManagerProvider,
	NewApp,
)
