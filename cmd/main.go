package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/travel-flight-search/internal/app/config"
	"github.com/ijalalfrz/travel-flight-search/internal/app/dto"
	"github.com/ijalalfrz/travel-flight-search/internal/app/endpoints"
	"github.com/ijalalfrz/travel-flight-search/internal/app/service"
	"github.com/ijalalfrz/travel-flight-search/internal/app/transport"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/flight"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/flightprovider"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/flightprovider/serpapi"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/logger"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/ratelimit"
	"github.com/ijalalfrz/travel-flight-search/internal/pkg/traveldate"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

// @title           Travel Flight Search API
// @version         0.0.1
// @description     travel-flight-search
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	provider := initFlightProvider(cfg)

	// service
	legBuilder := flight.NewLegBuilder(traveldate.NewNormalizer(), cfg.Search.DefaultOrigin)
	searchService := service.NewFlightSearchService(provider, legBuilder)
	bookingService := service.NewBookingService(provider)

	// init service endpoint
	return endpoints.Endpoints{
		FlightEndpoint:  endpoints.MakeFlightEndpoint(searchService),
		BookingEndpoint: endpoints.MakeBookingEndpoint(bookingService),
	}
}

func initFlightProvider(cfg *config.Config) flightprovider.FlightProvider {
	if cfg.Provider.APIKey == "" {
		slog.Warn("SERPAPI_KEY is not set, provider calls will fail authentication")
	}

	return serpapi.NewClient(flightprovider.FlightProviderConfig{
		BaseURL:    cfg.Provider.BaseURL,
		APIKey:     cfg.Provider.APIKey,
		Timeout:    cfg.Provider.Timeout,
		MaxRetries: cfg.Provider.MaxRetries,
		Limiter:    initLimiter(cfg),
	}, &http.Client{})
}

// initLimiter shares the provider budget through Redis when it is
// configured, and keeps it per process otherwise.
func initLimiter(cfg *config.Config) flightprovider.Limiter {
	if cfg.Redis.Addr == "" {
		return ratelimit.NewLocalLimiter(cfg.Provider.RateLimit)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.Timeout,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})

	return ratelimit.NewRedisLimiter(redis_rate.NewLimiter(redisClient), cfg.Provider.RateLimit)
}
