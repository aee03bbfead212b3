package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/buddylink/buddylink-api/internal/config"
	"github.com/buddylink/buddylink-api/internal/handler"
	"github.com/buddylink/buddylink-api/internal/mailer"
	"github.com/buddylink/buddylink-api/internal/metrics"
	"github.com/buddylink/buddylink-api/internal/payload"
	"github.com/buddylink/buddylink-api/internal/repository"
	"github.com/buddylink/buddylink-api/internal/session"
	"github.com/buddylink/buddylink-api/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load(&logger)
	ctx := context.Background()

	mongoClient, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create MongoDB client")
	}
	defer func() {
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()

	if err := mongoClient.Ping(ctx, nil); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}

	db := mongoClient.Database(cfg.MongoDatabase)
	userRepo := repository.NewUserMongoRepository(ctx, &logger, db)
	seniorRepo := repository.NewSeniorMongoRepository(db)
	volunteerRepo := repository.NewVolunteerMongoRepository(db)

	var redisClient *redis.Client
	var sessions session.Store
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to parse REDIS_URL")
		}

		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer redisClient.Close()

		sessions = session.NewRedisStore(redisClient, cfg.SessionTTL)
	} else {
		logger.Info().Msg("REDIS_URL not set, using in-memory session store")
		sessions = session.NewMemoryStore(cfg.SessionTTL)
	}

	m := metrics.New()

	var notifier usecase.WelcomeNotifier
	if mail := mailer.New(&logger); mail != nil {
		notifier = mail
	}

	registrationUsecase := usecase.NewRegistrationUsecase(
		userRepo,
		seniorRepo,
		volunteerRepo,
		notifier,
		m,
		&logger,
	)
	authUsecase := usecase.NewAuthUsecase(userRepo, m)

	validator, err := payload.NewValidator()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create payload validator")
	}

	authHandler := handler.NewAuthHandler(authUsecase, sessions, validator, cfg.SessionCookieName, &logger)
	registrationHandler := handler.NewRegistrationHandler(registrationUsecase, &logger)
	healthHandler := handler.NewHealthHandler(mongoClient, redisClient, &logger)

	router := handler.NewRouter(authHandler, registrationHandler, healthHandler, &logger)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-shutdownCtx.Done()
	logger.Info().Msg("shutting down")

	timeoutCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(timeoutCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
