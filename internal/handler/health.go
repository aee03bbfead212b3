package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/buddylink/buddylink-api/internal/payload"
)

const dependencyCheckTimeout = 5 * time.Second

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	mongoClient *mongo.Client
	redisClient *redis.Client
	logger      *zerolog.Logger
}

// NewHealthHandler creates a new HealthHandler. redisClient may be nil when
// sessions run in memory.
func NewHealthHandler(mongoClient *mongo.Client, redisClient *redis.Client, logger *zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		mongoClient: mongoClient,
		redisClient: redisClient,
		logger:      logger,
	}
}

// Health is a liveness check; it confirms only that the process serves HTTP.
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, payload.HealthResponse{OK: true})
}

type readyCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type readyResponse struct {
	Status string                `json:"status"`
	Checks map[string]readyCheck `json:"checks"`
}

// Ready reports whether the backing stores answer, for readiness probes.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dependencyCheckTimeout)
	defer cancel()

	checks := map[string]readyCheck{
		"mongodb": h.checkMongo(ctx),
	}
	if h.redisClient != nil {
		checks["redis"] = h.checkRedis(ctx)
	}

	status := "UP"
	httpStatus := http.StatusOK
	for _, check := range checks {
		if check.Status != "UP" {
			status = "DOWN"
			httpStatus = http.StatusServiceUnavailable
		}
	}

	writeJSON(w, httpStatus, readyResponse{Status: status, Checks: checks})
}

func (h *HealthHandler) checkMongo(ctx context.Context) readyCheck {
	if err := h.mongoClient.Ping(ctx, nil); err != nil {
		h.logger.Warn().Err(err).Msg("mongodb readiness check failed")
		return readyCheck{Status: "DOWN", Message: "Cannot connect to MongoDB"}
	}
	return readyCheck{Status: "UP"}
}

func (h *HealthHandler) checkRedis(ctx context.Context) readyCheck {
	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		h.logger.Warn().Err(err).Msg("redis readiness check failed")
		return readyCheck{Status: "DOWN", Message: "Cannot connect to Redis"}
	}
	return readyCheck{Status: "UP"}
}
