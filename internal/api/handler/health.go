package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthHandler handles GET /health — liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ReadinessHandler handles GET /health/ready — checks SQLite, MongoDB,
// and Redis connectivity before declaring the service ready.
type ReadinessHandler struct {
	sql   *sql.DB
	mongo *mongo.Database
	redis *redis.Client
}

func NewReadinessHandler(db *sql.DB, mdb *mongo.Database, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{sql: db, mongo: mdb, redis: rdb}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := map[string]dependencyStatus{
		"sqlite": checkDep(h.sql.PingContext(ctx)),
		"mongo":  checkDep(h.mongo.Client().Ping(ctx, nil)),
		"redis":  checkDep(h.redis.Ping(ctx).Err()),
	}

	status := http.StatusOK
	overall := "ready"
	for _, d := range deps {
		if d.Status != "up" {
			status = http.StatusServiceUnavailable
			overall = "degraded"
			break
		}
	}

	return c.JSON(status, readinessResponse{Status: overall, Dependencies: deps})
}

func checkDep(err error) dependencyStatus {
	if err != nil {
		return dependencyStatus{Status: "down", Error: err.Error()}
	}
	return dependencyStatus{Status: "up"}
}
