package handler

import (
	"context"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// DBPinger is satisfied by *sqlx.DB and *sql.DB.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the database and cache are reachable.
type HealthHandler struct {
	db    DBPinger
	cache domain.Cache
}

// NewHealthHandler creates a new HealthHandler. cache may be nil when caching is disabled.
func NewHealthHandler(db DBPinger, cache domain.Cache) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cache: cache,
	}
}

// Health godoc
// @Summary Health check
// @Tags meta
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	resp := dto.HealthResponse{
		Status:   "ok",
		Services: map[string]string{},
	}

	resp.Services["database"] = h.check(ctx, "database", h.db.PingContext)
	if h.cache != nil {
		resp.Services["cache"] = h.check(ctx, "cache", h.cache.Ping)
	} else {
		resp.Services["cache"] = "disabled"
	}

	for _, status := range resp.Services {
		if status == "down" {
			resp.Status = "degraded"
			return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
		}
	}
	return c.JSON(resp)
}

func (h *HealthHandler) check(ctx context.Context, name string, ping func(context.Context) error) string {
	if err := ping(ctx); err != nil {
		logger.Get().Warn("Health check failed", zap.String("service", name), zap.Error(err))
		return "down"
	}
	return "up"
}
