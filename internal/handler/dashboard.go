package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sigrh-dev/rrhh-admin/backend/internal/domain"
)

const dashboardCacheKey = "dashboard:estadisticas"

func (h *Handler) ObtenerDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	cached, err := h.redisClient.Get(ctx, dashboardCacheKey).Result()
	switch {
	case err == nil:
		estadisticas := &domain.EstadisticasDashboard{}
		if err := json.Unmarshal([]byte(cached), estadisticas); err == nil {
			h.successResponse(w, r, "estadísticas obtenidas", estadisticas)
			return
		}
		// una entrada corrupta no debe tumbar el dashboard, se recalcula
	case !errors.Is(err, redis.Nil):
		h.internalServerError(w, r, err)
		return
	}

	estadisticas, err := h.repository.ObtenerEstadisticasDashboard()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	body, err := json.Marshal(estadisticas)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ttl := time.Duration(h.config.Dashboard.CacheExpiration) * time.Second
	if err := h.redisClient.Set(ctx, dashboardCacheKey, body, ttl).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "estadísticas obtenidas", estadisticas)
}
