package handler

import (
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetStats returns the aggregate view, served from the redis cache when
// a fresh snapshot is available.
func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, ok := h.StatsCache.Get(ctx); ok {
		response.OK(c, cached)
		return
	}

	stats, err := h.Stats.GetStats(ctx)
	if err != nil {
		h.Logger.Error("get_stats: failed to aggregate", zap.Error(err))
		h.respondErr(c, err)
		return
	}

	h.StatsCache.Set(ctx, stats)
	response.OK(c, stats)
}
