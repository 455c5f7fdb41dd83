package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SyncMetrics handles POST /v1/admin/metrics/sync: one attempt against
// the analytics API, with the fallback snapshot stored when it fails.
// The stored snapshot is returned so the admin can see which source won.
func (h *AdminHandler) SyncMetrics(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	m, err := h.Syncer.Sync(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store metrics failed"})
	}
	return c.JSON(http.StatusOK, m)
}
