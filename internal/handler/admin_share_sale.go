package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/investor-portal/internal/model"
	"github.com/iliyamo/investor-portal/internal/repository"
)

// ListShareSales handles GET /v1/admin/share-sales. Default view is the
// pending queue; ?status= narrows to any single status.
func (h *AdminHandler) ListShareSales(c echo.Context) error {
	status := strings.ToLower(strings.TrimSpace(c.QueryParam("status")))
	if status == "" {
		status = model.ShareSalePending
	}
	if !model.ValidShareSaleStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
	}
	limit, offset := pagination(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.ShareSales.ListByStatus(ctx, status, limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"share_sales": list})
}

type shareSaleReviewReq struct {
	Status     string  `json:"status"`
	AdminNotes *string `json:"admin_notes"`
}

// ReviewShareSale handles PUT /v1/admin/share-sales/:id. Approval
// records the decision on the request row only; the investor's
// ownership percentages are left untouched.
func (h *AdminHandler) ReviewShareSale(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request id"})
	}
	var req shareSaleReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if !model.ValidShareSaleStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sale, err := h.ShareSales.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if sale.Status != model.ShareSalePending && sale.Status != status {
		log.Printf("admin override: share sale %d status %s -> %s", id, sale.Status, status)
	}

	if err := h.ShareSales.Review(ctx, id, status, req.AdminNotes); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.ShareSales.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, updated)
}
