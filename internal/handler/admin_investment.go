package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/investor-portal/internal/equity"
	"github.com/iliyamo/investor-portal/internal/model"
	"github.com/iliyamo/investor-portal/internal/repository"
)

// ListInvestments handles GET /v1/admin/investments. Without a status
// filter it returns the attention queue: pledges that still need an
// admin decision, oldest first.
func (h *AdminHandler) ListInvestments(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	statuses := []string{model.InvestmentPending, model.InvestmentUnderReview, model.InvestmentPaid}
	if raw := strings.TrimSpace(c.QueryParam("status")); raw != "" {
		statuses = statuses[:0]
		for _, s := range strings.Split(raw, ",") {
			s = strings.ToLower(strings.TrimSpace(s))
			if !model.ValidInvestmentStatus(s) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status: " + s})
			}
			statuses = append(statuses, s)
		}
	}
	limit, offset := pagination(c)

	list, err := h.Investments.ListByStatuses(ctx, statuses, limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"investments": list})
}

// GetInvestment handles GET /v1/admin/investments/:id and includes the
// pledge's uploaded payment confirmations.
func (h *AdminHandler) GetInvestment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid investment id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	inv, err := h.Investments.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "investment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	confs, err := h.Confirmations.ListByInvestment(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"investment": inv, "confirmations": confs})
}

type investmentReviewReq struct {
	Status         string           `json:"status"`
	AdminNotes     *string          `json:"admin_notes"`
	ReceivedIncome *decimal.Decimal `json:"received_income"`
}

// ReviewInvestment handles PUT /v1/admin/investments/:id. Status, notes
// and the income override are written in one statement so a partial
// save can never occur. Reversals are allowed but logged, since the
// normal flow only ever moves a pledge forward.
func (h *AdminHandler) ReviewInvestment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid investment id"})
	}
	var req investmentReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if !model.ValidInvestmentStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	inv, err := h.Investments.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "investment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	if !equity.IsForwardTransition(inv.Status, status) {
		log.Printf("admin override: investment %d status %s -> %s", id, inv.Status, status)
	}

	if err := h.Investments.AdminApply(ctx, id, status, req.AdminNotes, req.ReceivedIncome); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	if inv.Status == model.InvestmentUnderReview && status != model.InvestmentUnderReview {
		if err := h.Confirmations.MarkReviewed(ctx, id); err != nil {
			log.Printf("mark confirmations reviewed for investment %d: %v", id, err)
		}
	}

	updated, err := h.Investments.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, updated)
}
