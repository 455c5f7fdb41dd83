package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/investor-portal/internal/model"
	"github.com/iliyamo/investor-portal/internal/repository"
)

type incomeReq struct {
	ProfileID uint64          `json:"profile_id"`
	Amount    decimal.Decimal `json:"amount"`
	TxHash    *string         `json:"tx_hash"`
	Notes     *string         `json:"notes"`
}

// CreateIncome handles POST /v1/admin/income. Income rows are append
// only: there is no update or delete endpoint, so a mistaken credit is
// corrected with a compensating entry.
func (h *AdminHandler) CreateIncome(c echo.Context) error {
	var req incomeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ProfileID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "profile_id required"})
	}
	if req.Amount.IsZero() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Profiles.GetByID(ctx, req.ProfileID); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	tx := &model.IncomeTransaction{
		ProfileID: req.ProfileID,
		Amount:    req.Amount,
		TxHash:    req.TxHash,
		Notes:     req.Notes,
	}
	if err := h.Income.Create(ctx, tx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create income failed"})
	}
	return c.JSON(http.StatusCreated, tx)
}

// ListIncome handles GET /v1/admin/income, optionally filtered to one
// profile with ?profile_id=.
func (h *AdminHandler) ListIncome(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if raw := c.QueryParam("profile_id"); raw != "" {
		pid, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || pid == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid profile_id"})
		}
		list, err := h.Income.ListByProfile(ctx, pid)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		return c.JSON(http.StatusOK, echo.Map{"income": list})
	}

	limit, offset := pagination(c)
	list, err := h.Income.List(ctx, limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"income": list})
}
