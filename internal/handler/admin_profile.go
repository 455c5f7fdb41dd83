package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/investor-portal/internal/model"
	"github.com/iliyamo/investor-portal/internal/repository"
)

// ListProfiles handles GET /v1/admin/profiles, newest first.
func (h *AdminHandler) ListProfiles(c echo.Context) error {
	limit, offset := pagination(c)
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Profiles.List(ctx, limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"profiles": list})
}

// GetProfile handles GET /v1/admin/profiles/:id with the investor's
// pledges and income attached for the review screen.
func (h *AdminHandler) GetProfile(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid profile id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Profiles.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	invs, err := h.Investments.ListByProfile(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	income, err := h.Income.ListByProfile(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"profile":     p,
		"investments": invs,
		"income":      income,
	})
}

type adminProfileReq struct {
	Role         string `json:"role"`
	Status       string `json:"status"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Telegram     string `json:"telegram"`
	Whatsapp     string `json:"whatsapp"`
	PayoutWallet string `json:"payout_wallet"`
}

// UpdateProfile handles PUT /v1/admin/profiles/:id: role, status and
// contact fields in one write.
func (h *AdminHandler) UpdateProfile(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid profile id"})
	}
	var req adminProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role != model.RoleUser && role != model.RoleAdmin {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown role"})
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status != model.ProfileActive && status != model.ProfileSuspended && status != model.ProfilePending {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Profiles.AdminUpdate(ctx, id, role, status,
		optional(req.FullName), optional(req.Phone), optional(req.Address),
		optional(req.Telegram), optional(req.Whatsapp), optional(req.PayoutWallet)); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	p, err := h.Profiles.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, p)
}

// DeleteProfile handles DELETE /v1/admin/profiles/:id.
func (h *AdminHandler) DeleteProfile(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid profile id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Profiles.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
