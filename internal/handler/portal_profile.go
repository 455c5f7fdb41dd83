package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/investor-portal/internal/repository"
)

// ProfileHandler serves the investor's own contact and payout details.
type ProfileHandler struct {
	Profiles *repository.ProfileRepo
}

func NewProfileHandler(p *repository.ProfileRepo) *ProfileHandler {
	if p == nil {
		panic("nil repository passed to NewProfileHandler")
	}
	return &ProfileHandler{Profiles: p}
}

type profileUpdateReq struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Telegram     string `json:"telegram"`
	Whatsapp     string `json:"whatsapp"`
	PayoutWallet string `json:"payout_wallet"`
}

// Get handles GET /v1/profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Profiles.GetByID(ctx, uid)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, p)
}

// Update handles PUT /v1/profile. Blank fields clear the stored value;
// auth columns are never touched from this endpoint.
func (h *ProfileHandler) Update(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req profileUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Profiles.UpdateContact(ctx, uid,
		optional(req.FullName), optional(req.Phone), optional(req.Address),
		optional(req.Telegram), optional(req.Whatsapp), optional(req.PayoutWallet)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	p, err := h.Profiles.GetByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, p)
}

// optional returns nil for blank strings so empty JSON fields map to
// NULL columns.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
