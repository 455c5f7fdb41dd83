package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/investor-portal/internal/equity"
	"github.com/iliyamo/investor-portal/internal/model"
	"github.com/iliyamo/investor-portal/internal/queue"
	"github.com/iliyamo/investor-portal/internal/repository"
	queuepub "github.com/iliyamo/investor-portal/internal/service"
	"github.com/iliyamo/investor-portal/internal/storage"
)

// InvestmentHandler covers the investor-facing pledge lifecycle: new
// pledges, proof-of-payment uploads, the pledge list and the dashboard
// aggregates.
type InvestmentHandler struct {
	Profiles      *repository.ProfileRepo
	Investments   *repository.InvestmentRepo
	Confirmations *repository.ConfirmationRepo
	Income        *repository.IncomeRepo
	Store         *storage.Store // nil when object storage is not configured
}

func NewInvestmentHandler(p *repository.ProfileRepo, inv *repository.InvestmentRepo, conf *repository.ConfirmationRepo, inc *repository.IncomeRepo, store *storage.Store) *InvestmentHandler {
	if p == nil || inv == nil || conf == nil || inc == nil {
		panic("nil repository passed to NewInvestmentHandler")
	}
	return &InvestmentHandler{Profiles: p, Investments: inv, Confirmations: conf, Income: inc, Store: store}
}

type pledgeReq struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
}

// Create handles POST /v1/investments. The ownership percentage is
// computed and stored at creation time and never recomputed afterwards.
func (h *InvestmentHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req pledgeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	method := strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	if err := equity.ValidatePledge(req.Amount, method); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	inv := &model.Investment{
		ProfileID:     uid,
		Amount:        req.Amount,
		Percentage:    equity.OwnershipPercent(req.Amount),
		PaymentMethod: method,
	}
	if err := h.Investments.Create(ctx, inv); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create pledge failed"})
	}

	// Notify admins via the broker. A broker outage must not fail the
	// pledge, so the publish error is only logged inside the publisher.
	if p, err := h.Profiles.GetByID(ctx, uid); err == nil {
		_ = queuepub.PublishPledgeCreated(ctx, queue.PledgeCreatedEvent{
			InvestmentID:  inv.ID,
			ProfileID:     uid,
			InvestorEmail: p.Email,
			InvestorName:  model.Deref(p.FullName),
			Amount:        inv.Amount.String(),
			Percentage:    inv.Percentage.String(),
			PaymentMethod: inv.PaymentMethod,
			CreatedAt:     inv.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, inv)
}

// List handles GET /v1/investments and returns the caller's pledges
// newest first.
func (h *InvestmentHandler) List(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Investments.ListByProfile(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"investments": list})
}

// UploadProof handles POST /v1/investments/:id/proof. The multipart
// body carries the proof file and, for USDT pledges, a tx_hash field.
// A successful upload moves the pledge into review.
func (h *InvestmentHandler) UploadProof(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid investment id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	inv, err := h.Investments.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "investment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if inv.ProfileID != uid {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	txHash := strings.TrimSpace(c.FormValue("tx_hash"))
	if err := equity.ValidateProof(inv.PaymentMethod, txHash); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "proof file required"})
	}
	if h.Store == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "file storage unavailable"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable file"})
	}
	defer src.Close()

	key := storage.NewKey(storage.PrefixProofs, fh.Filename)
	if err := h.Store.Upload(ctx, key, src); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upload failed"})
	}

	conf := &model.PaymentConfirmation{
		InvestmentID: inv.ID,
		FileKey:      key,
		TxHash:       optional(txHash),
	}
	if err := h.Confirmations.Create(ctx, conf); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save confirmation failed"})
	}
	if err := h.Investments.SetUnderReview(ctx, inv.ID); err != nil {
		if err == repository.ErrConflict {
			return c.JSON(http.StatusConflict, echo.Map{"error": "investment not awaiting proof"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update status failed"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"confirmation": conf,
		"status":       model.InvestmentUnderReview,
	})
}

// Dashboard handles GET /v1/dashboard: the ownership, income and
// projection aggregates for the calling investor.
func (h *InvestmentHandler) Dashboard(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	invs, err := h.Investments.ListByProfile(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	income, err := h.Income.ListByProfile(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, equity.Summarize(invs, income))
}
