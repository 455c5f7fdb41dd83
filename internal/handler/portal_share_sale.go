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
)

// ShareSaleHandler covers investor-side share-sale requests.
type ShareSaleHandler struct {
	Profiles    *repository.ProfileRepo
	Investments *repository.InvestmentRepo
	Income      *repository.IncomeRepo
	ShareSales  *repository.ShareSaleRepo
}

func NewShareSaleHandler(p *repository.ProfileRepo, inv *repository.InvestmentRepo, inc *repository.IncomeRepo, s *repository.ShareSaleRepo) *ShareSaleHandler {
	if p == nil || inv == nil || inc == nil || s == nil {
		panic("nil repository passed to NewShareSaleHandler")
	}
	return &ShareSaleHandler{Profiles: p, Investments: inv, Income: inc, ShareSales: s}
}

type shareSaleReq struct {
	Percentage decimal.Decimal `json:"percentage"`
	Wallet     string          `json:"wallet"`
}

// Create handles POST /v1/share-sales. The requested percentage must
// not exceed the caller's currently confirmed ownership, and a payout
// wallet must be on file or supplied with the request.
func (h *ShareSaleHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req shareSaleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Profiles.GetByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	wallet := strings.TrimSpace(req.Wallet)
	if wallet == "" {
		wallet = model.Deref(p.PayoutWallet)
	}

	invs, err := h.Investments.ListByProfile(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	owned := equity.Summarize(invs, nil).OwnershipPercent

	if err := equity.ValidateShareSale(req.Percentage, owned, wallet != ""); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	sale := &model.ShareSaleRequest{
		ProfileID:  uid,
		Percentage: req.Percentage,
		Wallet:     wallet,
	}
	if err := h.ShareSales.Create(ctx, sale); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create request failed"})
	}

	_ = queuepub.PublishShareSaleRequested(ctx, queue.ShareSaleRequestedEvent{
		RequestID:     sale.ID,
		ProfileID:     uid,
		InvestorEmail: p.Email,
		InvestorName:  model.Deref(p.FullName),
		Percentage:    sale.Percentage.String(),
		Wallet:        sale.Wallet,
		CreatedAt:     sale.CreatedAt.UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, sale)
}

// List handles GET /v1/share-sales and returns the caller's requests
// newest first.
func (h *ShareSaleHandler) List(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.ShareSales.ListByProfile(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"share_sales": list})
}
