// Package equity holds the ownership accounting rules for the portal:
// the amount-to-percentage conversion, which pledge statuses count as
// confirmed, the aggregation behind the investor dashboard, and the
// validation applied to share-sale requests. Every call site goes
// through this package so the conversion rate exists in exactly one
// place.
package equity

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/investor-portal/internal/model"
)

// MinPledgeAmount is the smallest accepted pledge, in currency units.
var MinPledgeAmount = decimal.NewFromInt(50000)

// rateStep and ratePercent encode the conversion rate: every 50,000
// currency units of confirmed pledges grant 0.01% ownership.
var (
	rateStep    = decimal.NewFromInt(50000)
	ratePercent = decimal.RequireFromString("0.01")
)

// Projection constants: hypothetical company figures used for the
// display-only dashboard projections.
var (
	// AnnualProfitPool backs the yearly-return projection.
	AnnualProfitPool = decimal.NewFromInt(357600000)
	// MarketCaptureValuation backs the market-capture upside figure.
	MarketCaptureValuation = decimal.NewFromInt(2000000000)
)

var (
	// ErrAmountTooSmall is returned for pledges below MinPledgeAmount.
	ErrAmountTooSmall = errors.New("amount below minimum pledge")
	// ErrPercentageRange is returned when a share-sale percentage is
	// zero, negative, or exceeds the caller's owned percentage.
	ErrPercentageRange = errors.New("percentage out of range")
	// ErrNoPayoutWallet is returned when a share sale is requested by a
	// profile without a payout wallet on file.
	ErrNoPayoutWallet = errors.New("no payout wallet on file")
	// ErrTxHashRequired is returned when a USDT proof upload carries no
	// transaction hash.
	ErrTxHashRequired = errors.New("transaction hash required")
)

// OwnershipPercent converts a pledge amount into the ownership
// percentage it grants: amount × 0.01 / 50,000.
func OwnershipPercent(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(ratePercent).Div(rateStep)
}

// ValidatePledge checks a new pledge before anything is persisted.
func ValidatePledge(amount decimal.Decimal, paymentMethod string) error {
	if amount.LessThan(MinPledgeAmount) {
		return ErrAmountTooSmall
	}
	if !model.ValidPaymentMethod(paymentMethod) {
		return errors.New("unknown payment method")
	}
	return nil
}

// ValidateProof checks a proof-of-payment upload. The USDT rail requires
// a non-blank transaction hash; the other rails do not.
func ValidateProof(paymentMethod, txHash string) error {
	if paymentMethod == model.PayUSDT && strings.TrimSpace(txHash) == "" {
		return ErrTxHashRequired
	}
	return nil
}

// ValidateShareSale checks a resale request against the caller's
// current holdings before any row is inserted.
func ValidateShareSale(percentage, owned decimal.Decimal, hasWallet bool) error {
	if !hasWallet {
		return ErrNoPayoutWallet
	}
	if percentage.LessThanOrEqual(decimal.Zero) || percentage.GreaterThan(owned) {
		return ErrPercentageRange
	}
	return nil
}

// IsConfirmed reports whether a pledge status counts toward the
// investor's confirmed totals. Only `paid` and `active` do; `pending`,
// `under_review` and `rejected` never contribute.
func IsConfirmed(status string) bool {
	return status == model.InvestmentPaid || status == model.InvestmentActive
}

// NeedsAttention reports whether a pledge status keeps it in the admin
// review queue. `paid` stays visible to staff even though it already
// counts as confirmed.
func NeedsAttention(status string) bool {
	switch status {
	case model.InvestmentPending, model.InvestmentUnderReview, model.InvestmentPaid:
		return true
	}
	return false
}

// statusRank orders the forward direction of the pledge lifecycle.
// `rejected` has no rank: entering or leaving it is never forward.
var statusRank = map[string]int{
	model.InvestmentPending:     0,
	model.InvestmentUnderReview: 1,
	model.InvestmentPaid:        2,
	model.InvestmentActive:      3,
}

// IsForwardTransition reports whether from→to follows the normal
// lifecycle. Admins may apply any transition regardless; callers use
// this only to decide whether to log the override.
func IsForwardTransition(from, to string) bool {
	if from == to {
		return true
	}
	fr, fok := statusRank[from]
	tr, tok := statusRank[to]
	if !fok || !tok {
		// Entering rejected from pending/under_review is a normal
		// outcome; everything else involving rejected is a reversal.
		return !tok && (from == model.InvestmentPending || from == model.InvestmentUnderReview)
	}
	return tr > fr
}

// Summary is the dashboard read model for one profile.
type Summary struct {
	ConfirmedAmount  decimal.Decimal `json:"confirmed_amount"`
	OwnershipPercent decimal.Decimal `json:"ownership_percent"`
	RealizedIncome   decimal.Decimal `json:"realized_income"`
	YearlyReturn     decimal.Decimal `json:"yearly_return"`
	MarketUpside     decimal.Decimal `json:"market_upside"`
}

// Summarize folds a profile's pledges and income credits into the
// dashboard aggregates. Ownership sums the stored per-pledge
// percentages of confirmed pledges; realized income sums every credit
// independent of pledge status. The two projections scale the ownership
// percentage against the hardcoded company figures.
func Summarize(investments []model.Investment, income []model.IncomeTransaction) Summary {
	s := Summary{
		ConfirmedAmount:  decimal.Zero,
		OwnershipPercent: decimal.Zero,
		RealizedIncome:   decimal.Zero,
	}
	for _, inv := range investments {
		if !IsConfirmed(inv.Status) {
			continue
		}
		s.ConfirmedAmount = s.ConfirmedAmount.Add(inv.Amount)
		s.OwnershipPercent = s.OwnershipPercent.Add(inv.Percentage)
	}
	for _, tx := range income {
		s.RealizedIncome = s.RealizedIncome.Add(tx.Amount)
	}
	share := s.OwnershipPercent.Div(decimal.NewFromInt(100))
	s.YearlyReturn = share.Mul(AnnualProfitPool)
	s.MarketUpside = share.Mul(MarketCaptureValuation)
	return s
}
