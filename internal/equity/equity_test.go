package equity

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/investor-portal/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestOwnershipPercent(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"50000", "0.01"},
		{"100000", "0.02"},
		{"150000", "0.03"},
		{"75000", "0.015"},
		{"5000000", "1"},
	}
	for _, tc := range cases {
		got := OwnershipPercent(dec(tc.amount))
		if !got.Equal(dec(tc.want)) {
			t.Errorf("OwnershipPercent(%s) = %s, want %s", tc.amount, got, tc.want)
		}
	}
}

// The conversion rate appeared upstream both as amount*0.01/50000 and
// as a single division by 5,000,000. They are algebraically equal; this
// pins the centralized formula to both literals.
func TestOwnershipPercentFormulaEquivalence(t *testing.T) {
	for _, amount := range []string{"50000", "50001", "123456.78", "999999999.99"} {
		a := dec(amount)
		alt := a.Div(decimal.NewFromInt(5000000))
		if got := OwnershipPercent(a); !got.Equal(alt) {
			t.Errorf("formulas diverge for %s: %s vs %s", amount, got, alt)
		}
	}
}

func TestValidatePledge(t *testing.T) {
	if err := ValidatePledge(dec("49999.99"), model.PayEmoney); err != ErrAmountTooSmall {
		t.Errorf("amount below minimum: err = %v, want ErrAmountTooSmall", err)
	}
	if err := ValidatePledge(dec("50000"), model.PayEmoney); err != nil {
		t.Errorf("minimum amount rejected: %v", err)
	}
	if err := ValidatePledge(dec("50000"), "paypal"); err == nil {
		t.Error("unknown payment method accepted")
	}
}

func TestValidateProof(t *testing.T) {
	if err := ValidateProof(model.PayUSDT, ""); err != ErrTxHashRequired {
		t.Errorf("usdt without hash: err = %v, want ErrTxHashRequired", err)
	}
	if err := ValidateProof(model.PayUSDT, "   \t"); err != ErrTxHashRequired {
		t.Errorf("usdt with whitespace hash: err = %v, want ErrTxHashRequired", err)
	}
	if err := ValidateProof(model.PayUSDT, "0xabc"); err != nil {
		t.Errorf("usdt with hash rejected: %v", err)
	}
	if err := ValidateProof(model.PayCard, ""); err != nil {
		t.Errorf("card without hash rejected: %v", err)
	}
	if err := ValidateProof(model.PayEmoney, ""); err != nil {
		t.Errorf("emoney without hash rejected: %v", err)
	}
}

func TestValidateShareSale(t *testing.T) {
	owned := dec("0.03")
	cases := []struct {
		name      string
		pct       string
		hasWallet bool
		wantErr   error
	}{
		{"zero percentage", "0", true, ErrPercentageRange},
		{"negative percentage", "-0.01", true, ErrPercentageRange},
		{"more than owned", "0.031", true, ErrPercentageRange},
		{"no wallet", "0.01", false, ErrNoPayoutWallet},
		{"exactly owned", "0.03", true, nil},
		{"part of owned", "0.01", true, nil},
	}
	for _, tc := range cases {
		if err := ValidateShareSale(dec(tc.pct), owned, tc.hasWallet); err != tc.wantErr {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.wantErr)
		}
	}
}

func inv(amount, pct, status string) model.Investment {
	return model.Investment{Amount: dec(amount), Percentage: dec(pct), Status: status}
}

func TestSummarizeCountsOnlyConfirmed(t *testing.T) {
	investments := []model.Investment{
		inv("100000", "0.02", model.InvestmentActive),
		inv("50000", "0.01", model.InvestmentPaid),
		inv("50000", "0.01", model.InvestmentPending),
		inv("50000", "0.01", model.InvestmentUnderReview),
		inv("50000", "0.01", model.InvestmentRejected),
	}
	s := Summarize(investments, nil)
	if !s.ConfirmedAmount.Equal(dec("150000")) {
		t.Errorf("ConfirmedAmount = %s, want 150000", s.ConfirmedAmount)
	}
	if !s.OwnershipPercent.Equal(dec("0.03")) {
		t.Errorf("OwnershipPercent = %s, want 0.03", s.OwnershipPercent)
	}
}

// A pledge of 50,000 set active yields 0.01% ownership and a yearly
// return projection of 0.01/100 × 357,600,000 = 35,760.
func TestSummarizeProjections(t *testing.T) {
	s := Summarize([]model.Investment{inv("50000", "0.01", model.InvestmentActive)}, nil)
	if !s.OwnershipPercent.Equal(dec("0.01")) {
		t.Fatalf("OwnershipPercent = %s, want 0.01", s.OwnershipPercent)
	}
	if !s.YearlyReturn.Equal(dec("35760")) {
		t.Errorf("YearlyReturn = %s, want 35760", s.YearlyReturn)
	}
	if !s.MarketUpside.Equal(dec("200000")) {
		t.Errorf("MarketUpside = %s, want 200000", s.MarketUpside)
	}
}

// Realized income sums every credit regardless of pledge status.
func TestSummarizeRealizedIncome(t *testing.T) {
	income := []model.IncomeTransaction{
		{Amount: dec("1000")},
		{Amount: dec("2500")},
	}
	investments := []model.Investment{inv("50000", "0.01", model.InvestmentPending)}
	s := Summarize(investments, income)
	if !s.RealizedIncome.Equal(dec("3500")) {
		t.Errorf("RealizedIncome = %s, want 3500", s.RealizedIncome)
	}
	if !s.OwnershipPercent.Equal(decimal.Zero) {
		t.Errorf("pending pledge contributed to ownership: %s", s.OwnershipPercent)
	}
}

// Re-applying the current status must not change aggregate totals.
func TestSummarizeIdempotentStatusRewrite(t *testing.T) {
	investments := []model.Investment{inv("100000", "0.02", model.InvestmentActive)}
	before := Summarize(investments, nil)
	investments[0].Status = model.InvestmentActive // unchanged write
	after := Summarize(investments, nil)
	if !before.OwnershipPercent.Equal(after.OwnershipPercent) || !before.ConfirmedAmount.Equal(after.ConfirmedAmount) {
		t.Error("aggregates changed after no-op status write")
	}
}

func TestIsForwardTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{model.InvestmentPending, model.InvestmentUnderReview, true},
		{model.InvestmentPending, model.InvestmentPaid, true},
		{model.InvestmentUnderReview, model.InvestmentActive, true},
		{model.InvestmentPaid, model.InvestmentActive, true},
		{model.InvestmentPending, model.InvestmentRejected, true},
		{model.InvestmentUnderReview, model.InvestmentRejected, true},
		{model.InvestmentActive, model.InvestmentRejected, false}, // reversal
		{model.InvestmentPaid, model.InvestmentRejected, false},
		{model.InvestmentActive, model.InvestmentPending, false},
		{model.InvestmentPaid, model.InvestmentUnderReview, false},
		{model.InvestmentRejected, model.InvestmentActive, false},
		{model.InvestmentActive, model.InvestmentActive, true}, // no-op
	}
	for _, tc := range cases {
		if got := IsForwardTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("IsForwardTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestNeedsAttention(t *testing.T) {
	want := map[string]bool{
		model.InvestmentPending:     true,
		model.InvestmentUnderReview: true,
		model.InvestmentPaid:        true, // confirmed but still in the queue
		model.InvestmentActive:      false,
		model.InvestmentRejected:    false,
	}
	for status, w := range want {
		if got := NeedsAttention(status); got != w {
			t.Errorf("NeedsAttention(%s) = %v, want %v", status, got, w)
		}
	}
}
