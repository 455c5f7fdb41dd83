package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment (pledge) statuses. A pledge is created `pending`, moves to
// `under_review` when the investor uploads proof of payment, and is then
// driven by admins through `paid`/`active` or `rejected`.
const (
	InvestmentPending     = "pending"
	InvestmentUnderReview = "under_review"
	InvestmentPaid        = "paid"
	InvestmentActive      = "active"
	InvestmentRejected    = "rejected"
)

// Manual payment rails offered to investors.
const (
	PayEmoney = "emoney"
	PayUSDT   = "usdt"
	PayCard   = "card"
)

// ValidInvestmentStatus reports whether s is a known pledge status.
func ValidInvestmentStatus(s string) bool {
	switch s {
	case InvestmentPending, InvestmentUnderReview, InvestmentPaid, InvestmentActive, InvestmentRejected:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is a supported payment rail.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PayEmoney, PayUSDT, PayCard:
		return true
	}
	return false
}

// Investment mirrors the `investments` table. Percentage is computed
// once at pledge time from the amount and is never recomputed, so a
// later change of the conversion rate does not retroactively alter
// existing pledges.
//
// Fields:
//  ID             – primary key identifier.
//  ProfileID      – owning investor.
//  Amount         – pledged amount in currency units.
//  Percentage     – ownership percentage granted by this pledge.
//  Status         – see the Investment* constants.
//  PaymentMethod  – see the Pay* constants.
//  TxHash         – transaction hash supplied for on-chain rails (nullable).
//  AdminNotes     – free-text staff notes (nullable).
//  ReceivedIncome – admin-recorded income override for this pledge (nullable).
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp.
type Investment struct {
	ID             uint64           `json:"id"`
	ProfileID      uint64           `json:"profile_id"`
	Amount         decimal.Decimal  `json:"amount"`
	Percentage     decimal.Decimal  `json:"percentage"`
	Status         string           `json:"status"`
	PaymentMethod  string           `json:"payment_method"`
	TxHash         *string          `json:"tx_hash"`
	AdminNotes     *string          `json:"admin_notes"`
	ReceivedIncome *decimal.Decimal `json:"received_income"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// Payment confirmation review states.
const (
	ConfirmationPending  = "pending"
	ConfirmationReviewed = "reviewed"
)

// PaymentConfirmation mirrors the `payment_confirmations` table. One row
// is inserted per proof-of-payment upload and consumed by admins when
// moving the pledge out of review.
//
// Fields:
//  ID           – primary key identifier.
//  InvestmentID – pledge the proof belongs to.
//  FileKey      – object storage key of the uploaded file.
//  TxHash       – transaction hash typed in by the investor (nullable).
//  Status       – "pending" until an admin acts on the pledge.
//  CreatedAt    – upload timestamp.
type PaymentConfirmation struct {
	ID           uint64    `json:"id"`
	InvestmentID uint64    `json:"investment_id"`
	FileKey      string    `json:"file_key"`
	TxHash       *string   `json:"tx_hash"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
