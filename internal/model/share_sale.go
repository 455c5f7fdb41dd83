package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Share-sale request statuses, set only by admins after creation.
const (
	ShareSalePending  = "pending"
	ShareSaleApproved = "approved"
	ShareSaleRejected = "rejected"
)

// ValidShareSaleStatus reports whether s is a known request status.
func ValidShareSaleStatus(s string) bool {
	switch s {
	case ShareSalePending, ShareSaleApproved, ShareSaleRejected:
		return true
	}
	return false
}

// ShareSaleRequest mirrors the `share_sale_requests` table. An investor
// asks to convert part of their owned percentage into a cash-out to the
// given wallet. Approval is a recorded decision only: no ownership
// transfer or payout ledger entry is produced by this service.
//
// Fields:
//  ID         – primary key identifier.
//  ProfileID  – requesting investor.
//  Percentage – share of ownership the investor wants to sell.
//  Wallet     – payout wallet address for this request.
//  Status     – "pending", "approved" or "rejected".
//  AdminNotes – optional staff notes (nullable).
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type ShareSaleRequest struct {
	ID         uint64          `json:"id"`
	ProfileID  uint64          `json:"profile_id"`
	Percentage decimal.Decimal `json:"percentage"`
	Wallet     string          `json:"wallet"`
	Status     string          `json:"status"`
	AdminNotes *string         `json:"admin_notes"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
