package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeTransaction mirrors the `income_transactions` table. Rows are
// created by admins when a distribution is paid out and are immutable:
// no update or delete path exists anywhere in the service. The sum of a
// profile's income transactions is its total realized income.
//
// Fields:
//  ID        – primary key identifier.
//  ProfileID – credited investor.
//  Amount    – distributed amount in currency units.
//  TxHash    – optional reference hash of the transfer.
//  Notes     – optional staff notes.
//  CreatedAt – when the credit was recorded.
type IncomeTransaction struct {
	ID        uint64          `json:"id"`
	ProfileID uint64          `json:"profile_id"`
	Amount    decimal.Decimal `json:"amount"`
	TxHash    *string         `json:"tx_hash"`
	Notes     *string         `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
}
