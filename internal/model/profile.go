package model

import "time"

// Profile roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Profile account statuses.
const (
	ProfileActive    = "active"
	ProfileSuspended = "suspended"
	ProfilePending   = "pending"
)

// Profile represents an investor account as stored in the `profiles`
// table. It carries both the authentication columns (email, password
// hash, role) and the contact/payout details the investor fills in
// after registration. Contact fields are nullable in the schema and
// therefore pointers here; use Deref for display defaulting.
//
// Fields:
//  ID           – primary key identifier.
//  Email        – unique login email, stored lower-cased.
//  PasswordHash – bcrypt hashed password.
//  Role         – "user" or "admin".
//  Status       – "active", "suspended" or "pending".
//  FullName     – display name shown to admins.
//  Phone        – contact phone number.
//  Address      – postal address.
//  Telegram     – messaging handle.
//  Whatsapp     – messaging handle.
//  PayoutWallet – wallet address used for share-sale payouts.
//  CreatedAt    – timestamp of registration.
//  UpdatedAt    – timestamp of last update.
type Profile struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	FullName     *string   `json:"full_name"`
	Phone        *string   `json:"phone"`
	Address      *string   `json:"address"`
	Telegram     *string   `json:"telegram"`
	Whatsapp     *string   `json:"whatsapp"`
	PayoutWallet *string   `json:"payout_wallet"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasPayoutWallet reports whether a non-blank payout wallet is on file.
func (p *Profile) HasPayoutWallet() bool {
	return p.PayoutWallet != nil && *p.PayoutWallet != ""
}

// Deref is the single normalization point for nullable string columns.
// It replaces the `v || ''` defaulting that would otherwise be repeated
// at every call site.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
