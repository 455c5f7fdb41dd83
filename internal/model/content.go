package model

import "time"

// Settings keys holding long-form legal text edited by admins.
const (
	SettingPublicOffer       = "public_offer"
	SettingPurchaseAgreement = "purchase_agreement"
)

// ValidSettingKey reports whether k is one of the known settings keys.
func ValidSettingKey(k string) bool {
	return k == SettingPublicOffer || k == SettingPurchaseAgreement
}

// Setting is a singleton key/value row in the `settings` table.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InvestorVideo mirrors the `investor_videos` table: promotional videos
// uploaded by admins and shown on the marketing site while active.
type InvestorVideo struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	FileKey   string    `json:"file_key"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// AppScreenshot mirrors the `app_screenshots` table. SortOrder controls
// display order on the marketing site.
type AppScreenshot struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	FileKey   string    `json:"file_key"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminEmail is a notification recipient managed by admins. Only rows
// with IsActive set receive pledge/resale notification mail.
type AdminEmail struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
