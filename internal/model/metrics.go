package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Origin of a stored metrics snapshot.
const (
	MetricsSourceAPI      = "api"
	MetricsSourceFallback = "fallback"
)

// AppMetrics mirrors the `app_metrics` table: one row per calendar day,
// upserted by the sync job. Source records whether the values came from
// the analytics API or from the hardcoded fallback snapshot.
type AppMetrics struct {
	MetricDate    time.Time       `json:"metric_date"`
	DAU           int64           `json:"dau"`
	MAU           int64           `json:"mau"`
	Downloads     int64           `json:"downloads"`
	AvgSessionSec int64           `json:"avg_session_sec"`
	RetentionD30  decimal.Decimal `json:"retention_d30"`
	Source        string          `json:"source"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
