package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/investor-portal/internal/model"
)

// MetricsRepo stores daily app-usage snapshots in the 'app_metrics'
// table, one row per calendar date.
type MetricsRepo struct{ DB *sql.DB }

func NewMetricsRepo(db *sql.DB) *MetricsRepo { return &MetricsRepo{DB: db} }

// UpsertDaily inserts or replaces the row for m.MetricDate.
func (r *MetricsRepo) UpsertDaily(ctx context.Context, m model.AppMetrics) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO app_metrics (metric_date, dau, mau, downloads, avg_session_sec, retention_d30, source)
		 VALUES (?,?,?,?,?,?,?)
		 ON DUPLICATE KEY UPDATE dau=VALUES(dau), mau=VALUES(mau), downloads=VALUES(downloads),
		 avg_session_sec=VALUES(avg_session_sec), retention_d30=VALUES(retention_d30),
		 source=VALUES(source), updated_at=NOW()`,
		m.MetricDate.Format("2006-01-02"), m.DAU, m.MAU, m.Downloads, m.AvgSessionSec, m.RetentionD30, m.Source)
	return err
}

// Latest returns the most recent snapshot.
func (r *MetricsRepo) Latest(ctx context.Context) (model.AppMetrics, error) {
	var m model.AppMetrics
	err := r.DB.QueryRowContext(ctx,
		`SELECT metric_date, dau, mau, downloads, avg_session_sec, retention_d30, source, updated_at
		 FROM app_metrics ORDER BY metric_date DESC LIMIT 1`).
		Scan(&m.MetricDate, &m.DAU, &m.MAU, &m.Downloads, &m.AvgSessionSec, &m.RetentionD30, &m.Source, &m.UpdatedAt)
	if err == sql.ErrNoRows {
		return m, ErrNotFound
	}
	return m, err
}
