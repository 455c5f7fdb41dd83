package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/investor-portal/internal/model"
)

// SettingsRepo provides read/upsert access to the singleton key/value
// rows in the 'settings' table.
type SettingsRepo struct{ DB *sql.DB }

func NewSettingsRepo(db *sql.DB) *SettingsRepo { return &SettingsRepo{DB: db} }

// Get returns the setting stored under key.
func (r *SettingsRepo) Get(ctx context.Context, key string) (model.Setting, error) {
	var s model.Setting
	err := r.DB.QueryRowContext(ctx,
		"SELECT `key`,`value`,updated_at FROM settings WHERE `key`=? LIMIT 1", key).
		Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return s, ErrNotFound
	}
	return s, err
}

// Upsert writes the value for key, creating the row on first save.
func (r *SettingsRepo) Upsert(ctx context.Context, key, value string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO settings (`key`,`value`) VALUES (?,?) ON DUPLICATE KEY UPDATE `value`=VALUES(`value`), updated_at=NOW()",
		key, value)
	return err
}
