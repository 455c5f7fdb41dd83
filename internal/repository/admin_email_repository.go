package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/investor-portal/internal/model"
)

// AdminEmailRepo manages the notification recipient list in the
// 'admin_emails' table.
type AdminEmailRepo struct{ DB *sql.DB }

func NewAdminEmailRepo(db *sql.DB) *AdminEmailRepo { return &AdminEmailRepo{DB: db} }

// Create adds a recipient (active by default) and returns its ID.
func (r *AdminEmailRepo) Create(ctx context.Context, email string) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO admin_emails (email, is_active) VALUES (?, TRUE)", email)
	if err != nil {
		if isDup(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// List returns every recipient, active or not.
func (r *AdminEmailRepo) List(ctx context.Context) ([]model.AdminEmail, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,email,is_active,created_at FROM admin_emails ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.AdminEmail
	for rows.Next() {
		var a model.AdminEmail
		if err := rows.Scan(&a.ID, &a.Email, &a.IsActive, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListActive returns only the addresses that should receive mail.
func (r *AdminEmailRepo) ListActive(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT email FROM admin_emails WHERE is_active=TRUE ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		out = append(out, email)
	}
	return out, rows.Err()
}

// SetActive toggles a recipient's active flag.
func (r *AdminEmailRepo) SetActive(ctx context.Context, id uint64, active bool) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE admin_emails SET is_active=? WHERE id=?", active, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists uint64
		if err := r.DB.QueryRowContext(ctx, "SELECT id FROM admin_emails WHERE id=? LIMIT 1", id).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		}
	}
	return nil
}

// Delete removes a recipient.
func (r *AdminEmailRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM admin_emails WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
