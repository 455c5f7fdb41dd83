package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/investor-portal/internal/model"
)

// ShareSaleRepo provides persistence for the 'share_sale_requests' table.
type ShareSaleRepo struct{ DB *sql.DB }

func NewShareSaleRepo(db *sql.DB) *ShareSaleRepo { return &ShareSaleRepo{DB: db} }

const shareSaleCols = "id,profile_id,percentage,wallet,status,admin_notes,created_at,updated_at"

// Create inserts a new `pending` resale request and populates the
// generated ID and timestamps on the passed record.
func (r *ShareSaleRepo) Create(ctx context.Context, req *model.ShareSaleRequest) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO share_sale_requests (profile_id, percentage, wallet, status) VALUES (?,?,?,?)",
		req.ProfileID, req.Percentage, req.Wallet, model.ShareSalePending)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	req.ID = uint64(id)
	got, err := r.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	*req = got
	return nil
}

// GetByID fetches a single request.
func (r *ShareSaleRepo) GetByID(ctx context.Context, id uint64) (model.ShareSaleRequest, error) {
	var req model.ShareSaleRequest
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+shareSaleCols+" FROM share_sale_requests WHERE id=? LIMIT 1", id).
		Scan(&req.ID, &req.ProfileID, &req.Percentage, &req.Wallet, &req.Status, &req.AdminNotes, &req.CreatedAt, &req.UpdatedAt)
	if err == sql.ErrNoRows {
		return req, ErrNotFound
	}
	return req, err
}

// ListByProfile returns a profile's requests, newest first.
func (r *ShareSaleRepo) ListByProfile(ctx context.Context, profileID uint64) ([]model.ShareSaleRequest, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+shareSaleCols+" FROM share_sale_requests WHERE profile_id=? ORDER BY id DESC", profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectShareSales(rows)
}

// ListByStatus returns requests in the given status (or all when status
// is empty), oldest first for the admin queue.
func (r *ShareSaleRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]model.ShareSaleRequest, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status == "" {
		rows, err = r.DB.QueryContext(ctx,
			"SELECT "+shareSaleCols+" FROM share_sale_requests ORDER BY id ASC LIMIT ? OFFSET ?", limit, offset)
	} else {
		rows, err = r.DB.QueryContext(ctx,
			"SELECT "+shareSaleCols+" FROM share_sale_requests WHERE status=? ORDER BY id ASC LIMIT ? OFFSET ?", status, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectShareSales(rows)
}

func collectShareSales(rows *sql.Rows) ([]model.ShareSaleRequest, error) {
	var out []model.ShareSaleRequest
	for rows.Next() {
		var req model.ShareSaleRequest
		if err := rows.Scan(&req.ID, &req.ProfileID, &req.Percentage, &req.Wallet, &req.Status, &req.AdminNotes, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

// Review records the admin decision: status and notes only. Ownership
// is never adjusted here.
func (r *ShareSaleRepo) Review(ctx context.Context, id uint64, status string, notes *string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE share_sale_requests SET status=?, admin_notes=?, updated_at=NOW() WHERE id=?",
		status, notes, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists uint64
		if err := r.DB.QueryRowContext(ctx, "SELECT id FROM share_sale_requests WHERE id=? LIMIT 1", id).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		}
	}
	return nil
}
