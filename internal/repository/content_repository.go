package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/investor-portal/internal/model"
)

// ContentRepo manages the promotional media tables: 'investor_videos'
// and 'app_screenshots'. Both follow the same CRUD shape, so they share
// one repository.
type ContentRepo struct{ DB *sql.DB }

func NewContentRepo(db *sql.DB) *ContentRepo { return &ContentRepo{DB: db} }

// ---- videos ----

// CreateVideo inserts a video row (active by default) and returns its ID.
func (r *ContentRepo) CreateVideo(ctx context.Context, title, fileKey string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO investor_videos (title, file_key, is_active) VALUES (?,?,TRUE)", title, fileKey)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetVideo fetches one video row.
func (r *ContentRepo) GetVideo(ctx context.Context, id uint64) (model.InvestorVideo, error) {
	var v model.InvestorVideo
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,title,file_key,is_active,created_at FROM investor_videos WHERE id=? LIMIT 1", id).
		Scan(&v.ID, &v.Title, &v.FileKey, &v.IsActive, &v.CreatedAt)
	if err == sql.ErrNoRows {
		return v, ErrNotFound
	}
	return v, err
}

// ListVideos returns videos, optionally only active ones.
func (r *ContentRepo) ListVideos(ctx context.Context, activeOnly bool) ([]model.InvestorVideo, error) {
	q := "SELECT id,title,file_key,is_active,created_at FROM investor_videos"
	if activeOnly {
		q += " WHERE is_active=TRUE"
	}
	q += " ORDER BY id DESC"
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.InvestorVideo
	for rows.Next() {
		var v model.InvestorVideo
		if err := rows.Scan(&v.ID, &v.Title, &v.FileKey, &v.IsActive, &v.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// SetVideoActive toggles a video's active flag.
func (r *ContentRepo) SetVideoActive(ctx context.Context, id uint64, active bool) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE investor_videos SET is_active=? WHERE id=?", active, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists uint64
		if err := r.DB.QueryRowContext(ctx, "SELECT id FROM investor_videos WHERE id=? LIMIT 1", id).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		}
	}
	return nil
}

// DeleteVideo removes the row. Blob cleanup is the caller's concern.
func (r *ContentRepo) DeleteVideo(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM investor_videos WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- screenshots ----

// CreateScreenshot inserts a screenshot row and returns its ID.
func (r *ContentRepo) CreateScreenshot(ctx context.Context, title, fileKey string, sortOrder int) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO app_screenshots (title, file_key, sort_order, is_active) VALUES (?,?,?,TRUE)",
		title, fileKey, sortOrder)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetScreenshot fetches one screenshot row.
func (r *ContentRepo) GetScreenshot(ctx context.Context, id uint64) (model.AppScreenshot, error) {
	var s model.AppScreenshot
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,title,file_key,sort_order,is_active,created_at FROM app_screenshots WHERE id=? LIMIT 1", id).
		Scan(&s.ID, &s.Title, &s.FileKey, &s.SortOrder, &s.IsActive, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return s, ErrNotFound
	}
	return s, err
}

// ListScreenshots returns screenshots in display order, optionally only
// active ones.
func (r *ContentRepo) ListScreenshots(ctx context.Context, activeOnly bool) ([]model.AppScreenshot, error) {
	q := "SELECT id,title,file_key,sort_order,is_active,created_at FROM app_screenshots"
	if activeOnly {
		q += " WHERE is_active=TRUE"
	}
	q += " ORDER BY sort_order ASC, id ASC"
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.AppScreenshot
	for rows.Next() {
		var s model.AppScreenshot
		if err := rows.Scan(&s.ID, &s.Title, &s.FileKey, &s.SortOrder, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SetScreenshotActive toggles a screenshot's active flag.
func (r *ContentRepo) SetScreenshotActive(ctx context.Context, id uint64, active bool) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE app_screenshots SET is_active=? WHERE id=?", active, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists uint64
		if err := r.DB.QueryRowContext(ctx, "SELECT id FROM app_screenshots WHERE id=? LIMIT 1", id).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		}
	}
	return nil
}

// DeleteScreenshot removes the row. Blob cleanup is the caller's concern.
func (r *ContentRepo) DeleteScreenshot(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM app_screenshots WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
