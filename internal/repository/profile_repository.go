package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/investor-portal/internal/model"
	"github.com/iliyamo/investor-portal/internal/utils"
)

// ProfileRepo provides persistence for the 'profiles' table.
type ProfileRepo struct{ DB *sql.DB }

func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{DB: db} }

const profileCols = "id,email,password_hash,role,status,full_name,phone,address,telegram,whatsapp,payout_wallet,created_at,updated_at"

func scanProfile(row *sql.Row) (model.Profile, error) {
	var p model.Profile
	err := row.Scan(&p.ID, &p.Email, &p.PasswordHash, &p.Role, &p.Status,
		&p.FullName, &p.Phone, &p.Address, &p.Telegram, &p.Whatsapp, &p.PayoutWallet,
		&p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return p, ErrNotFound
	}
	return p, err
}

// Create registers a new profile with a hashed password and returns its ID.
func (r *ProfileRepo) Create(ctx context.Context, email, password, fullName string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	var name *string
	if n := strings.TrimSpace(fullName); n != "" {
		name = &n
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO profiles (email, password_hash, role, status, full_name) VALUES (?,?,?,?,?)",
		email, hash, model.RoleUser, model.ProfileActive, name)
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

// GetByEmail fetches a profile by normalized email.
func (r *ProfileRepo) GetByEmail(ctx context.Context, email string) (model.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return scanProfile(r.DB.QueryRowContext(ctx,
		"SELECT "+profileCols+" FROM profiles WHERE email=? LIMIT 1", email))
}

// GetByID fetches a profile by id.
func (r *ProfileRepo) GetByID(ctx context.Context, id uint64) (model.Profile, error) {
	return scanProfile(r.DB.QueryRowContext(ctx,
		"SELECT "+profileCols+" FROM profiles WHERE id=? LIMIT 1", id))
}

// UpdateContact lets the owning investor change their contact and
// payout fields. Auth columns are untouched.
func (r *ProfileRepo) UpdateContact(ctx context.Context, id uint64, fullName, phone, address, telegram, whatsapp, payoutWallet *string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE profiles SET full_name=?, phone=?, address=?, telegram=?, whatsapp=?, payout_wallet=?, updated_at=NOW() WHERE id=?`,
		fullName, phone, address, telegram, whatsapp, payoutWallet, id)
	return err
}

// AdminUpdate applies an admin edit: role, status and contact fields in
// one statement.
func (r *ProfileRepo) AdminUpdate(ctx context.Context, id uint64, role, status string, fullName, phone, address, telegram, whatsapp, payoutWallet *string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE profiles SET role=?, status=?, full_name=?, phone=?, address=?, telegram=?, whatsapp=?, payout_wallet=?, updated_at=NOW() WHERE id=?`,
		role, status, fullName, phone, address, telegram, whatsapp, payoutWallet, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Distinguish missing row from a write that changed nothing.
		var exists uint64
		if err := r.DB.QueryRowContext(ctx, "SELECT id FROM profiles WHERE id=? LIMIT 1", id).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		}
	}
	return nil
}

// List returns profiles newest first with limit/offset paging.
func (r *ProfileRepo) List(ctx context.Context, limit, offset int) ([]model.Profile, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+profileCols+" FROM profiles ORDER BY id DESC LIMIT ? OFFSET ?", limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Profile
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.PasswordHash, &p.Role, &p.Status,
			&p.FullName, &p.Phone, &p.Address, &p.Telegram, &p.Whatsapp, &p.PayoutWallet,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete hard-deletes a profile. Only reachable through the explicit
// admin endpoint.
func (r *ProfileRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM profiles WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
