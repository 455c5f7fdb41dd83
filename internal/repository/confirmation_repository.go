package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/investor-portal/internal/model"
)

// ConfirmationRepo provides persistence for the 'payment_confirmations'
// table.
type ConfirmationRepo struct{ DB *sql.DB }

func NewConfirmationRepo(db *sql.DB) *ConfirmationRepo { return &ConfirmationRepo{DB: db} }

// Create inserts a proof-of-payment row and returns its ID.
func (r *ConfirmationRepo) Create(ctx context.Context, c *model.PaymentConfirmation) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO payment_confirmations (investment_id, file_key, tx_hash, status) VALUES (?,?,?,?)",
		c.InvestmentID, c.FileKey, c.TxHash, model.ConfirmationPending)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	c.Status = model.ConfirmationPending
	c.CreatedAt = time.Now().UTC()
	return nil
}

// ListByInvestment returns all proofs for a pledge, newest first.
func (r *ConfirmationRepo) ListByInvestment(ctx context.Context, investmentID uint64) ([]model.PaymentConfirmation, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,investment_id,file_key,tx_hash,status,created_at FROM payment_confirmations WHERE investment_id=? ORDER BY id DESC",
		investmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.PaymentConfirmation
	for rows.Next() {
		var c model.PaymentConfirmation
		if err := rows.Scan(&c.ID, &c.InvestmentID, &c.FileKey, &c.TxHash, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// MarkReviewed flags every pending proof of a pledge as reviewed. Used
// when an admin moves the pledge out of `under_review`.
func (r *ConfirmationRepo) MarkReviewed(ctx context.Context, investmentID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE payment_confirmations SET status=? WHERE investment_id=? AND status=?",
		model.ConfirmationReviewed, investmentID, model.ConfirmationPending)
	return err
}
