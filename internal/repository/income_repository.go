package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/investor-portal/internal/model"
)

// IncomeRepo provides insert and list access to the
// 'income_transactions' table. There is deliberately no update or
// delete method: income credits are immutable once recorded.
type IncomeRepo struct{ DB *sql.DB }

func NewIncomeRepo(db *sql.DB) *IncomeRepo { return &IncomeRepo{DB: db} }

// Create records an income credit and returns its ID.
func (r *IncomeRepo) Create(ctx context.Context, tx *model.IncomeTransaction) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO income_transactions (profile_id, amount, tx_hash, notes) VALUES (?,?,?,?)",
		tx.ProfileID, tx.Amount, tx.TxHash, tx.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	tx.ID = uint64(id)
	tx.CreatedAt = time.Now().UTC()
	return nil
}

// ListByProfile returns a profile's income credits, newest first.
func (r *IncomeRepo) ListByProfile(ctx context.Context, profileID uint64) ([]model.IncomeTransaction, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,profile_id,amount,tx_hash,notes,created_at FROM income_transactions WHERE profile_id=? ORDER BY id DESC",
		profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectIncome(rows)
}

// List returns all income credits newest first with limit/offset paging.
func (r *IncomeRepo) List(ctx context.Context, limit, offset int) ([]model.IncomeTransaction, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,profile_id,amount,tx_hash,notes,created_at FROM income_transactions ORDER BY id DESC LIMIT ? OFFSET ?",
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectIncome(rows)
}

func collectIncome(rows *sql.Rows) ([]model.IncomeTransaction, error) {
	var out []model.IncomeTransaction
	for rows.Next() {
		var tx model.IncomeTransaction
		if err := rows.Scan(&tx.ID, &tx.ProfileID, &tx.Amount, &tx.TxHash, &tx.Notes, &tx.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}
