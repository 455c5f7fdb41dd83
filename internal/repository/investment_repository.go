package repository

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/investor-portal/internal/model"
)

// InvestmentRepo provides persistence for the 'investments' table.
type InvestmentRepo struct{ DB *sql.DB }

func NewInvestmentRepo(db *sql.DB) *InvestmentRepo { return &InvestmentRepo{DB: db} }

const investmentCols = "id,profile_id,amount,percentage,status,payment_method,tx_hash,admin_notes,received_income,created_at,updated_at"

func scanInvestment(s interface {
	Scan(dest ...any) error
}) (model.Investment, error) {
	var (
		inv    model.Investment
		income decimal.NullDecimal
	)
	err := s.Scan(&inv.ID, &inv.ProfileID, &inv.Amount, &inv.Percentage, &inv.Status,
		&inv.PaymentMethod, &inv.TxHash, &inv.AdminNotes, &income,
		&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return inv, err
	}
	if income.Valid {
		d := income.Decimal
		inv.ReceivedIncome = &d
	}
	return inv, nil
}

// Create inserts a new pledge in `pending` and populates the generated
// ID and timestamps on the passed record.
func (r *InvestmentRepo) Create(ctx context.Context, inv *model.Investment) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO investments (profile_id, amount, percentage, status, payment_method) VALUES (?,?,?,?,?)",
		inv.ProfileID, inv.Amount, inv.Percentage, model.InvestmentPending, inv.PaymentMethod)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	inv.ID = uint64(id)
	got, err := r.GetByID(ctx, inv.ID)
	if err != nil {
		return err
	}
	*inv = got
	return nil
}

// GetByID fetches a single pledge.
func (r *InvestmentRepo) GetByID(ctx context.Context, id uint64) (model.Investment, error) {
	inv, err := scanInvestment(r.DB.QueryRowContext(ctx,
		"SELECT "+investmentCols+" FROM investments WHERE id=? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return inv, ErrNotFound
	}
	return inv, err
}

// ListByProfile returns a profile's pledges newest first.
func (r *InvestmentRepo) ListByProfile(ctx context.Context, profileID uint64) ([]model.Investment, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+investmentCols+" FROM investments WHERE profile_id=? ORDER BY id DESC", profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvestments(rows)
}

// ListByStatuses returns pledges in any of the given statuses, oldest
// first so the admin queue surfaces the longest-waiting pledges on top.
func (r *InvestmentRepo) ListByStatuses(ctx context.Context, statuses []string, limit, offset int) ([]model.Investment, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	q := "SELECT " + investmentCols + " FROM investments WHERE status IN ("
	args := make([]any, 0, len(statuses)+2)
	for i, s := range statuses {
		if i > 0 {
			q += ","
		}
		q += "?"
		args = append(args, s)
	}
	q += ") ORDER BY id ASC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvestments(rows)
}

func collectInvestments(rows *sql.Rows) ([]model.Investment, error) {
	var out []model.Investment
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// SetUnderReview transitions a pledge into review after a proof upload.
// Only `pending` and `rejected` pledges can enter review this way.
func (r *InvestmentRepo) SetUnderReview(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE investments SET status=?, updated_at=NOW() WHERE id=? AND status IN (?,?)",
		model.InvestmentUnderReview, id, model.InvestmentPending, model.InvestmentRejected)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrConflict
	}
	return nil
}

// AdminApply performs the all-or-nothing admin save: status, notes and
// received income change together in a single UPDATE.
func (r *InvestmentRepo) AdminApply(ctx context.Context, id uint64, status string, notes *string, receivedIncome *decimal.Decimal) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE investments SET status=?, admin_notes=?, received_income=?, updated_at=NOW() WHERE id=?",
		status, notes, receivedIncome, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists uint64
		if err := r.DB.QueryRowContext(ctx, "SELECT id FROM investments WHERE id=? LIMIT 1", id).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		}
	}
	return nil
}
