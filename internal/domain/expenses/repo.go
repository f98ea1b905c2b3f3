package expenses

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// Add appends an ad-hoc expense row.
func (r *Repo) Add(ctx context.Context, e Expense) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO expenses (date, category, amount, note)
		VALUES ($1,$2,$3,$4)
	`, e.Date, e.Category, e.Amount, e.Note)
	return err
}

// FixedCost is one fixed daily charge to apply.
type FixedCost struct {
	Category string
	Amount   float64
}

// ApplyFixedDaily inserts each requested fixed cost for the date unless a
// row with that (date, category) already exists. One transaction;
// repeated calls on the same day change nothing. Returns how many rows
// were actually inserted.
func (r *Repo) ApplyFixedDaily(ctx context.Context, date string, costs []FixedCost) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	inserted := 0
	for _, fc := range costs {
		tag, err := tx.Exec(ctx, `
			INSERT INTO expenses (date, category, amount, note)
			SELECT $1, $2, $3, 'Daily fixed'
			WHERE NOT EXISTS (
				SELECT 1 FROM expenses WHERE date = $1 AND category = $2
			)
		`, date, fc.Category, fc.Amount)
		if err != nil {
			return 0, err
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *Repo) ListByDate(ctx context.Context, date string) ([]Expense, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date, category, amount, note FROM expenses WHERE date = $1
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.Date, &e.Category, &e.Amount, &e.Note); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListByMonth filters by calendar-month prefix, e.g. "2025-09".
func (r *Repo) ListByMonth(ctx context.Context, yearMonth string) ([]Expense, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date, category, amount, note FROM expenses WHERE date LIKE $1 || '%'
	`, yearMonth)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.Date, &e.Category, &e.Amount, &e.Note); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
