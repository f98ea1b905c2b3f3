package sales

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// ApplySale runs every inventory deduction and the sale insert in one
// transaction. Deductions are plain subtractions with no floor; an
// ingredient missing from inventory is simply not updated.
func (r *Repo) ApplySale(ctx context.Context, s Sale, deds []Deduction) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, d := range deds {
		// Deduction amounts are in the base scale; the item keeps its
		// stored unit, so divide by the same factor units.Factor gives
		// (kg and litre are the only non-1 ones).
		if _, err := tx.Exec(ctx, `
			UPDATE inventory
			SET quantity = quantity - ($1 / CASE unit
				WHEN 'kg' THEN 1000.0
				WHEN 'litre' THEN 1000.0
				ELSE 1.0
			END)
			WHERE item = $2
		`, d.Amount, d.Ingredient); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO sales (date, dish, qty, total)
		VALUES ($1,$2,$3,$4)
	`, s.Date, s.Dish, s.Qty, s.Total); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *Repo) ListByDate(ctx context.Context, date string) ([]Sale, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date, dish, qty, total FROM sales WHERE date = $1
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Sale
	for rows.Next() {
		var s Sale
		if err := rows.Scan(&s.Date, &s.Dish, &s.Qty, &s.Total); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListByMonth filters by calendar-month prefix, e.g. "2025-09".
func (r *Repo) ListByMonth(ctx context.Context, yearMonth string) ([]Sale, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date, dish, qty, total FROM sales WHERE date LIKE $1 || '%'
	`, yearMonth)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Sale
	for rows.Next() {
		var s Sale
		if err := rows.Scan(&s.Date, &s.Dish, &s.Qty, &s.Total); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
