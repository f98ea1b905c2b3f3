package menu

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// Save inserts the dish or updates its price when it already exists.
func (r *Repo) Save(ctx context.Context, dish string, price float64) (*Item, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO menu (dish, price) VALUES ($1,$2)
		ON CONFLICT (dish) DO UPDATE SET price = EXCLUDED.price
		RETURNING dish, price
	`, dish, price)
	var it Item
	if err := row.Scan(&it.Dish, &it.Price); err != nil {
		return nil, err
	}
	return &it, nil
}

// Price returns the selling price; ok=false for a dish not on the menu.
func (r *Repo) Price(ctx context.Context, dish string) (float64, bool, error) {
	row := r.pool.QueryRow(ctx, `SELECT price FROM menu WHERE dish = $1`, dish)
	var p float64
	if err := row.Scan(&p); err != nil {
		if err == pgx.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, err
	}
	return p, true, nil
}

func (r *Repo) List(ctx context.Context) ([]Item, error) {
	rows, err := r.pool.Query(ctx, `SELECT dish, price FROM menu ORDER BY dish`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.Dish, &it.Price); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repo) Delete(ctx context.Context, dish string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM menu WHERE dish = $1`, dish)
	return err
}
