package recipes

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Spok95/krevos/internal/domain/units"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// Add normalizes amount/unit into the base scale and appends a new entry.
// Duplicate ingredient rows are allowed and accumulate.
func (r *Repo) Add(ctx context.Context, dish, ingredient string, amount float64, unit string) (*Entry, error) {
	base, kind := units.ToBase(amount, unit)

	row := r.pool.QueryRow(ctx, `
		INSERT INTO recipes (dish, ingredient, amount, unit)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`, dish, ingredient, base, string(kind))

	e := Entry{Dish: dish, Ingredient: ingredient, Amount: base, Unit: kind}
	if err := row.Scan(&e.ID); err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete removes an entry by id; deleting an unknown id is a no-op.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	return err
}

func (r *Repo) ListByDish(ctx context.Context, dish string) ([]Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, dish, ingredient, amount, unit
		FROM recipes WHERE dish = $1
	`, dish)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var kind string
		if err := rows.Scan(&e.ID, &e.Dish, &e.Ingredient, &e.Amount, &kind); err != nil {
			return nil, err
		}
		e.Unit = units.Base(kind)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repo) List(ctx context.Context) ([]Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, dish, ingredient, amount, unit
		FROM recipes
		ORDER BY dish, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var kind string
		if err := rows.Scan(&e.ID, &e.Dish, &e.Ingredient, &e.Amount, &kind); err != nil {
			return nil, err
		}
		e.Unit = units.Base(kind)
		out = append(out, e)
	}
	return out, rows.Err()
}
