package inventory

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// AddStock records a purchase: the item row is created or updated with the
// recomputed weighted-average cost, and the spend is logged as a Bazar
// expense for the given date. One transaction, all or nothing.
func (r *Repo) AddStock(ctx context.Context, name string, qty float64, unit string, cost float64, date string) (*Item, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		SELECT item, quantity, unit, total_cost, cost_per_unit
		FROM inventory WHERE item = $1
		FOR UPDATE
	`, name)

	var it Item
	err = row.Scan(&it.Name, &it.Quantity, &it.Unit, &it.TotalCost, &it.CostPerUnit)
	switch err {
	case pgx.ErrNoRows:
		it = Item{Name: name, Unit: unit}
		if err := it.Restock(qty, cost); err != nil {
			return nil, err
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO inventory (item, quantity, unit, total_cost, cost_per_unit)
			VALUES ($1,$2,$3,$4,$5)
		`, it.Name, it.Quantity, it.Unit, it.TotalCost, it.CostPerUnit); err != nil {
			return nil, err
		}
	case nil:
		// Unit stays as first stocked; the operator enters follow-up
		// purchases in the same unit.
		if err := it.Restock(qty, cost); err != nil {
			return nil, err
		}
		if _, err := tx.Exec(ctx, `
			UPDATE inventory
			SET quantity=$2, total_cost=$3, cost_per_unit=$4
			WHERE item=$1
		`, it.Name, it.Quantity, it.TotalCost, it.CostPerUnit); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	// Every purchase is also a Bazar expense on the day it happened.
	if _, err := tx.Exec(ctx, `
		INSERT INTO expenses (date, category, amount, note)
		VALUES ($1,'Bazar',$2,$3)
	`, date, cost, name); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &it, nil
}

// CostPerUnit returns the current weighted-average cost for an item.
// ok=false means the item was never stocked; costing treats that as a
// zero contribution.
func (r *Repo) CostPerUnit(ctx context.Context, name string) (float64, bool, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT cost_per_unit FROM inventory WHERE item = $1
	`, name)
	var cpu float64
	if err := row.Scan(&cpu); err != nil {
		if err == pgx.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, err
	}
	return cpu, true, nil
}

func (r *Repo) Get(ctx context.Context, name string) (*Item, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT item, quantity, unit, total_cost, cost_per_unit
		FROM inventory WHERE item = $1
	`, name)
	var it Item
	if err := row.Scan(&it.Name, &it.Quantity, &it.Unit, &it.TotalCost, &it.CostPerUnit); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

// List returns the whole ledger, negative quantities included.
func (r *Repo) List(ctx context.Context) ([]Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT item, quantity, unit, total_cost, cost_per_unit
		FROM inventory
		ORDER BY item
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.Name, &it.Quantity, &it.Unit, &it.TotalCost, &it.CostPerUnit); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repo) Delete(ctx context.Context, name string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM inventory WHERE item = $1`, name)
	return err
}
