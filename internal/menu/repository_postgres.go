package menu

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// LIST MENU
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, unit_price::float8
		FROM menu_items
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.Name, &it.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// --------------------------------------------------
// UPSERT ITEM
// --------------------------------------------------
func (r *PostgresRepository) Upsert(ctx context.Context, item Item) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (name, unit_price, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		ON CONFLICT (name)
		DO UPDATE SET
			unit_price = EXCLUDED.unit_price,
			updated_at = now()
	`, item.Name, item.UnitPrice)

	return err
}

// --------------------------------------------------
// DELETE ITEM
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, name string) error {
	cmd, err := r.db.Exec(ctx, `
		DELETE FROM menu_items
		WHERE name = $1
	`, name)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}

// --------------------------------------------------
// SEED (ONLY WHEN TABLE IS EMPTY)
// --------------------------------------------------

// SeedIfEmpty inserts items in one transaction when menu_items has no rows.
// It reports whether anything was written.
func (r *PostgresRepository) SeedIfEmpty(ctx context.Context, items []Item) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var count int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM menu_items`).Scan(&count); err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO menu_items (name, unit_price)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING
		`, it.Name, it.UnitPrice); err != nil {
			return false, err
		}
	}

	return true, tx.Commit(ctx)
}
