package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/wanderlist/internal/database"
	"github.com/jask/wanderlist/internal/destination"
)

// OrderRepo stores the display order of destinations.
type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// Save replaces the stored order with ids, position 0 first.
func (r *OrderRepo) Save(ctx context.Context, ids []destination.ID) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM destination_order`); err != nil {
			return fmt.Errorf("clear order: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO destination_order(destination_id, position, updated_at) VALUES (?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		now := database.Now()
		for pos, id := range ids {
			if _, err := stmt.ExecContext(ctx, int(id), pos, now); err != nil {
				return fmt.Errorf("save position %d: %w", pos, err)
			}
		}
		return nil
	})
}

// Load returns the stored ids by position. An empty result means no order
// has been saved.
func (r *OrderRepo) Load(ctx context.Context) ([]destination.ID, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT destination_id FROM destination_order ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []destination.ID
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, destination.ID(id))
	}
	return out, rows.Err()
}

func (r *OrderRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM destination_order`)
	return err
}
