package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/wanderlist/internal/database"
	"github.com/jask/wanderlist/internal/destination"
)

// MoveRepo journals reorders.
type MoveRepo struct{ db *sql.DB }

func NewMoveRepo(db *sql.DB) *MoveRepo { return &MoveRepo{db: db} }

// Record stores m, filling in ID and CreatedAt when unset.
func (r *MoveRepo) Record(ctx context.Context, m Move) (Move, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = database.Now()
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO moves(id, destination_id, target_id, from_index, to_index, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`, m.ID, int(m.DestinationID), int(m.TargetID), m.FromIndex, m.ToIndex, m.CreatedAt)
	if err != nil {
		return Move{}, err
	}
	return m, nil
}

// Recent returns up to limit moves, newest first.
func (r *MoveRepo) Recent(ctx context.Context, limit int) ([]Move, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, destination_id, target_id, from_index, to_index, created_at
	FROM moves ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Move
	for rows.Next() {
		var m Move
		var src, dst int
		if err := rows.Scan(&m.ID, &src, &dst, &m.FromIndex, &m.ToIndex, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.DestinationID, m.TargetID = destination.ID(src), destination.ID(dst)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MoveRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM moves`)
	return err
}
