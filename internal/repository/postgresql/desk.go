package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/Idowu-David/Nithub-Booking-System/internal/db"
	"github.com/Idowu-David/Nithub-Booking-System/internal/repository"
)

type DeskRepo struct {
	db db.DB
}

func NewDeskRepo(db db.DB) *DeskRepo {
	return &DeskRepo{db: db}
}

func (r *DeskRepo) GetActive(ctx context.Context) ([]*repository.Desk, error) {
	var desks []*repository.Desk
	err := r.db.Select(ctx, &desks,
		"SELECT id, label, is_active FROM desks WHERE is_active = TRUE ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to get active desks: %w", err)
	}
	return desks, nil
}

func (r *DeskRepo) GetByID(ctx context.Context, id int64) (*repository.Desk, error) {
	var desk repository.Desk
	err := r.db.Get(ctx, &desk, "SELECT id, label, is_active FROM desks WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &desk, nil
}

// LockActiveTx locks the desk row for the rest of the transaction. Every
// writer for the same desk serializes on this lock, so concurrent
// overlapping requests cannot both pass the conflict re-checks.
func (r *DeskRepo) LockActiveTx(ctx context.Context, tx db.Tx, id int64) (*repository.Desk, error) {
	var desk repository.Desk
	err := tx.Get(ctx, &desk,
		"SELECT id, label, is_active FROM desks WHERE id = $1 AND is_active = TRUE FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &desk, nil
}
