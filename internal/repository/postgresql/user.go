package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/Idowu-David/Nithub-Booking-System/internal/db"
	"github.com/Idowu-David/Nithub-Booking-System/internal/repository"
)

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) CreateUser(ctx context.Context, username, email, password string) (int64, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.db.ExecQueryRow(ctx,
		"INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id",
		username, email, string(hashedPassword)).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// LockTx locks the user row for the rest of the transaction. Booking
// writers for the same user serialize on this lock regardless of which
// desk they target, so the one-active-booking guard always reads committed
// state.
func (r *UserRepo) LockTx(ctx context.Context, tx db.Tx, id int64) error {
	var userID int64
	err := tx.ExecQueryRow(ctx, "SELECT id FROM users WHERE id = $1 FOR UPDATE", id).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrObjectNotFound
		}
		return err
	}
	return nil
}

func (r *UserRepo) ValidateUser(ctx context.Context, email, password string) (int64, error) {
	var (
		id             int64
		hashedPassword string
	)
	err := r.db.ExecQueryRow(ctx,
		"SELECT id, password_hash FROM users WHERE email = $1", email).Scan(&id, &hashedPassword)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errors.New("user not found")
		}
		return 0, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return 0, errors.New("invalid credentials")
	}
	return id, nil
}
