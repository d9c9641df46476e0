package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/wardrobe-notifier/internal/domain/contract"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
)

type userRepository struct {
	db dbConn
}

func newUserRepo(db dbConn) contract.UserRepo {
	return &userRepository{db: db}
}

// Upsert inserts the user or refreshes its timezone.
func (r *userRepository) Upsert(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, timezone, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET timezone = excluded.timezone
	`

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Timezone, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	user := &entity.User{}
	query := `
		SELECT id, timezone, created_at
		FROM users
		WHERE id = ?
	`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Timezone,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
