package postgres

import (
	"database/sql"
	"fmt"

	"rafflebot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetByTelegramID returns the user keyed by Telegram id
func (r *UserRepo) GetByTelegramID(telegramID int64) (*domain.User, error) {
	query := `
		SELECT id, telegram_id, full_name, full_name_from_tg, username, is_active
		FROM users
		WHERE telegram_id = $1
	`

	var u domain.User
	err := r.db.QueryRow(query, telegramID).Scan(
		&u.ID,
		&u.TelegramID,
		&u.FullName,
		&u.FullNameFromTG,
		&u.Username,
		&u.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by telegram id %d: %w", telegramID, err)
	}

	return &u, nil
}

// Exists checks if a user row exists for the Telegram id
func (r *UserRepo) Exists(telegramID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE telegram_id = $1)`

	if err := r.db.QueryRow(query, telegramID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check user %d exists: %w", telegramID, err)
	}

	return exists, nil
}

// Save inserts the user if absent, keyed by Telegram id
func (r *UserRepo) Save(user *domain.User) error {
	query := `
		INSERT INTO users (telegram_id, full_name, full_name_from_tg, username, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (telegram_id) DO NOTHING
	`

	_, err := r.db.Exec(query, user.TelegramID, user.FullName, user.FullNameFromTG, user.Username)
	if err != nil {
		return fmt.Errorf("save user %d: %w", user.TelegramID, err)
	}

	return nil
}

// UpdateActivation flips the active flag and overwrites the display name
func (r *UserRepo) UpdateActivation(telegramID int64, fullName string, active bool) error {
	query := `
		UPDATE users
		SET full_name = $2, is_active = $3
		WHERE telegram_id = $1
	`

	res, err := r.db.Exec(query, telegramID, fullName, active)
	if err != nil {
		return fmt.Errorf("update activation for user %d: %w", telegramID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update activation for user %d: %w", telegramID, err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}
