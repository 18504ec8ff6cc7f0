package postgres

import (
	"database/sql"
	"fmt"

	"rafflebot/internal/domain"
)

// LotteryRepo implements repository.LotteryRepository
type LotteryRepo struct {
	db *sql.DB
}

// NewLotteryRepo creates a new lottery repository
func NewLotteryRepo(db *sql.DB) *LotteryRepo {
	return &LotteryRepo{db: db}
}

// GetByName returns the lottery with the given name
func (r *LotteryRepo) GetByName(name string) (*domain.Lottery, error) {
	query := `
		SELECT id, name, description, created_at
		FROM lotteries
		WHERE name = $1
	`

	var l domain.Lottery
	err := r.db.QueryRow(query, name).Scan(&l.ID, &l.Name, &l.Description, &l.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, domain.ErrLotteryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get lottery %q: %w", name, err)
	}

	return &l, nil
}

// Create inserts a new lottery, relying on the name uniqueness
// constraint rather than a pre-check
func (r *LotteryRepo) Create(name, description string) (*domain.Lottery, error) {
	query := `
		INSERT INTO lotteries (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at
	`

	var l domain.Lottery
	err := r.db.QueryRow(query, name, description).Scan(&l.ID, &l.Name, &l.Description, &l.CreatedAt)

	if isUniqueViolation(err) {
		return nil, domain.ErrLotteryExists
	}
	if err != nil {
		return nil, fmt.Errorf("create lottery %q: %w", name, err)
	}

	return &l, nil
}
