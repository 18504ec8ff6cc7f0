package postgres

import (
	"database/sql"
	"fmt"

	"rafflebot/internal/domain"
)

// firstTicketNumber is the number issued to the first participant of a lottery
const firstTicketNumber = 100

// TicketRepo implements repository.TicketRepository
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo creates a new ticket repository
func NewTicketRepo(db *sql.DB) *TicketRepo {
	return &TicketRepo{db: db}
}

// GetByUserAndLottery returns the user's ticket in the given lottery
func (r *TicketRepo) GetByUserAndLottery(userID, lotteryID int64) (*domain.Ticket, error) {
	query := `
		SELECT id, number, created_at, lottery_id, user_id
		FROM tickets
		WHERE user_id = $1 AND lottery_id = $2
	`

	var t domain.Ticket
	err := r.db.QueryRow(query, userID, lotteryID).Scan(
		&t.ID,
		&t.Number,
		&t.CreatedAt,
		&t.LotteryID,
		&t.UserID,
	)

	if err == sql.ErrNoRows {
		return nil, domain.ErrTicketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get ticket for user %d in lottery %d: %w", userID, lotteryID, err)
	}

	return &t, nil
}

// Create allocates the next ticket number and inserts the ticket in one
// transaction. The lottery row is locked first, so concurrent claims on
// the same lottery serialize and numbering stays gapless. The
// UNIQUE(user_id, lottery_id) constraint is still the final arbiter for
// duplicate claims by the same user.
func (r *TicketRepo) Create(userID, lotteryID int64) (*domain.Ticket, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin ticket tx: %w", err)
	}
	defer tx.Rollback()

	var lockedID int64
	lockQuery := `SELECT id FROM lotteries WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRow(lockQuery, lotteryID).Scan(&lockedID); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrLotteryNotFound
		}
		return nil, fmt.Errorf("lock lottery %d: %w", lotteryID, err)
	}

	var next int
	nextQuery := `SELECT COALESCE(MAX(number), $2 - 1) + 1 FROM tickets WHERE lottery_id = $1`
	if err := tx.QueryRow(nextQuery, lotteryID, firstTicketNumber).Scan(&next); err != nil {
		return nil, fmt.Errorf("next ticket number for lottery %d: %w", lotteryID, err)
	}

	insertQuery := `
		INSERT INTO tickets (number, lottery_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	t := domain.Ticket{
		Number:    next,
		LotteryID: lotteryID,
		UserID:    userID,
	}
	err = tx.QueryRow(insertQuery, next, lotteryID, userID).Scan(&t.ID, &t.CreatedAt)
	if isUniqueViolation(err) {
		return nil, domain.ErrTicketExists
	}
	if err != nil {
		return nil, fmt.Errorf("insert ticket for user %d in lottery %d: %w", userID, lotteryID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit ticket for user %d in lottery %d: %w", userID, lotteryID, err)
	}

	return &t, nil
}

// ListByLottery returns the participant report rows for a lottery
func (r *TicketRepo) ListByLottery(lotteryID int64) ([]domain.LotteryEntry, error) {
	query := `
		SELECT u.telegram_id, u.full_name, u.full_name_from_tg, t.number
		FROM tickets t
		JOIN users u ON u.id = t.user_id
		WHERE t.lottery_id = $1
		ORDER BY t.number
	`

	rows, err := r.db.Query(query, lotteryID)
	if err != nil {
		return nil, fmt.Errorf("list tickets for lottery %d: %w", lotteryID, err)
	}
	defer rows.Close()

	var entries []domain.LotteryEntry
	for rows.Next() {
		var e domain.LotteryEntry
		if err := rows.Scan(&e.TelegramID, &e.FullName, &e.FullNameFromTG, &e.TicketNumber); err != nil {
			return nil, fmt.Errorf("scan ticket row for lottery %d: %w", lotteryID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tickets for lottery %d: %w", lotteryID, err)
	}

	return entries, nil
}
