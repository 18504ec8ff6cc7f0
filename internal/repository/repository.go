package repository

import (
	"rafflebot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	// GetByTelegramID returns the user or domain.ErrUserNotFound.
	GetByTelegramID(telegramID int64) (*domain.User, error)

	// Exists reports whether a user row exists for the Telegram id.
	Exists(telegramID int64) (bool, error)

	// Save inserts the user if no row with the same Telegram id
	// exists yet. Saving an already-known user is a no-op.
	Save(user *domain.User) error

	// UpdateActivation flips the active flag and overwrites the
	// display name. Returns domain.ErrUserNotFound for unknown users.
	UpdateActivation(telegramID int64, fullName string, active bool) error
}

// LotteryRepository defines lottery catalog operations
type LotteryRepository interface {
	// GetByName returns the lottery or domain.ErrLotteryNotFound.
	GetByName(name string) (*domain.Lottery, error)

	// Create inserts a new lottery. Returns domain.ErrLotteryExists
	// if the name is already taken (constraint-level, not pre-checked).
	Create(name, description string) (*domain.Lottery, error)
}

// TicketRepository defines ticket ledger operations
type TicketRepository interface {
	// GetByUserAndLottery returns the user's ticket in the lottery,
	// or domain.ErrTicketNotFound.
	GetByUserAndLottery(userID, lotteryID int64) (*domain.Ticket, error)

	// Create allocates the next ticket number for the lottery and
	// inserts the ticket in one transaction. Returns
	// domain.ErrTicketExists if the (user, lottery) pair already
	// holds a ticket.
	Create(userID, lotteryID int64) (*domain.Ticket, error)

	// ListByLottery returns the participant report rows for a lottery,
	// ordered by ticket number.
	ListByLottery(lotteryID int64) ([]domain.LotteryEntry, error)
}
