package domain

import "time"

// User represents a registered lottery participant
type User struct {
	ID             int64
	TelegramID     int64
	FullName       string
	FullNameFromTG string
	Username       string
	IsActive       bool
}

// Lottery represents a named prize draw
type Lottery struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

// Ticket represents a user's participation number in one lottery
type Ticket struct {
	ID        int64
	Number    int
	CreatedAt time.Time
	LotteryID int64
	UserID    int64
}

// LotteryEntry is one row of the participant report for a lottery
type LotteryEntry struct {
	TelegramID     int64
	FullName       string
	FullNameFromTG string
	TicketNumber   int
}
