package testutil

import (
	"time"

	"rafflebot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(id, telegramID int64, fullName string) *domain.User {
	return &domain.User{
		ID:             id,
		TelegramID:     telegramID,
		FullName:       fullName,
		FullNameFromTG: fullName,
		Username:       "tester",
		IsActive:       true,
	}
}

// NewTestLottery creates a test lottery
func NewTestLottery(id int64, name string) *domain.Lottery {
	return &domain.Lottery{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// NewTestTicket creates a test ticket
func NewTestTicket(id int64, number int, lotteryID, userID int64) *domain.Ticket {
	return &domain.Ticket{
		ID:        id,
		Number:    number,
		CreatedAt: time.Now(),
		LotteryID: lotteryID,
		UserID:    userID,
	}
}
