package service

import (
	"errors"
	"fmt"

	"rafflebot/internal/domain"
	"rafflebot/internal/repository"

	"go.uber.org/zap"
)

// TicketService issues participation numbers, composing the identity
// store, the lottery catalog and the ticket ledger
type TicketService struct {
	userRepo    repository.UserRepository
	lotteryRepo repository.LotteryRepository
	ticketRepo  repository.TicketRepository
	logger      *zap.Logger
}

// NewTicketService creates a new ticket service
func NewTicketService(
	userRepo repository.UserRepository,
	lotteryRepo repository.LotteryRepository,
	ticketRepo repository.TicketRepository,
	logger *zap.Logger,
) *TicketService {
	return &TicketService{
		userRepo:    userRepo,
		lotteryRepo: lotteryRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

// IssueOrGet returns the user's ticket number in the named lottery,
// allocating a new one on first claim. Repeated claims return the same
// number. Fails with domain.ErrLotteryNotFound for an unknown lottery
// and domain.ErrUserNotRegistered when registration is incomplete.
func (s *TicketService) IssueOrGet(telegramID int64, lotteryName string) (int, error) {
	lottery, err := s.lotteryRepo.GetByName(lotteryName)
	if err != nil {
		return 0, fmt.Errorf("resolve lottery %q: %w", lotteryName, err)
	}

	user, err := s.userRepo.GetByTelegramID(telegramID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return 0, domain.ErrUserNotRegistered
	}
	if err != nil {
		return 0, fmt.Errorf("resolve user %d: %w", telegramID, err)
	}

	existing, err := s.ticketRepo.GetByUserAndLottery(user.ID, lottery.ID)
	if err == nil {
		return existing.Number, nil
	}
	if !errors.Is(err, domain.ErrTicketNotFound) {
		return 0, fmt.Errorf("check ticket for user %d in lottery %q: %w", telegramID, lotteryName, err)
	}

	ticket, err := s.ticketRepo.Create(user.ID, lottery.ID)
	if errors.Is(err, domain.ErrTicketExists) {
		// Lost a race against another claim by the same user; the
		// constraint decided, return the winner's number.
		existing, err = s.ticketRepo.GetByUserAndLottery(user.ID, lottery.ID)
		if err != nil {
			return 0, fmt.Errorf("re-read ticket for user %d in lottery %q: %w", telegramID, lotteryName, err)
		}
		return existing.Number, nil
	}
	if err != nil {
		return 0, fmt.Errorf("issue ticket for user %d in lottery %q: %w", telegramID, lotteryName, err)
	}

	s.logger.Info("Ticket issued",
		zap.Int64("telegram_id", telegramID),
		zap.String("lottery", lotteryName),
		zap.Int("number", ticket.Number),
	)

	return ticket.Number, nil
}
