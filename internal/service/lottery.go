package service

import (
	"fmt"

	"rafflebot/internal/domain"
	"rafflebot/internal/repository"

	"go.uber.org/zap"
)

// LotteryService handles administrative lottery operations
type LotteryService struct {
	lotteryRepo repository.LotteryRepository
	ticketRepo  repository.TicketRepository
	logger      *zap.Logger
}

// NewLotteryService creates a new lottery service
func NewLotteryService(
	lotteryRepo repository.LotteryRepository,
	ticketRepo repository.TicketRepository,
	logger *zap.Logger,
) *LotteryService {
	return &LotteryService{
		lotteryRepo: lotteryRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

// Create adds a new lottery to the catalog. Returns
// domain.ErrLotteryExists if the name is already taken.
func (s *LotteryService) Create(name, description string) (*domain.Lottery, error) {
	if name == "" {
		return nil, fmt.Errorf("lottery name cannot be empty")
	}

	lottery, err := s.lotteryRepo.Create(name, description)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Lottery created",
		zap.String("lottery", lottery.Name),
		zap.Int64("lottery_id", lottery.ID),
	)

	return lottery, nil
}

// Report returns the participant rows for the named lottery
func (s *LotteryService) Report(name string) ([]domain.LotteryEntry, error) {
	lottery, err := s.lotteryRepo.GetByName(name)
	if err != nil {
		return nil, fmt.Errorf("resolve lottery %q: %w", name, err)
	}

	return s.ticketRepo.ListByLottery(lottery.ID)
}
