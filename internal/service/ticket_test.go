package service

import (
	"errors"
	"testing"

	"rafflebot/internal/domain"
	"rafflebot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func newTicketService(
	users *testutil.MockUserRepository,
	lotteries *testutil.MockLotteryRepository,
	tickets *testutil.MockTicketRepository,
) *TicketService {
	return NewTicketService(users, lotteries, tickets, testutil.NewTestLogger())
}

func TestTicketService_IssueOrGet_LotteryNotFound(t *testing.T) {
	users := new(testutil.MockUserRepository)
	lotteries := new(testutil.MockLotteryRepository)
	tickets := new(testutil.MockTicketRepository)

	lotteries.On("GetByName", "missing").Return(nil, domain.ErrLotteryNotFound)

	svc := newTicketService(users, lotteries, tickets)

	_, err := svc.IssueOrGet(123, "missing")

	assert.ErrorIs(t, err, domain.ErrLotteryNotFound)
	users.AssertNotCalled(t, "GetByTelegramID", int64(123))
}

func TestTicketService_IssueOrGet_UserNotRegistered(t *testing.T) {
	users := new(testutil.MockUserRepository)
	lotteries := new(testutil.MockLotteryRepository)
	tickets := new(testutil.MockTicketRepository)

	lotteries.On("GetByName", "Projector2024").Return(testutil.NewTestLottery(3, "Projector2024"), nil)
	users.On("GetByTelegramID", int64(123)).Return(nil, domain.ErrUserNotFound)

	svc := newTicketService(users, lotteries, tickets)

	_, err := svc.IssueOrGet(123, "Projector2024")

	assert.ErrorIs(t, err, domain.ErrUserNotRegistered)
	tickets.AssertNotCalled(t, "Create", int64(0), int64(3))
}

func TestTicketService_IssueOrGet_FirstClaim(t *testing.T) {
	users := new(testutil.MockUserRepository)
	lotteries := new(testutil.MockLotteryRepository)
	tickets := new(testutil.MockTicketRepository)

	lotteries.On("GetByName", "Projector2024").Return(testutil.NewTestLottery(3, "Projector2024"), nil)
	users.On("GetByTelegramID", int64(123)).Return(testutil.NewTestUser(7, 123, "Иванов Иван Иванович"), nil)
	tickets.On("GetByUserAndLottery", int64(7), int64(3)).Return(nil, domain.ErrTicketNotFound)
	tickets.On("Create", int64(7), int64(3)).Return(testutil.NewTestTicket(1, 100, 3, 7), nil)

	svc := newTicketService(users, lotteries, tickets)

	number, err := svc.IssueOrGet(123, "Projector2024")

	assert.NoError(t, err)
	assert.Equal(t, 100, number)
	tickets.AssertExpectations(t)
}

func TestTicketService_IssueOrGet_RepeatedClaimIsIdempotent(t *testing.T) {
	users := new(testutil.MockUserRepository)
	lotteries := new(testutil.MockLotteryRepository)
	tickets := new(testutil.MockTicketRepository)

	lotteries.On("GetByName", "Projector2024").Return(testutil.NewTestLottery(3, "Projector2024"), nil)
	users.On("GetByTelegramID", int64(123)).Return(testutil.NewTestUser(7, 123, "Иванов Иван Иванович"), nil)
	tickets.On("GetByUserAndLottery", int64(7), int64(3)).Return(testutil.NewTestTicket(1, 101, 3, 7), nil)

	svc := newTicketService(users, lotteries, tickets)

	first, err := svc.IssueOrGet(123, "Projector2024")
	assert.NoError(t, err)

	second, err := svc.IssueOrGet(123, "Projector2024")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 101, first)
	tickets.AssertNotCalled(t, "Create", int64(7), int64(3))
}

func TestTicketService_IssueOrGet_LostInsertRace(t *testing.T) {
	users := new(testutil.MockUserRepository)
	lotteries := new(testutil.MockLotteryRepository)
	tickets := new(testutil.MockTicketRepository)

	lotteries.On("GetByName", "Projector2024").Return(testutil.NewTestLottery(3, "Projector2024"), nil)
	users.On("GetByTelegramID", int64(123)).Return(testutil.NewTestUser(7, 123, "Иванов Иван Иванович"), nil)

	// No ticket at first glance, but the insert loses against a
	// concurrent claim: the constraint wins and the number is re-read.
	tickets.On("GetByUserAndLottery", int64(7), int64(3)).Return(nil, domain.ErrTicketNotFound).Once()
	tickets.On("Create", int64(7), int64(3)).Return(nil, domain.ErrTicketExists)
	tickets.On("GetByUserAndLottery", int64(7), int64(3)).Return(testutil.NewTestTicket(1, 105, 3, 7), nil)

	svc := newTicketService(users, lotteries, tickets)

	number, err := svc.IssueOrGet(123, "Projector2024")

	assert.NoError(t, err)
	assert.Equal(t, 105, number)
	tickets.AssertExpectations(t)
}

func TestTicketService_IssueOrGet_StorageFailure(t *testing.T) {
	users := new(testutil.MockUserRepository)
	lotteries := new(testutil.MockLotteryRepository)
	tickets := new(testutil.MockTicketRepository)

	lotteries.On("GetByName", "Projector2024").Return(testutil.NewTestLottery(3, "Projector2024"), nil)
	users.On("GetByTelegramID", int64(123)).Return(testutil.NewTestUser(7, 123, "Иванов Иван Иванович"), nil)
	tickets.On("GetByUserAndLottery", int64(7), int64(3)).Return(nil, errors.New("connection reset"))

	svc := newTicketService(users, lotteries, tickets)

	_, err := svc.IssueOrGet(123, "Projector2024")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTicketNotFound)
}
