package domain

import "errors"

// Sentinel errors returned by repositories and services. Callers
// branch with errors.Is; repositories wrap driver errors with %w so
// the underlying cause stays inspectable.
var (
	// ErrUserNotFound means no user row exists for the Telegram id.
	ErrUserNotFound = errors.New("user not found")

	// ErrLotteryNotFound means no lottery with the given name exists.
	ErrLotteryNotFound = errors.New("lottery not found")

	// ErrLotteryExists means a lottery with the same name already exists.
	ErrLotteryExists = errors.New("lottery already exists")

	// ErrTicketNotFound means the (user, lottery) pair holds no ticket.
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrTicketExists means the (user, lottery) pair already holds a ticket.
	// Raised by the UNIQUE(user_id, lottery_id) constraint.
	ErrTicketExists = errors.New("ticket already issued")

	// ErrUserNotRegistered means a ticket was claimed before the
	// registration dialogue persisted the user.
	ErrUserNotRegistered = errors.New("user not registered")

	// ErrMembershipCheck means the channel membership lookup itself
	// failed. Never to be conflated with a definitive non-member answer.
	ErrMembershipCheck = errors.New("membership check failed")
)
