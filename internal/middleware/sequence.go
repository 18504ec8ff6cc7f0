package middleware

import (
	"sync"

	tele "gopkg.in/telebot.v3"
)

// Sequencer serializes update handling per sender. Later dialogue
// states depend on earlier ones, so two updates from one user must
// never run their handlers concurrently; updates from distinct users
// stay fully parallel.
type Sequencer struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewSequencer creates an empty sequencer
func NewSequencer() *Sequencer {
	return &Sequencer{locks: make(map[int64]*sync.Mutex)}
}

// lock returns the mutex owned by the given sender, creating it on
// first use
func (s *Sequencer) lock(userID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// Middleware returns the telebot middleware enforcing per-sender order
func (s *Sequencer) Middleware() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			l := s.lock(sender.ID)
			l.Lock()
			defer l.Unlock()

			return next(c)
		}
	}
}
