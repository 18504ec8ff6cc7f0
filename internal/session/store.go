// Package session stores per-conversation dialogue state. The backing
// is pluggable: an in-memory map for a single process, something
// distributed if the bot ever runs replicated.
package session

import "rafflebot/internal/domain"

// Store keeps dialogue sessions keyed by Telegram user id.
type Store interface {
	// Get returns the session for a user, or false if none exists.
	Get(userID int64) (*domain.Session, bool)

	// Put stores or replaces the session for a user.
	Put(userID int64, s *domain.Session)

	// Delete discards the session for a user. Deleting a missing
	// session is a no-op.
	Delete(userID int64)
}
