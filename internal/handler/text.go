package handler

import (
	"strings"

	"rafflebot/internal/dialog"

	tele "gopkg.in/telebot.v3"
)

// handleText handles all free-text messages based on dialogue state
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	rep, err := h.engine.Handle(profileFrom(c), dialog.Event{
		Kind: dialog.EventText,
		Text: text,
	})
	return h.dispatch(c, rep, err)
}
