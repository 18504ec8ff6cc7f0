package handler

import (
	"rafflebot/internal/dialog"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User started bot",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("username", c.Sender().Username),
	)

	rep, err := h.engine.Handle(profileFrom(c), dialog.Event{Kind: dialog.EventStart})
	return h.dispatch(c, rep, err)
}
