package handler

import (
	"strings"
	"unicode"

	"rafflebot/internal/dialog"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// buttonHandler builds a handler forwarding one button token to the engine
func (h *Handler) buttonHandler(token string) tele.HandlerFunc {
	return func(c tele.Context) error {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}

		rep, err := h.engine.Handle(profileFrom(c), dialog.Event{
			Kind:  dialog.EventButton,
			Token: token,
		})
		return h.dispatch(c, rep, err)
	}
}

// handleCallback catches callbacks whose Unique did not match a
// registered button, recovering the token from the raw data
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	token := callback.Unique
	if token == "" {
		token = data
	}

	h.logger.Info("Processing unmatched callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch token {
	case dialog.TokenCheckMembership, dialog.TokenConsentYes, dialog.TokenConsentNo, dialog.TokenClaimTicket:
		return h.buttonHandler(token)(c)
	}

	// Unknown token: acknowledge so the client stops spinning
	return c.Respond()
}
