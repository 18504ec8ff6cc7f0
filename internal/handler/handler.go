package handler

import (
	"rafflebot/internal/dialog"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgInternalError = "Произошла ошибка. Попробуйте позже."

// Handler adapts Telegram updates to dialogue events and dialogue
// replies back to Telegram messages
type Handler struct {
	bot         *tele.Bot
	engine      *dialog.Engine
	channelLink string
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, engine *dialog.Engine, channelLink string, logger *zap.Logger) *Handler {
	return &Handler{
		bot:         bot,
		engine:      engine,
		channelLink: channelLink,
		logger:      logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)

	h.bot.Handle(tele.OnText, h.handleText)

	h.bot.Handle(&btnCheckMembership, h.buttonHandler(dialog.TokenCheckMembership))
	h.bot.Handle(&btnConsentYes, h.buttonHandler(dialog.TokenConsentYes))
	h.bot.Handle(&btnConsentNo, h.buttonHandler(dialog.TokenConsentNo))
	h.bot.Handle(&btnClaimTicket, h.buttonHandler(dialog.TokenClaimTicket))

	// Fallback for callbacks arriving without a recognized Unique
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Inline keyboard buttons
var (
	btnCheckMembership = tele.Btn{
		Unique: dialog.TokenCheckMembership,
		Text:   "Проверка подписки",
	}
	btnConsentYes = tele.Btn{
		Unique: dialog.TokenConsentYes,
		Text:   "Да",
	}
	btnConsentNo = tele.Btn{
		Unique: dialog.TokenConsentNo,
		Text:   "Нет",
	}
	btnClaimTicket = tele.Btn{
		Unique: dialog.TokenClaimTicket,
		Text:   "Получить номер",
	}
)

// profileFrom extracts the sender identity for the dialogue
func profileFrom(c tele.Context) dialog.Profile {
	sender := c.Sender()
	return dialog.Profile{
		TelegramID: sender.ID,
		FirstName:  sender.FirstName,
		LastName:   sender.LastName,
		Username:   sender.Username,
	}
}

// dispatch renders a dialogue outcome. Unexpected errors are logged
// and answered with the generic failure text unless the engine already
// supplied a corrective prompt.
func (h *Handler) dispatch(c tele.Context, rep dialog.Reply, err error) error {
	if err != nil {
		h.logger.Error("Dialogue failed",
			zap.Error(err),
			zap.Int64("user_id", c.Sender().ID),
		)
		if rep.Text == "" {
			return c.Send(msgInternalError)
		}
	}

	markup := h.markup(rep.Buttons)
	if markup == nil {
		return c.Send(rep.Text)
	}
	return c.Send(rep.Text, markup)
}

// markup renders button tokens into an inline keyboard. The yes/no
// pair shares a row, everything else gets its own.
func (h *Handler) markup(tokens []string) *tele.ReplyMarkup {
	if len(tokens) == 0 {
		return nil
	}

	menu := &tele.ReplyMarkup{}
	var rows []tele.Row
	var consentRow tele.Row

	for _, token := range tokens {
		switch token {
		case dialog.TokenCheckMembership:
			rows = append(rows, menu.Row(btnCheckMembership))
		case dialog.TokenConsentYes:
			consentRow = append(consentRow, btnConsentYes)
		case dialog.TokenConsentNo:
			consentRow = append(consentRow, btnConsentNo)
		case dialog.TokenClaimTicket:
			rows = append(rows, menu.Row(btnClaimTicket))
		case dialog.TokenJoinChannel:
			rows = append(rows, menu.Row(menu.URL("Подписаться на канал", h.channelLink)))
		default:
			h.logger.Warn("Unknown button token", zap.String("token", token))
		}
	}

	if len(consentRow) > 0 {
		// Consent goes on top of any retry buttons
		rows = append([]tele.Row{consentRow}, rows...)
	}

	menu.Inline(rows...)
	return menu
}
