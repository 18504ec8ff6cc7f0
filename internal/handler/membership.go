package handler

import (
	"fmt"

	tele "gopkg.in/telebot.v3"
)

// ChannelMembership checks channel subscription through the Telegram
// API. It implements dialog.MembershipChecker.
type ChannelMembership struct {
	bot    *tele.Bot
	chatID int64
}

// NewChannelMembership creates a membership checker for one channel
func NewChannelMembership(bot *tele.Bot, chatID int64) *ChannelMembership {
	return &ChannelMembership{bot: bot, chatID: chatID}
}

// IsMember reports whether the user is subscribed to the channel. A
// transport failure is returned as an error, never as "not a member".
func (m *ChannelMembership) IsMember(userID int64) (bool, error) {
	member, err := m.bot.ChatMemberOf(&tele.Chat{ID: m.chatID}, &tele.User{ID: userID})
	if err != nil {
		return false, fmt.Errorf("chat member of %d: %w", m.chatID, err)
	}

	switch member.Role {
	case tele.Creator, tele.Administrator, tele.Member:
		return true, nil
	default:
		return false, nil
	}
}
