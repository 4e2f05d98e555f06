package handler

import (
	tele "gopkg.in/telebot.v3"
)

// TelegramNotifier implements service.Notifier over the bot API
type TelegramNotifier struct {
	bot *tele.Bot
}

// NewTelegramNotifier creates a notifier sending through bot
func NewTelegramNotifier(bot *tele.Bot) *TelegramNotifier {
	return &TelegramNotifier{bot: bot}
}

// Notify sends text to a single chat
func (n *TelegramNotifier) Notify(chatID int64, text string) error {
	_, err := n.bot.Send(&tele.User{ID: chatID}, text)
	return err
}
