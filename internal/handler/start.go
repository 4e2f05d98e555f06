package handler

import (
	"github.com/Ramilbey/china-agent-bot/internal/texts"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: greet in all three languages and show the
// language selector. Shown to returning users too, matching the
// original bot, so /start always offers a language change.
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.ResetState(userID)

	lang := h.langs.Language(userID)
	return c.Send(
		texts.Welcome,
		h.menuMarkup(lang, texts.MenuLanguage),
		tele.ModeMarkdown,
	)
}
