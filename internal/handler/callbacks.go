package handler

import (
	"strings"
	"unicode"

	"github.com/Ramilbey/china-agent-bot/internal/texts"

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

// handleCallback handles inline service-topic buttons. The inline
// variant mirrors the services submenu: the callback data is the opaque
// topic identifier and the reply is the same detail text.
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	userID := c.Sender().ID
	lang := h.langs.Language(userID)
	data := cleanCallbackData(callback.Data)

	if callback.Unique == "svc" || strings.HasPrefix(data, "svc|") {
		id := strings.TrimPrefix(data, "svc|")
		topic, ok := texts.ServiceTopics[id]
		if !ok {
			h.logger.Warn("Unknown service id in callback",
				zap.String("data", data),
				zap.Int64("user_id", userID),
			)
			return c.Respond()
		}

		if err := c.Send(texts.Text(lang, topic), h.servicesInlineMarkup(lang)); err != nil {
			h.logger.Error("Failed to send service detail",
				zap.String("service", id),
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		}
		return c.Respond()
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
