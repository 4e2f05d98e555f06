package handler

import (
	"strings"

	"github.com/Ramilbey/china-agent-bot/internal/dispatch"
	"github.com/Ramilbey/china-agent-bot/internal/domain"
	"github.com/Ramilbey/china-agent-bot/internal/texts"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /), they have their own handlers
	if strings.HasPrefix(text, "/") {
		return nil
	}

	lang := h.langs.Language(userID)

	// A pending request submission captures the next text verbatim
	if h.GetState(userID) == domain.StateAwaitingRequest {
		return h.handleRequestText(c, lang, text)
	}

	action := h.dispatcher.Match(lang, text)

	// First contact: until a language is chosen, everything except a
	// selector tap leads back to the language selector.
	if !h.langs.HasLanguage(userID) && action.Kind != dispatch.KindChangeLanguage {
		return c.Send(texts.Welcome, h.menuMarkup(lang, texts.MenuLanguage), tele.ModeMarkdown)
	}

	return h.perform(c, lang, action)
}

// perform executes a resolved dispatch action
func (h *Handler) perform(c tele.Context, lang domain.Language, action dispatch.Action) error {
	userID := c.Sender().ID

	switch action.Kind {
	case dispatch.KindChangeLanguage:
		if err := h.langs.SetLanguage(userID, action.Language); err != nil {
			h.logger.Error("Failed to set language",
				zap.Int64("user_id", userID),
				zap.String("language", string(action.Language)),
				zap.Error(err),
			)
			return c.Send(texts.Text(lang, texts.TopicError))
		}
		return c.Send(
			texts.Text(action.Language, texts.TopicLanguageChosen),
			h.menuMarkup(action.Language, texts.MenuMain),
		)

	case dispatch.KindShowText:
		// Service detail replies carry the inline topic buttons so the
		// submenu can be browsed without retyping.
		if _, ok := texts.ServiceLabel(serviceIDForTopic(action.Topic)); ok {
			return c.Send(texts.Text(lang, action.Topic), h.servicesInlineMarkup(lang))
		}
		return c.Send(texts.Text(lang, action.Topic))

	case dispatch.KindShowMenu:
		return c.Send(texts.Text(lang, action.Topic), h.menuMarkup(lang, action.Menu))

	case dispatch.KindEnterRequestFlow:
		h.SetState(userID, domain.StateAwaitingRequest)
		return c.Send(texts.Text(lang, texts.TopicRequestPrompt), h.cancelMarkup(lang))

	default:
		return c.Send(texts.Text(lang, texts.TopicFallback), h.menuMarkup(lang, texts.MenuMain))
	}
}

// handleRequestText finishes or cancels a pending request submission
func (h *Handler) handleRequestText(c tele.Context, lang domain.Language, text string) error {
	sender := c.Sender()
	userID := sender.ID

	if text == texts.Button(lang, texts.LabelCancel) {
		h.ResetState(userID)
		return c.Send(texts.Text(lang, texts.TopicRequestCancelled), h.menuMarkup(lang, texts.MenuMain))
	}

	req, err := h.requests.Submit(domain.ServiceRequest{
		UserID:    userID,
		Username:  sender.Username,
		FirstName: sender.FirstName,
		LastName:  sender.LastName,
		Text:      text,
		Language:  lang,
	})
	if err != nil {
		h.logger.Error("Failed to submit service request",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.ResetState(userID)
		return c.Send(texts.Text(lang, texts.TopicError), h.menuMarkup(lang, texts.MenuMain))
	}

	h.logger.Info("Service request submitted",
		zap.String("request_id", req.ID),
		zap.Int64("user_id", userID),
	)

	h.ResetState(userID)
	return c.Send(texts.Text(lang, texts.TopicRequestReceived), h.menuMarkup(lang, texts.MenuMain))
}

// serviceIDForTopic maps a service detail topic back to its opaque id;
// empty for non-service topics
func serviceIDForTopic(topic texts.Topic) string {
	for id, t := range texts.ServiceTopics {
		if t == topic {
			return id
		}
	}
	return ""
}
