package handler

import (
	"sync"

	"github.com/Ramilbey/china-agent-bot/internal/dispatch"
	"github.com/Ramilbey/china-agent-bot/internal/domain"
	"github.com/Ramilbey/china-agent-bot/internal/service"
	"github.com/Ramilbey/china-agent-bot/internal/texts"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	langs      *service.LanguageService
	stats      *service.StatsService
	requests   *service.RequestService
	dispatcher *dispatch.Dispatcher
	logger     *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]domain.UserState
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	langs *service.LanguageService,
	stats *service.StatsService,
	requests *service.RequestService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:        bot,
		langs:      langs,
		stats:      stats,
		requests:   requests,
		dispatcher: dispatch.New(),
		logger:     logger,
		states:     make(map[int64]domain.UserState),
	}
}

// RegisterHandlers registers all bot handlers. adminOnly guards the
// admin-facing commands.
func (h *Handler) RegisterHandlers(adminOnly tele.MiddlewareFunc) {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/menu", h.topicCommand(texts.TopicMainMenu, texts.MenuMain))
	h.bot.Handle("/help", h.topicCommand(texts.TopicHelp, ""))
	h.bot.Handle("/contact", h.topicCommand(texts.TopicContact, ""))
	h.bot.Handle("/pricing", h.topicCommand(texts.TopicPricing, ""))
	h.bot.Handle("/about", h.topicCommand(texts.TopicAbout, ""))
	h.bot.Handle("/cancel", h.handleCancel)
	h.bot.Handle("/stats", h.handleStats, adminOnly)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline service-topic buttons)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) domain.UserState {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return domain.StateIdle
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state domain.UserState) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, domain.StateIdle)
}

// topicCommand builds a command handler replying with a localized text,
// optionally with a keyboard
func (h *Handler) topicCommand(topic texts.Topic, menu texts.MenuID) tele.HandlerFunc {
	return func(c tele.Context) error {
		lang := h.langs.Language(c.Sender().ID)
		if menu != "" {
			return c.Send(texts.Text(lang, topic), h.menuMarkup(lang, menu))
		}
		return c.Send(texts.Text(lang, topic))
	}
}

// handleStats replies with the usage counters (admin only)
func (h *Handler) handleStats(c tele.Context) error {
	return c.Send(h.stats.FormatReport())
}

// handleCancel aborts a pending request submission
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID
	lang := h.langs.Language(userID)

	if h.GetState(userID) == domain.StateAwaitingRequest {
		h.ResetState(userID)
		return c.Send(texts.Text(lang, texts.TopicRequestCancelled), h.menuMarkup(lang, texts.MenuMain))
	}
	return c.Send(texts.Text(lang, texts.TopicMainMenu), h.menuMarkup(lang, texts.MenuMain))
}

// menuMarkup renders a localized reply keyboard
func (h *Handler) menuMarkup(lang domain.Language, menu texts.MenuID) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	rows := []tele.Row{}
	for _, captions := range texts.MenuCaptions(lang, menu) {
		btns := make([]tele.Btn, 0, len(captions))
		for _, caption := range captions {
			btns = append(btns, markup.Text(caption))
		}
		rows = append(rows, markup.Row(btns...))
	}
	markup.Reply(rows...)
	return markup
}

// cancelMarkup renders the single-button keyboard shown while waiting
// for request text
func (h *Handler) cancelMarkup(lang domain.Language) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(markup.Row(markup.Text(texts.Button(lang, texts.LabelCancel))))
	return markup
}

// servicesInlineMarkup renders the inline variant of the services
// submenu, one button per topic keyed by its opaque identifier
func (h *Handler) servicesInlineMarkup(lang domain.Language) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, id := range texts.ServiceOrder {
		label, ok := texts.ServiceLabel(id)
		if !ok {
			continue
		}
		rows = append(rows, markup.Row(markup.Data(texts.Button(lang, label), "svc", id)))
	}
	markup.Inline(rows...)
	return markup
}
