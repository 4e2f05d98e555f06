package handler

import (
	"testing"

	"github.com/Ramilbey/china-agent-bot/internal/domain"
	"github.com/Ramilbey/china-agent-bot/internal/service"
	"github.com/Ramilbey/china-agent-bot/internal/testutil"
	"github.com/Ramilbey/china-agent-bot/internal/texts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

// stubContext implements the slice of tele.Context the text handlers
// touch and records what was sent; everything else panics via the
// embedded nil interface.
type stubContext struct {
	tele.Context
	sender *tele.User
	text   string
	sent   []string
}

func (c *stubContext) Sender() *tele.User { return c.sender }

func (c *stubContext) Text() string { return c.text }

func (c *stubContext) Send(what interface{}, _ ...interface{}) error {
	if s, ok := what.(string); ok {
		c.sent = append(c.sent, s)
	}
	return nil
}

type handlerMocks struct {
	prefs    *testutil.MockPreferenceRepository
	stats    *testutil.MockStatsRepository
	requests *testutil.MockRequestRepository
	notifier *testutil.MockNotifier
}

func newTestHandler() (*Handler, *handlerMocks) {
	m := &handlerMocks{
		prefs:    new(testutil.MockPreferenceRepository),
		stats:    new(testutil.MockStatsRepository),
		requests: new(testutil.MockRequestRepository),
		notifier: new(testutil.MockNotifier),
	}

	logger := testutil.NewTestLogger()
	langs := service.NewLanguageService(m.prefs, m.stats, logger)
	statsSvc := service.NewStatsService(m.stats, logger)
	requests := service.NewRequestService(m.requests, m.stats, m.notifier, nil, logger)

	return NewHandler(nil, langs, statsSvc, requests, logger), m
}

func textMessage(userID int64, text string) *stubContext {
	return &stubContext{
		sender: &tele.User{ID: userID, Username: "tester"},
		text:   text,
	}
}

func TestHandleText_CancelWhileAwaitingRequest(t *testing.T) {
	h, m := newTestHandler()
	m.prefs.On("Get", int64(42)).Return(domain.LanguageEnglish, true)

	h.SetState(42, domain.StateAwaitingRequest)
	c := textMessage(42, texts.Button(domain.LanguageEnglish, texts.LabelCancel))

	require.NoError(t, h.handleText(c))

	// Back to idle with nothing recorded
	assert.Equal(t, domain.StateIdle, h.GetState(42))
	m.requests.AssertNumberOfCalls(t, "Append", 0)
	require.NotEmpty(t, c.sent)
	assert.Equal(t, texts.Text(domain.LanguageEnglish, texts.TopicRequestCancelled), c.sent[0])
}

func TestHandleText_CapturesRequestVerbatim(t *testing.T) {
	h, m := newTestHandler()
	m.prefs.On("Get", int64(42)).Return(domain.LanguageRussian, true)
	m.requests.On("Append", mock.MatchedBy(func(req domain.ServiceRequest) bool {
		return req.UserID == 42 &&
			req.Text == "Нужна помощь с ярмаркой" &&
			req.Language == domain.LanguageRussian
	})).Return(nil)
	m.stats.On("Add", domain.CounterRequests, 1).Return(nil)

	h.SetState(42, domain.StateAwaitingRequest)
	c := textMessage(42, "Нужна помощь с ярмаркой")

	require.NoError(t, h.handleText(c))

	assert.Equal(t, domain.StateIdle, h.GetState(42))
	m.requests.AssertNumberOfCalls(t, "Append", 1)
	m.stats.AssertExpectations(t)
	require.NotEmpty(t, c.sent)
	assert.Equal(t, texts.Text(domain.LanguageRussian, texts.TopicRequestReceived), c.sent[0])
}

func TestHandleText_RequestFlowEntryAndSubmit(t *testing.T) {
	h, m := newTestHandler()
	m.prefs.On("Get", int64(42)).Return(domain.LanguageEnglish, true)
	m.requests.On("Append", mock.AnythingOfType("domain.ServiceRequest")).Return(nil)
	m.stats.On("Add", domain.CounterRequests, 1).Return(nil)

	// Tapping the request button arms the capture state
	c := textMessage(42, texts.Button(domain.LanguageEnglish, texts.LabelRequest))
	require.NoError(t, h.handleText(c))
	assert.Equal(t, domain.StateAwaitingRequest, h.GetState(42))
	require.NotEmpty(t, c.sent)
	assert.Equal(t, texts.Text(domain.LanguageEnglish, texts.TopicRequestPrompt), c.sent[0])

	// The next text is the submission, exactly one record
	c = textMessage(42, "need a sourcing agent")
	require.NoError(t, h.handleText(c))
	assert.Equal(t, domain.StateIdle, h.GetState(42))
	m.requests.AssertNumberOfCalls(t, "Append", 1)
}

func TestHandleText_FirstContactShowsLanguageSelector(t *testing.T) {
	h, m := newTestHandler()
	m.prefs.On("Get", int64(42)).Return(domain.DefaultLanguage, false)

	// Free text and even a valid menu caption lead back to the
	// selector until a language is stored
	for _, input := range []string{"hello", texts.Button(domain.LanguageEnglish, texts.LabelServices)} {
		c := textMessage(42, input)
		require.NoError(t, h.handleText(c))
		require.NotEmpty(t, c.sent, "input %q", input)
		assert.Equal(t, texts.Welcome, c.sent[0], "input %q", input)
	}

	m.prefs.AssertNumberOfCalls(t, "Set", 0)
	m.requests.AssertNumberOfCalls(t, "Append", 0)
}

func TestHandleText_FirstContactSelectorTap(t *testing.T) {
	h, m := newTestHandler()
	m.prefs.On("Get", int64(42)).Return(domain.DefaultLanguage, false)
	m.prefs.On("Set", int64(42), domain.LanguageRussian).Return(nil)
	m.stats.On("Add", domain.CounterUsers, 1).Return(nil)
	m.stats.On("AddLanguage", domain.LanguageRussian, 1).Return(nil)

	c := textMessage(42, texts.LanguageButtonFor(domain.LanguageRussian))

	require.NoError(t, h.handleText(c))

	m.prefs.AssertExpectations(t)
	m.stats.AssertExpectations(t)
	require.NotEmpty(t, c.sent)
	assert.Equal(t, texts.Text(domain.LanguageRussian, texts.TopicLanguageChosen), c.sent[0])
}

func TestHandleCancel_Command(t *testing.T) {
	h, m := newTestHandler()
	m.prefs.On("Get", int64(42)).Return(domain.LanguageUzbek, true)

	h.SetState(42, domain.StateAwaitingRequest)
	c := textMessage(42, "/cancel")

	require.NoError(t, h.handleCancel(c))
	assert.Equal(t, domain.StateIdle, h.GetState(42))
	m.requests.AssertNumberOfCalls(t, "Append", 0)
	require.NotEmpty(t, c.sent)
	assert.Equal(t, texts.Text(domain.LanguageUzbek, texts.TopicRequestCancelled), c.sent[0])

	// Outside the request flow /cancel just re-shows the menu
	c = textMessage(42, "/cancel")
	require.NoError(t, h.handleCancel(c))
	assert.Equal(t, texts.Text(domain.LanguageUzbek, texts.TopicMainMenu), c.sent[0])
}
