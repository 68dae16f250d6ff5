package handler

import (
	"errors"
	"testing"
	"time"

	"wordofday/internal/domain"
	"wordofday/internal/render"
	"wordofday/internal/service"
	"wordofday/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

// fakeBot records messages posted outside of a reply
type fakeBot struct {
	nextID  int
	sendErr error
	sent    []string
	pinned  int
}

func (b *fakeBot) Handle(endpoint interface{}, h tele.HandlerFunc, m ...tele.MiddlewareFunc) {}

func (b *fakeBot) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	if b.sendErr != nil {
		return nil, b.sendErr
	}
	b.sent = append(b.sent, what.(string))
	return &tele.Message{ID: b.nextID}, nil
}

func (b *fakeBot) Pin(msg tele.Editable, opts ...interface{}) error {
	b.pinned++
	return nil
}

// fakeContext implements the tele.Context methods the handlers call
type fakeContext struct {
	tele.Context

	chat      *tele.Chat
	message   *tele.Message
	callback  *tele.Callback
	sent      []string
	edited    []string
	responded int
}

func (c *fakeContext) Chat() *tele.Chat         { return c.chat }
func (c *fakeContext) Sender() *tele.User       { return &tele.User{ID: c.chat.ID, Username: "tester"} }
func (c *fakeContext) Message() *tele.Message   { return c.message }
func (c *fakeContext) Callback() *tele.Callback { return c.callback }

func (c *fakeContext) Send(what interface{}, opts ...interface{}) error {
	c.sent = append(c.sent, what.(string))
	return nil
}

func (c *fakeContext) Edit(what interface{}, opts ...interface{}) error {
	c.edited = append(c.edited, what.(string))
	return nil
}

func (c *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.responded++
	return nil
}

func newCommand(chatID int64, payload string) *fakeContext {
	chat := &tele.Chat{ID: chatID}
	return &fakeContext{
		chat:    chat,
		message: &tele.Message{Chat: chat, Payload: payload},
	}
}

func newButtonPress(chatID int64, unique string) *fakeContext {
	c := newCommand(chatID, "")
	c.callback = &tele.Callback{Unique: unique, Message: c.message}
	return c
}

type handlerFixture struct {
	handler   *Handler
	bot       *fakeBot
	subRepo   *testutil.MockSubscriptionRepository
	scheduler *service.Scheduler
	now       time.Time
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	logger := testutil.NewTestLogger()
	scheduler, err := service.NewScheduler(testutil.NewTestWordList("A", "B", "C"), time.UTC, logger)
	require.NoError(t, err)

	// day 2 of the year -> "B"
	now := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	bot := &fakeBot{nextID: 555}
	subRepo := new(testutil.MockSubscriptionRepository)

	h := NewHandler(
		bot,
		scheduler,
		service.NewSessionService(scheduler),
		service.NewSubscriptionService(subRepo, logger),
		testutil.FixedClock{Moment: now},
		logger,
	)

	return &handlerFixture{handler: h, bot: bot, subRepo: subRepo, scheduler: scheduler, now: now}
}

func TestHandleToday_SendsDateBasedWord(t *testing.T) {
	f := newHandlerFixture(t)
	c := newCommand(42, "")

	err := f.handler.handleToday(c)

	require.NoError(t, err)
	entry, err := f.scheduler.ComputeEntry(f.now)
	require.NoError(t, err)
	require.Len(t, c.sent, 1)
	assert.Equal(t, render.Interactive(entry, 3), c.sent[0])
	assert.Contains(t, c.sent[0], "*B*")
}

func TestHandleNext_ButtonEditsInPlace(t *testing.T) {
	f := newHandlerFixture(t)

	first := newButtonPress(42, btnNext.Unique)
	require.NoError(t, f.handler.handleNext(first))

	second := newButtonPress(42, btnNext.Unique)
	require.NoError(t, f.handler.handleNext(second))

	require.Len(t, first.edited, 1)
	assert.Contains(t, first.edited[0], "*C*")
	assert.Contains(t, first.edited[0], "Word 3 of 3")
	assert.Equal(t, 1, first.responded)
	assert.Empty(t, first.sent)

	require.Len(t, second.edited, 1)
	assert.Contains(t, second.edited[0], "*A*")
}

func TestHandleToday_ClearsManualOverride(t *testing.T) {
	f := newHandlerFixture(t)

	require.NoError(t, f.handler.handleNext(newCommand(42, "")))

	c := newCommand(42, "")
	require.NoError(t, f.handler.handleToday(c))

	require.Len(t, c.sent, 1)
	assert.Contains(t, c.sent[0], "*B*")
}

func TestHandleCallback_RoutesByUnique(t *testing.T) {
	f := newHandlerFixture(t)
	c := newButtonPress(42, btnToday.Unique)

	require.NoError(t, f.handler.handleCallback(c))

	require.Len(t, c.edited, 1)
	assert.Contains(t, c.edited[0], "*B*")
}

func TestHandleSubscribe_StoresPostedMessage(t *testing.T) {
	f := newHandlerFixture(t)
	f.subRepo.On("SaveSubscription", mock.MatchedBy(func(sub domain.Subscription) bool {
		return sub.ChatID == 42 && sub.MessageID == 555 && sub.Surface == domain.SurfaceLarge
	})).Return(nil)

	c := newCommand(42, "large")
	err := f.handler.handleSubscribe(c)

	require.NoError(t, err)
	entry, err := f.scheduler.ComputeEntry(f.now)
	require.NoError(t, err)
	assert.Equal(t, []string{render.Text(domain.SurfaceLarge, entry)}, f.bot.sent)
	assert.Equal(t, 1, f.bot.pinned)
	assert.Equal(t,
		[]string{refreshNotice(domain.SurfaceLarge, time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC))},
		c.sent,
	)
	f.subRepo.AssertExpectations(t)
}

func TestHandleSubscribe_DefaultSurface(t *testing.T) {
	f := newHandlerFixture(t)
	f.subRepo.On("SaveSubscription", mock.MatchedBy(func(sub domain.Subscription) bool {
		return sub.Surface == domain.DefaultSurface
	})).Return(nil)

	require.NoError(t, f.handler.handleSubscribe(newCommand(42, "")))

	f.subRepo.AssertExpectations(t)
}

func TestHandleSubscribe_Failures(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		sendErr    error
		saveErr    error
		expectSave bool
		expected   string
	}{
		{
			name:     "unknown surface lists the valid ones",
			payload:  "poster",
			expected: "Unknown surface. Choose one of: small, medium, large, circular, rectangular, inline",
		},
		{
			name:     "posting fails",
			payload:  "small",
			sendErr:  errors.New("telegram down"),
			expected: errorText,
		},
		{
			name:       "saving fails",
			payload:    "small",
			saveErr:    errors.New("db error"),
			expectSave: true,
			expected:   errorText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.bot.sendErr = tt.sendErr
			if tt.expectSave {
				f.subRepo.On("SaveSubscription", mock.Anything).Return(tt.saveErr)
			}

			c := newCommand(42, tt.payload)
			err := f.handler.handleSubscribe(c)

			require.NoError(t, err)
			assert.Equal(t, []string{tt.expected}, c.sent)
			assert.Equal(t, 0, f.bot.pinned)
			if !tt.expectSave {
				f.subRepo.AssertNotCalled(t, "SaveSubscription", mock.Anything)
			}
			f.subRepo.AssertExpectations(t)
		})
	}
}

func TestHandleUnsubscribe(t *testing.T) {
	existing := testutil.NewTestSubscription(42, 555, domain.SurfaceSmall)

	tests := []struct {
		name         string
		subscription *domain.Subscription
		getErr       error
		expectDelete bool
		expected     string
	}{
		{
			name:     "not subscribed",
			expected: "This chat has no daily word message.",
		},
		{
			name:         "subscribed",
			subscription: &existing,
			expectDelete: true,
			expected:     "✅ The daily word message will no longer update.",
		},
		{
			name:     "lookup fails",
			getErr:   errors.New("db error"),
			expected: errorText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			if tt.subscription != nil {
				f.subRepo.On("GetSubscription", int64(42)).Return(tt.subscription, tt.getErr)
			} else {
				f.subRepo.On("GetSubscription", int64(42)).Return(nil, tt.getErr)
			}
			if tt.expectDelete {
				f.subRepo.On("DeleteSubscription", int64(42)).Return(nil)
			}

			c := newCommand(42, "")
			err := f.handler.handleUnsubscribe(c)

			require.NoError(t, err)
			assert.Equal(t, []string{tt.expected}, c.sent)
			if !tt.expectDelete {
				f.subRepo.AssertNotCalled(t, "DeleteSubscription", mock.Anything)
			}
			f.subRepo.AssertExpectations(t)
		})
	}
}

func TestRegisterHandlers_AcceptsBotInterface(t *testing.T) {
	f := newHandlerFixture(t)

	assert.NotPanics(t, f.handler.RegisterHandlers)
}
