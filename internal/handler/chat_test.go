package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"MindAlchemy/internal/crisis"
	"MindAlchemy/internal/models"
	"MindAlchemy/pkg/cache"
	"MindAlchemy/pkg/config"
	"MindAlchemy/pkg/llm"
	"MindAlchemy/pkg/logger"
	"MindAlchemy/pkg/notification"
	"MindAlchemy/pkg/util"
)

type fakeChatter struct {
	reply     string
	sentiment string
	calls     int
}

func (f *fakeChatter) Chat(_ context.Context, _ []llm.Message, _ string, _ string) string {
	f.calls++
	return f.reply
}
func (f *fakeChatter) Sentiment(_ context.Context, _ string) string     { return f.sentiment }
func (f *fakeChatter) SessionSummary(_ context.Context, _ []llm.Message) string {
	return "A short supportive conversation."
}
func (f *fakeChatter) Insights(_ context.Context, _ string) string { return "Keep tracking." }
func (f *fakeChatter) Configured() bool                            { return true }

type failingClient struct{}

func (failingClient) Dispatch(context.Context, notification.DispatchRequest) (notification.DispatchResult, error) {
	return notification.DispatchResult{}, errors.New("dispatch unavailable")
}

type testEnv struct {
	engine  *gin.Engine
	db      *gorm.DB
	chatter *fakeChatter
	user    *models.User
	token   string
}

func setup(t *testing.T, authorityErr bool) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.GlobalConfig = &config.Config{
		APIPrefix: "/api",
		JWTSecret: "test-secret",
		ChatRate:  "100-M",
		Log:       logger.LogConfig{},
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := util.OpenDatabase("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Session{}, &models.CrisisAlert{},
		&models.MoodLog{}, &models.JournalEntry{},
	))

	var cli notification.AuthorityClient
	if authorityErr {
		cli = failingClient{}
	}
	responder := crisis.NewResponder(notification.NewEmergencyNotifier(cli), time.Second)

	chatter := &fakeChatter{reply: "That sounds difficult. Tell me more.", sentiment: "negative"}
	store := cache.NewGoCache(cache.LocalConfig{})

	h := NewHandlers(db, chatter, store, responder)
	engine := gin.New()
	h.Register(engine)

	user := &models.User{Email: t.Name() + "@example.com", FullName: "Jordan Lee", Country: "PK"}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, models.CreateUser(db, user))
	token, err := models.CreateAccessToken(user.ID)
	require.NoError(t, err)

	return &testEnv{engine: engine, db: db, chatter: chatter, user: user, token: token}
}

func (e *testEnv) post(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+e.token)
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestChatNormalMessageUsesLLM(t *testing.T) {
	env := setup(t, false)

	w := env.post(t, "/api/chat", gin.H{"message": "I had a rough day at work"})
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[chatResponse](t, w)
	assert.False(t, got.IsCrisis)
	assert.Equal(t, "none", got.RiskLevel)
	assert.Equal(t, env.chatter.reply, got.Response)
	assert.Equal(t, "negative", got.Sentiment)
	assert.NotZero(t, got.SessionID)
	assert.Equal(t, 1, env.chatter.calls)

	session, err := models.GetSession(env.db, env.user.ID, got.SessionID)
	require.NoError(t, err)
	require.Len(t, session.Messages, 2)
	assert.Equal(t, "user", session.Messages[0].Role)
	assert.Equal(t, "assistant", session.Messages[1].Role)
}

func TestChatCrisisSkipsLLMAndRecordsAlert(t *testing.T) {
	env := setup(t, false)

	w := env.post(t, "/api/chat", gin.H{"message": "I want to end my life"})
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[chatResponse](t, w)
	assert.True(t, got.IsCrisis)
	assert.Equal(t, "high", got.RiskLevel)
	assert.Equal(t, "crisis", got.Sentiment)
	assert.Equal(t, "15", got.EmergencyNumber)
	assert.Contains(t, got.Response, "Immediate Help for Pakistan")
	require.NotZero(t, got.CrisisAlertID)
	assert.Zero(t, env.chatter.calls)

	alert, err := models.GetCrisisAlert(env.db, got.CrisisAlertID)
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusNotified, alert.Status)
}

func TestChatCrisisNotifierFailureStillResponds(t *testing.T) {
	env := setup(t, true)

	w := env.post(t, "/api/chat", gin.H{"message": "there is no point living"})
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[chatResponse](t, w)
	assert.True(t, got.IsCrisis)
	assert.Contains(t, got.Response, "Immediate Help for Pakistan")
	require.NotZero(t, got.CrisisAlertID)

	alert, err := models.GetCrisisAlert(env.db, got.CrisisAlertID)
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusPending, alert.Status)
}

func TestChatContinuesExistingSession(t *testing.T) {
	env := setup(t, false)

	first := decode[chatResponse](t, env.post(t, "/api/chat", gin.H{"message": "hello"}))
	second := decode[chatResponse](t, env.post(t, "/api/chat", gin.H{"message": "more thoughts", "sessionId": first.SessionID}))
	assert.Equal(t, first.SessionID, second.SessionID)

	session, err := models.GetSession(env.db, env.user.ID, first.SessionID)
	require.NoError(t, err)
	assert.Len(t, session.Messages, 4)
}

func TestChatUnknownSessionReturns404(t *testing.T) {
	env := setup(t, false)
	w := env.post(t, "/api/chat", gin.H{"message": "hello", "sessionId": 9999})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatRequiresAuth(t *testing.T) {
	env := setup(t, false)
	b, _ := json.Marshal(gin.H{"message": "hello"})
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionSearchAndSummary(t *testing.T) {
	env := setup(t, false)

	created := decode[chatResponse](t, env.post(t, "/api/chat", gin.H{"message": "I keep worrying about deadlines"}))

	w := env.get(t, "/api/chat/sessions/search?query=deadlines")
	require.Equal(t, http.StatusOK, w.Code)
	sessions := decode[[]models.Session](t, w)
	require.Len(t, sessions, 1)
	assert.Equal(t, created.SessionID, sessions[0].ID)

	w = env.get(t, "/api/chat/sessions/search?query=x")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.post(t, fmt.Sprintf("/api/chat/sessions/%d/summary", created.SessionID), gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[sessionSummaryResponse](t, w)
	assert.Equal(t, "A short supportive conversation.", summary.Summary)
}

func TestCrisisResourcesEndpoint(t *testing.T) {
	env := setup(t, false)

	w := env.get(t, "/api/crisis/resources")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[crisisResourcesResponse](t, w)
	assert.Equal(t, "PK", got.Country)
	assert.Equal(t, "Pakistan", got.CountryName)
	assert.Equal(t, "15", got.Emergency)
	assert.NotEmpty(t, got.Hotlines)

	// unknown override falls back to US, echoed as the code served
	w = env.get(t, "/api/crisis/resources?country=zz")
	require.Equal(t, http.StatusOK, w.Code)
	got = decode[crisisResourcesResponse](t, w)
	assert.Equal(t, "US", got.Country)
	assert.Equal(t, "United States", got.CountryName)
	assert.Equal(t, "911", got.Emergency)

	// so does a user with no country set
	env.user.Country = ""
	require.NoError(t, models.UpdateUser(env.db, env.user))
	w = env.get(t, "/api/crisis/resources")
	require.Equal(t, http.StatusOK, w.Code)
	got = decode[crisisResourcesResponse](t, w)
	assert.Equal(t, "US", got.Country)
	assert.Equal(t, "United States", got.CountryName)

	w = env.get(t, "/api/crisis/countries")
	require.Equal(t, http.StatusOK, w.Code)
	countries := decode[[]crisis.Country](t, w)
	assert.Len(t, countries, 41)
}
