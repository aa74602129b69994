package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"MindAlchemy/pkg/config"
	"MindAlchemy/pkg/util"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := util.OpenDatabase("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&User{}, &Session{}, &CrisisAlert{}, &MoodLog{}, &JournalEntry{},
		&ThoughtRecord{}, &Goal{}, &SleepLog{}, &Notification{}, &NotificationPreferences{},
	))
	return db
}

func testUser(t *testing.T, db *gorm.DB) *User {
	t.Helper()
	user := &User{Email: t.Name() + "@example.com", Country: "US"}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, CreateUser(db, user))
	return user
}

func TestPasswordHashing(t *testing.T) {
	u := &User{}
	require.NoError(t, u.SetPassword("hunter22xx"))
	assert.NotEqual(t, "hunter22xx", u.HashedPassword)
	assert.True(t, u.CheckPassword("hunter22xx"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	config.GlobalConfig = &config.Config{JWTSecret: "test-secret", TokenExpireDays: 1}

	token, err := CreateAccessToken(77)
	require.NoError(t, err)

	userID, ok := parseAccessToken(token)
	assert.True(t, ok)
	assert.Equal(t, uint(77), userID)

	_, ok = parseAccessToken(token + "x")
	assert.False(t, ok)
}

func TestSessionTranscriptRoundTrip(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)

	session, err := CreateSession(db, user.ID)
	require.NoError(t, err)

	session.Messages = append(session.Messages,
		ChatMessage{Role: "user", Content: "I feel anxious about tomorrow"},
		ChatMessage{Role: "assistant", Content: "What is happening tomorrow?"},
	)
	require.NoError(t, UpdateSession(db, session))

	loaded, err := GetSession(db, user.ID, session.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Messages, 2)
	assert.Equal(t, "I feel anxious about tomorrow", loaded.Messages[0].Content)
}

func TestSessionScopedToOwner(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	session, err := CreateSession(db, user.ID)
	require.NoError(t, err)

	_, err = GetSession(db, user.ID+1, session.ID)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
	assert.Equal(t, gorm.ErrRecordNotFound, DeleteSession(db, user.ID+1, session.ID))
}

func TestSearchSessionsMatchesContent(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)

	s1, err := CreateSession(db, user.ID)
	require.NoError(t, err)
	s1.Messages = MessageList{{Role: "user", Content: "Deadlines at work stress me out"}}
	require.NoError(t, UpdateSession(db, s1))

	s2, err := CreateSession(db, user.ID)
	require.NoError(t, err)
	s2.Messages = MessageList{{Role: "user", Content: "Slept well last night"}}
	require.NoError(t, UpdateSession(db, s2))

	matched, err := SearchSessions(db, user.ID, "DEADLINES")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, s1.ID, matched[0].ID)

	matched, err = SearchSessions(db, user.ID, "meditation")
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestMoodStats(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)

	for _, m := range []struct {
		kind      string
		intensity int
	}{{"happy", 8}, {"happy", 6}, {"anxious", 4}} {
		i := m.intensity
		require.NoError(t, CreateMoodLog(db, &MoodLog{UserID: user.ID, MoodType: m.kind, Intensity: &i}))
	}

	stats, err := GetMoodStats(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalLogs)
	assert.InDelta(t, 6.0, stats.AverageIntensity, 0.001)
	assert.Equal(t, int64(2), stats.Distribution["happy"])
	assert.Equal(t, int64(1), stats.Distribution["anxious"])
}

func TestSleepDurationComputed(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)

	sleepAt := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	log := &SleepLog{UserID: user.ID, SleepTime: sleepAt, WakeTime: sleepAt.Add(7*time.Hour + 30*time.Minute)}
	require.NoError(t, CreateSleepLog(db, log))
	assert.InDelta(t, 7.5, log.DurationHours, 0.001)

	quality := 8
	log2 := &SleepLog{UserID: user.ID, SleepTime: sleepAt.AddDate(0, 0, 1), WakeTime: sleepAt.AddDate(0, 0, 1).Add(6 * time.Hour), Quality: &quality}
	require.NoError(t, CreateSleepLog(db, log2))

	stats, err := GetSleepStats(db, user.ID, sleepAt.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalLogs)
	assert.InDelta(t, 6.75, stats.AverageDuration, 0.001)
}

func TestCrisisAlertLifecycle(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)

	alert := &CrisisAlert{
		UserID:          user.ID,
		RiskLevel:       "high",
		UserMessage:     "I want to end my life",
		Country:         "US",
		EmergencyNumber: "911",
	}
	require.NoError(t, CreateCrisisAlert(db, alert))
	assert.Equal(t, AlertStatusPending, alert.Status)

	require.NoError(t, MarkAlertNotified(db, alert.ID, `["internal_logging"]`))

	loaded, err := GetCrisisAlert(db, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, AlertStatusNotified, loaded.Status)
	assert.Equal(t, `["internal_logging"]`, loaded.NotifiedAuthorities)
}

func TestNotificationReadFlow(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)

	for i := 0; i < 3; i++ {
		require.NoError(t, CreateNotification(db, &Notification{
			UserID: user.ID, Type: NotificationTypeMotivational, Title: "t", Message: "m",
		}))
	}

	count, err := CountUnreadNotifications(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	items, err := GetNotifications(db, user.ID, true, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)

	require.NoError(t, MarkNotificationRead(db, user.ID, items[0].ID))
	updated, err := MarkAllNotificationsRead(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	count, err = CountUnreadNotifications(db, user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGoalStatusFilter(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)

	require.NoError(t, CreateGoal(db, &Goal{UserID: user.ID, Title: "Walk daily"}))
	done := &Goal{UserID: user.ID, Title: "Read a book", Status: GoalStatusCompleted, Progress: 100}
	require.NoError(t, CreateGoal(db, done))

	active, err := GetGoals(db, user.ID, GoalStatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Walk daily", active[0].Title)

	count, err := CountActiveGoals(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
