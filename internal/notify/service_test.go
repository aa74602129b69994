package notify

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"MindAlchemy/internal/models"
	"MindAlchemy/pkg/util"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := util.OpenDatabase("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.NotificationPreferences{},
		&models.Notification{},
		&models.MoodLog{},
		&models.Goal{},
	))
	return db
}

func testUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{Email: t.Name() + "@example.com", Country: "US"}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, models.CreateUser(db, user))
	return user
}

func at(hhmm string, weekday time.Weekday) time.Time {
	// 2026-08-31 is a Monday.
	base := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	base = base.AddDate(0, 0, int(weekday-time.Monday))
	t, _ := time.Parse("15:04", hhmm)
	return base.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
}

func TestSweepDailyCheckinWhenNoMoodLogged(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	_, err := models.GetOrCreatePreferences(db, user.ID)
	require.NoError(t, err)

	sent := NewService(db).Sweep(at("09:00", time.Tuesday))
	assert.Equal(t, 1, sent)

	items, err := models.GetNotifications(db, user.ID, false, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.NotificationTypeDailyCheckin, items[0].Type)
	assert.False(t, items[0].Read)
}

func TestSweepSkipsCheckinWhenMoodLogged(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	_, err := models.GetOrCreatePreferences(db, user.ID)
	require.NoError(t, err)

	now := at("09:00", time.Tuesday)
	require.NoError(t, models.CreateMoodLog(db, &models.MoodLog{UserID: user.ID, MoodType: "happy"}))

	sent := NewService(db).Sweep(now)
	assert.Equal(t, 0, sent)
}

func TestSweepOffSlotMinuteSendsNothing(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	_, err := models.GetOrCreatePreferences(db, user.ID)
	require.NoError(t, err)

	sent := NewService(db).Sweep(at("09:01", time.Tuesday))
	assert.Equal(t, 0, sent)
}

func TestSweepRespectsDisabledPreference(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	prefs, err := models.GetOrCreatePreferences(db, user.ID)
	require.NoError(t, err)
	prefs.MeditationReminderEnabled = false
	require.NoError(t, models.UpdatePreferences(db, prefs))

	sent := NewService(db).Sweep(at("19:00", time.Tuesday))
	assert.Equal(t, 0, sent)
}

func TestSweepGoalReminderMondayOnly(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	_, err := models.GetOrCreatePreferences(db, user.ID)
	require.NoError(t, err)
	require.NoError(t, models.CreateGoal(db, &models.Goal{UserID: user.ID, Title: "Sleep earlier"}))

	svc := NewService(db)

	assert.Equal(t, 0, svc.Sweep(at("12:30", time.Tuesday)))

	assert.Equal(t, 1, svc.Sweep(at("12:30", time.Monday)))
	items, err := models.GetNotifications(db, user.ID, false, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.NotificationTypeGoal, items[0].Type)
	assert.Contains(t, items[0].Title, "1 active goal")

	// A later pass the same Monday does not repeat the reminder.
	assert.Equal(t, 0, svc.Sweep(at("12:31", time.Monday)))
}

func TestSweepMotivationalAtTen(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	_, err := models.GetOrCreatePreferences(db, user.ID)
	require.NoError(t, err)

	sent := NewService(db).Sweep(at("10:00", time.Wednesday))
	assert.Equal(t, 1, sent)

	items, err := models.GetNotifications(db, user.ID, false, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.NotificationTypeMotivational, items[0].Type)
	assert.NotEmpty(t, items[0].Message)
}

func TestSweepSkipsUsersWithoutPreferences(t *testing.T) {
	db := testDB(t)
	testUser(t, db)

	sent := NewService(db).Sweep(at("09:00", time.Tuesday))
	assert.Equal(t, 0, sent)
}
