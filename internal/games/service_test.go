package games

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gaming-hub/internal/db"
	"gaming-hub/internal/event"
)

func newTestService(t *testing.T) (*Service, *sqlx.DB) {
	t.Helper()
	database := db.Init(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { database.Close() })
	return New(database, event.NewBus()), database
}

func insertScoreAt(t *testing.T, database *sqlx.DB, userID, gameID string, score int, playedAt time.Time) string {
	t.Helper()
	id := uuid.New().String()
	_, err := database.Exec(`
	INSERT INTO game_scores(id, user_id, username, game_id, game_name, score, played_at)
	VALUES (?, ?, ?, ?, 'Test Game', ?, ?)
	`, id, userID, userID, gameID, score, playedAt.UTC())
	require.NoError(t, err)
	return id
}

func countScores(t *testing.T, database *sqlx.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.Get(&n, `SELECT COUNT(*) FROM game_scores`))
	return n
}

func TestSubmitStoresRecord(t *testing.T) {
	svc, database := newTestService(t)

	rec, duplicate, err := svc.Submit("u1", "alice", "snake", "Snake", 42)
	require.NoError(t, err)
	assert.False(t, duplicate)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "u1", rec.UserID)
	assert.Equal(t, "alice", rec.Username)
	assert.Equal(t, 42, rec.Score)
	assert.Equal(t, 1, countScores(t, database))
}

func TestSubmitDeduplicatesWithinWindow(t *testing.T) {
	svc, database := newTestService(t)

	first, duplicate, err := svc.Submit("u1", "alice", "snake", "Snake", 42)
	require.NoError(t, err)
	require.False(t, duplicate)

	second, duplicate, err := svc.Submit("u1", "alice", "snake", "Snake", 42)
	require.NoError(t, err)
	assert.True(t, duplicate)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, countScores(t, database))
}

func TestSubmitOutsideWindowStoresAgain(t *testing.T) {
	svc, database := newTestService(t)

	old := insertScoreAt(t, database, "u1", "snake", 42, time.Now().Add(-6*time.Second))

	rec, duplicate, err := svc.Submit("u1", "alice", "snake", "Snake", 42)
	require.NoError(t, err)
	assert.False(t, duplicate)
	assert.NotEqual(t, old, rec.ID)
	assert.Equal(t, 2, countScores(t, database))
}

func TestSubmitDifferentScoreNotDeduplicated(t *testing.T) {
	svc, database := newTestService(t)

	_, _, err := svc.Submit("u1", "alice", "snake", "Snake", 42)
	require.NoError(t, err)

	_, duplicate, err := svc.Submit("u1", "alice", "snake", "Snake", 43)
	require.NoError(t, err)
	assert.False(t, duplicate)
	assert.Equal(t, 2, countScores(t, database))
}

func TestSubmitValidation(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		name     string
		gameID   string
		gameName string
		score    int
	}{
		{"negative score", "snake", "Snake", -1},
		{"empty game id", "", "Snake", 10},
		{"empty game name", "snake", "", 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Submit("u1", "alice", tc.gameID, tc.gameName, tc.score)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDeleteRequiresOwnership(t *testing.T) {
	svc, database := newTestService(t)

	rec, _, err := svc.Submit("u1", "alice", "snake", "Snake", 42)
	require.NoError(t, err)

	err = svc.Delete("u2", rec.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, countScores(t, database))

	require.NoError(t, svc.Delete("u1", rec.ID))
	assert.Equal(t, 0, countScores(t, database))

	err = svc.Delete("u1", rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHistoryIsPrivate(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.History("u1", "u2")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHistoryReturnsNewestFifty(t *testing.T) {
	svc, database := newTestService(t)

	base := time.Now().Add(-2 * time.Hour)
	for i := 0; i < 60; i++ {
		insertScoreAt(t, database, "u1", "snake", i, base.Add(time.Duration(i)*time.Minute))
	}

	records, err := svc.History("u1", "u1")
	require.NoError(t, err)
	require.Len(t, records, 50)

	// newest first: scores 59 down to 10
	assert.Equal(t, 59, records[0].Score)
	assert.Equal(t, 10, records[49].Score)
	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].PlayedAt.After(records[i-1].PlayedAt))
	}
}
