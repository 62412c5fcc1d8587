package games

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"gaming-hub/internal/cache"
	"gaming-hub/internal/event"
	"gaming-hub/internal/logger"
	"gaming-hub/internal/monitoring"
)

var (
	ErrNotFound     = errors.New("score not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid score submission")
)

const (
	duplicateWindow = 5000 * time.Millisecond
	historyLimit    = 50
)

const selectRecord = `
	SELECT id, user_id, username, game_id, game_name, score, played_at
	FROM game_scores`

type Service struct {
	db  *sqlx.DB
	bus *event.Bus
}

func New(db *sqlx.DB, bus *event.Bus) *Service {
	return &Service{db: db, bus: bus}
}

// Submit persists one score record, unless an identical
// (user, game, score) landed within the last 5 seconds, in which case
// the existing record is returned and duplicate is true. The
// check-then-insert pair is deliberately not atomic: two identical
// submissions racing inside the window can both insert, which is
// acceptable at this write volume.
func (s *Service) Submit(userID, username, gameID, gameName string, score int) (*ScoreRecord, bool, error) {
	if score < 0 || gameID == "" || gameName == "" {
		return nil, false, ErrInvalidInput
	}

	since := time.Now().UTC().Add(-duplicateWindow)

	var existing ScoreRecord
	err := s.db.Get(&existing, selectRecord+`
	WHERE user_id = ? AND game_id = ? AND score = ? AND played_at >= ?
	ORDER BY played_at DESC LIMIT 1
	`, userID, gameID, score, since)
	if err == nil {
		monitoring.DuplicateSubmissions.Inc()
		return &existing, true, nil
	}
	if err != sql.ErrNoRows {
		return nil, false, err
	}

	rec := &ScoreRecord{
		ID:       uuid.New().String(),
		UserID:   userID,
		Username: username,
		GameID:   gameID,
		GameName: gameName,
		Score:    score,
		PlayedAt: time.Now().UTC(),
	}

	_, err = s.db.Exec(`
	INSERT INTO game_scores(id, user_id, username, game_id, game_name, score, played_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.UserID, rec.Username, rec.GameID, rec.GameName, rec.Score, rec.PlayedAt)
	if err != nil {
		return nil, false, err
	}

	monitoring.ScoresSubmitted.WithLabelValues(rec.GameID).Inc()
	cache.Del("leaderboard:global")
	s.bus.Publish(event.EventScoreSubmitted, rec)

	logger.Log.Info("score submitted",
		zap.String("user", rec.UserID),
		zap.String("game", rec.GameID),
		zap.Int("score", rec.Score),
	)

	return rec, false, nil
}

// History is private to its owner and capped at the 50 most recent
// records, newest first.
func (s *Service) History(requesterID, targetUserID string) ([]ScoreRecord, error) {
	if requesterID != targetUserID {
		return nil, ErrUnauthorized
	}

	records := []ScoreRecord{}
	err := s.db.Select(&records, selectRecord+`
	WHERE user_id = ?
	ORDER BY played_at DESC, rowid DESC
	LIMIT ?
	`, targetUserID, historyLimit)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (s *Service) Delete(requesterID, scoreID string) error {
	var rec ScoreRecord
	err := s.db.Get(&rec, selectRecord+` WHERE id = ?`, scoreID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if rec.UserID != requesterID {
		return ErrUnauthorized
	}

	if _, err := s.db.Exec(`DELETE FROM game_scores WHERE id = ?`, scoreID); err != nil {
		return err
	}

	monitoring.ScoresDeleted.Inc()
	cache.Del("leaderboard:global")
	s.bus.Publish(event.EventScoreDeleted, &rec)

	return nil
}
