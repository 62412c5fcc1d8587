package leaderboard

import "github.com/jmoiron/sqlx"

const globalLimit = 10

type Service struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Service {
	return &Service{db: db}
}

// Global groups every score record by user and returns the top 10 by
// total score. The username shown is an arbitrary one of the user's
// recorded names (they diverge after a rename).
func (s *Service) Global() ([]Entry, error) {
	entries := []Entry{}
	err := s.db.Select(&entries, `
	SELECT user_id, username,
	       SUM(score)           AS total_score,
	       COUNT(*)             AS games_played,
	       ROUND(AVG(score), 2) AS average_score
	FROM game_scores
	GROUP BY user_id
	ORDER BY total_score DESC
	LIMIT ?
	`, globalLimit)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Standing recomputes the full ranking on every call. Rank is 1-based;
// a user with no records gets rank 0.
func (s *Service) Standing(userID string) (*Standing, error) {
	scores := []GameScore{}
	err := s.db.Select(&scores, `
	SELECT game_id, game_name, score, played_at
	FROM game_scores
	WHERE user_id = ?
	ORDER BY score DESC, rowid ASC
	`, userID)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, sc := range scores {
		total += sc.Score
	}

	type userTotal struct {
		UserID string `db:"user_id"`
		Total  int    `db:"total"`
	}
	totals := []userTotal{}
	err = s.db.Select(&totals, `
	SELECT user_id, SUM(score) AS total
	FROM game_scores
	GROUP BY user_id
	ORDER BY total DESC
	`)
	if err != nil {
		return nil, err
	}

	rank := 0
	for i, t := range totals {
		if t.UserID == userID {
			rank = i + 1
			break
		}
	}

	return &Standing{
		UserID:      userID,
		TotalScore:  total,
		GlobalRank:  rank,
		GamesPlayed: len(scores),
		GameScores:  scores,
	}, nil
}

// Game returns the top raw scores for one game. A user may occupy
// several slots; equal scores keep their insertion order.
func (s *Service) Game(gameID string, limit int) ([]GameEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	entries := []GameEntry{}
	err := s.db.Select(&entries, `
	SELECT username, score, played_at
	FROM game_scores
	WHERE game_id = ?
	ORDER BY score DESC, rowid ASC
	LIMIT ?
	`, gameID, limit)
	if err != nil {
		return nil, err
	}

	return entries, nil
}
