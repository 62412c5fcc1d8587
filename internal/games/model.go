package games

import "time"

// ScoreRecord is immutable once written: there is no update path,
// only owner-initiated deletion. Username is denormalized at play
// time and does not follow later renames.
type ScoreRecord struct {
	ID       string    `db:"id" json:"id"`
	UserID   string    `db:"user_id" json:"userId"`
	Username string    `db:"username" json:"username"`
	GameID   string    `db:"game_id" json:"gameId"`
	GameName string    `db:"game_name" json:"gameName"`
	Score    int       `db:"score" json:"score"`
	PlayedAt time.Time `db:"played_at" json:"playedAt"`
}
