package leaderboard

import "time"

type Entry struct {
	UserID       string  `db:"user_id" json:"userId"`
	Username     string  `db:"username" json:"username"`
	TotalScore   int     `db:"total_score" json:"totalScore"`
	GamesPlayed  int     `db:"games_played" json:"gamesPlayed"`
	AverageScore float64 `db:"average_score" json:"averageScore"`
}

type GameScore struct {
	GameID   string    `db:"game_id" json:"gameId"`
	GameName string    `db:"game_name" json:"gameName"`
	Score    int       `db:"score" json:"score"`
	PlayedAt time.Time `db:"played_at" json:"playedAt"`
}

type Standing struct {
	UserID      string      `json:"userId"`
	TotalScore  int         `json:"totalScore"`
	GlobalRank  int         `json:"globalRank"`
	GamesPlayed int         `json:"gamesPlayed"`
	GameScores  []GameScore `json:"gameScores"`
}

type GameEntry struct {
	Username string    `db:"username" json:"username"`
	Score    int       `db:"score" json:"score"`
	PlayedAt time.Time `db:"played_at" json:"playedAt"`
}
