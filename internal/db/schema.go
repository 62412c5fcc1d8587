package db

import "github.com/jmoiron/sqlx"

func Migrate(db *sqlx.DB) {
	db.Exec(`
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		avatar TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		last_login DATETIME NOT NULL
	);`)

	db.Exec(`
	CREATE TABLE IF NOT EXISTS game_scores (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		username TEXT NOT NULL,
		game_id TEXT NOT NULL,
		game_name TEXT NOT NULL,
		score INTEGER NOT NULL,
		played_at DATETIME NOT NULL
	);`)

	db.Exec(`CREATE INDEX IF NOT EXISTS idx_scores_user ON game_scores(user_id, played_at);`)
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_scores_game ON game_scores(game_id, score);`)

	db.Exec(`
	CREATE TABLE IF NOT EXISTS audit_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT,
		action TEXT,
		metadata TEXT,
		created_at INTEGER
	);`)
}
