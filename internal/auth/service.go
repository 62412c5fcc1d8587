package auth

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"gaming-hub/internal/event"
	"gaming-hub/internal/monitoring"
)

var (
	ErrUserExists         = errors.New("user with this email or username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
)

type Service struct {
	db     *sqlx.DB
	tokens *Tokens
	bus    *event.Bus
}

func New(db *sqlx.DB, tokens *Tokens, bus *event.Bus) *Service {
	return &Service{db: db, tokens: tokens, bus: bus}
}

func (s *Service) Register(username, email, password string) (*User, string, error) {
	var count int
	err := s.db.Get(&count, `SELECT COUNT(*) FROM users WHERE email = ? OR username = ?`, email, username)
	if err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		LastLogin:    now,
	}

	_, err = s.db.Exec(`
	INSERT INTO users(id, username, email, password_hash, avatar, created_at, last_login)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`, user.ID, user.Username, user.Email, user.PasswordHash, user.Avatar, user.CreatedAt, user.LastLogin)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	monitoring.UsersRegistered.Inc()
	s.bus.Publish(event.EventUserRegistered, user)

	return user, token, nil
}

func (s *Service) Login(email, password string) (*User, string, error) {
	var user User
	err := s.db.Get(&user, `
	SELECT id, username, email, password_hash, avatar, created_at, last_login
	FROM users WHERE email = ?
	`, email)
	if err == sql.ErrNoRows {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	user.LastLogin = time.Now().UTC()
	s.db.Exec(`UPDATE users SET last_login = ? WHERE id = ?`, user.LastLogin, user.ID)

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

func (s *Service) Me(userID string) (*User, error) {
	var user User
	err := s.db.Get(&user, `
	SELECT id, username, email, password_hash, avatar, created_at, last_login
	FROM users WHERE id = ?
	`, userID)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangeUsername renames the user and re-issues a token carrying the new
// name. Score records written before the rename keep the old username.
func (s *Service) ChangeUsername(userID, newUsername string) (*User, string, error) {
	var takenBy string
	err := s.db.Get(&takenBy, `SELECT id FROM users WHERE username = ?`, newUsername)
	if err != nil && err != sql.ErrNoRows {
		return nil, "", err
	}
	if err == nil && takenBy != userID {
		return nil, "", ErrUsernameTaken
	}

	res, err := s.db.Exec(`UPDATE users SET username = ? WHERE id = ?`, newUsername, userID)
	if err != nil {
		return nil, "", err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, "", ErrUserNotFound
	}

	user, err := s.Me(userID)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
