package audit

import (
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"gaming-hub/internal/logger"
)

type Service struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Service {
	return &Service{db: db}
}

// Log is fire-and-forget: an audit failure never fails the request.
func (s *Service) Log(userID, action, metadata string) {
	_, err := s.db.Exec(`
	INSERT INTO audit_logs(user_id, action, metadata, created_at)
	VALUES (?, ?, ?, ?)
	`, userID, action, metadata, time.Now().Unix())

	if err != nil {
		logger.Log.Warn("audit write failed",
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
