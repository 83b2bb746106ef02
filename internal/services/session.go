package services

import (
	"errors"
	"time"

	"shortly/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionTTL controls how long an issued session stays valid.
const SessionTTL = 30 * 24 * time.Hour

// ErrNoSession means the token is absent, unknown or expired.
var ErrNoSession = errors.New("no valid session")

type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

// Issue creates a session row for userID and returns it with a fresh opaque
// token.
func (s *SessionService) Issue(userID uint) (*models.Session, error) {
	sess := models.Session{
		SessionToken: uuid.NewString(),
		UserID:       userID,
		Expires:      time.Now().Add(SessionTTL),
	}
	if err := s.db.Create(&sess).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

// Resolve maps a session token to its user id. Expired rows are removed
// lazily on resolution.
func (s *SessionService) Resolve(token string) (uint, error) {
	if token == "" {
		return 0, ErrNoSession
	}

	var sess models.Session
	if err := s.db.Where("session_token = ?", token).First(&sess).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNoSession
		}
		return 0, err
	}

	if sess.Expired(time.Now()) {
		s.db.Delete(&models.Session{}, sess.ID)
		return 0, ErrNoSession
	}

	return sess.UserID, nil
}

// Revoke deletes the session row for a token. Revoking an unknown token is
// not an error.
func (s *SessionService) Revoke(token string) error {
	return s.db.Where("session_token = ?", token).Delete(&models.Session{}).Error
}
