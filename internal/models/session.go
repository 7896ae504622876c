package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionLifetime is how long a session stays valid after login.
const SessionLifetime = 30 * 24 * time.Hour

// Session maps an opaque token to the user that logged in with it.
type Session struct {
	DefaultModel
	Token     string `gorm:"uniqueIndex"`
	UserID    uuid.UUID
	User      User `gorm:"constraint:OnDelete:CASCADE"`
	ExpiresAt time.Time
}

// NewSession creates a session for the user.
func NewSession(db *gorm.DB, userID uuid.UUID) (Session, error) {
	session := Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(SessionLifetime).In(time.UTC),
	}

	err := db.Omit("User").Create(&session).Error
	return session, err
}

// SessionUser resolves the user ID for a session token.
// Unknown and expired tokens are reported as ErrUnauthenticated.
func SessionUser(db *gorm.DB, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, ErrUnauthenticated
	}

	var sessions []Session
	err := db.Where("token = ?", token).Where("expires_at > ?", time.Now().In(time.UTC)).Limit(1).Find(&sessions).Error
	if err != nil {
		return uuid.Nil, err
	}

	if len(sessions) == 0 {
		return uuid.Nil, ErrUnauthenticated
	}

	return sessions[0].UserID, nil
}

// EndSession deletes the session with the token.
func EndSession(db *gorm.DB, token string) error {
	return db.Where("token = ?", token).Delete(&Session{}).Error
}
