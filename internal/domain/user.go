package domain

import "time"

// User represents a shop customer identified by their chat account
type User struct {
	ID          int64
	ExternalID  int64
	DisplayName string
	Username    string
	PhoneNumber string
	Language    Language
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasPhone reports whether the user already shared a contact
func (u *User) HasPhone() bool {
	return u.PhoneNumber != ""
}

// Session is the per-event context of the acting user.
// It is loaded when an event arrives and discarded after the reply.
type Session struct {
	UserID     int64
	ExternalID int64
	Language   Language
	IsNew      bool
	User       *User
}

// NewSession builds a session for the given user
func NewSession(u *User, isNew bool) *Session {
	lang := u.Language
	if !lang.IsValid() {
		lang = DefaultLanguage
	}
	return &Session{
		UserID:     u.ID,
		ExternalID: u.ExternalID,
		Language:   lang,
		IsNew:      isNew,
		User:       u,
	}
}
