package service

import (
	"context"
	"fmt"
	"strings"

	"shopbot/internal/domain"
	"shopbot/internal/repository"
)

// SessionService binds chat identities to shop users
type SessionService struct {
	userRepo repository.UserRepository
}

// NewSessionService creates a new session service
func NewSessionService(userRepo repository.UserRepository) *SessionService {
	return &SessionService{userRepo: userRepo}
}

// ResolveUser returns the user bound to externalID, creating it on first contact.
// The flag is true when the user was just created.
func (s *SessionService) ResolveUser(ctx context.Context, externalID int64, displayName, username string) (*domain.User, bool, error) {
	user, isNew, err := s.userRepo.GetOrCreate(ctx, &domain.User{
		ExternalID:  externalID,
		DisplayName: displayName,
		Username:    username,
		Language:    domain.DefaultLanguage,
		Active:      true,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve user %d: %w", externalID, err)
	}
	return user, isNew, nil
}

// Load resolves the acting user and builds the session for one event
func (s *SessionService) Load(ctx context.Context, externalID int64, displayName, username string) (*domain.Session, error) {
	user, isNew, err := s.ResolveUser(ctx, externalID, displayName, username)
	if err != nil {
		return nil, err
	}
	return domain.NewSession(user, isNew), nil
}

// BindContact stores the phone number from a shared contact.
// Only the user's own contact card is accepted.
func (s *SessionService) BindContact(ctx context.Context, sess *domain.Session, ownerID int64, phone string) error {
	if ownerID != sess.ExternalID {
		return domain.ErrContactMismatch
	}

	phone = strings.TrimSpace(phone)
	if err := s.userRepo.SetPhone(ctx, sess.ExternalID, phone); err != nil {
		return fmt.Errorf("failed to save phone: %w", err)
	}

	if sess.User != nil {
		sess.User.PhoneNumber = phone
	}
	return nil
}

// SetLanguage changes the user's language and applies it to the current session
func (s *SessionService) SetLanguage(ctx context.Context, sess *domain.Session, code string) error {
	lang, err := domain.ParseLanguage(code)
	if err != nil {
		return err
	}

	if err := s.userRepo.SetLanguage(ctx, sess.ExternalID, lang); err != nil {
		return fmt.Errorf("failed to save language: %w", err)
	}

	sess.Language = lang
	if sess.User != nil {
		sess.User.Language = lang
	}
	return nil
}

// GetUser returns a user by chat identity
func (s *SessionService) GetUser(ctx context.Context, externalID int64) (*domain.User, error) {
	return s.userRepo.GetByExternalID(ctx, externalID)
}

// ToggleActive flips the user's active flag
func (s *SessionService) ToggleActive(ctx context.Context, externalID int64) (bool, error) {
	return s.userRepo.ToggleActive(ctx, externalID)
}
