package postgres

import (
	"context"
	"database/sql"
	"errors"

	"shopbot/internal/domain"
)

const userColumns = `id, external_id, display_name, username, phone_number, language, active, created_at, updated_at`

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	var lang string
	err := row.Scan(
		&u.ID, &u.ExternalID, &u.DisplayName, &u.Username, &u.PhoneNumber,
		&lang, &u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Language = domain.Language(lang)
	return &u, nil
}

// GetOrCreate inserts the user unless one with the same external id exists.
// The returned flag is true when a new row was created.
func (r *UserRepo) GetOrCreate(ctx context.Context, user *domain.User) (*domain.User, bool, error) {
	lang := user.Language
	if !lang.IsValid() {
		lang = domain.DefaultLanguage
	}

	query := `
		INSERT INTO users (external_id, display_name, username, language)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (external_id) DO NOTHING
		RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRowContext(ctx, query,
		user.ExternalID, user.DisplayName, user.Username, string(lang),
	))
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, err
	}

	// Conflict: the user already exists
	existing, err := r.GetByExternalID(ctx, user.ExternalID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// GetByExternalID returns the user bound to a chat account
func (r *UserRepo) GetByExternalID(ctx context.Context, externalID int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE external_id = $1`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, externalID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// SetPhone stores the phone number shared by the user
func (r *UserRepo) SetPhone(ctx context.Context, externalID int64, phone string) error {
	query := `
		UPDATE users
		SET phone_number = $2, updated_at = NOW()
		WHERE external_id = $1
	`
	return r.execOne(ctx, query, externalID, phone)
}

// SetLanguage stores the preferred interface language
func (r *UserRepo) SetLanguage(ctx context.Context, externalID int64, lang domain.Language) error {
	query := `
		UPDATE users
		SET language = $2, updated_at = NOW()
		WHERE external_id = $1
	`
	return r.execOne(ctx, query, externalID, string(lang))
}

// ToggleActive flips the active flag and returns the new value
func (r *UserRepo) ToggleActive(ctx context.Context, externalID int64) (bool, error) {
	query := `
		UPDATE users
		SET active = NOT active, updated_at = NOW()
		WHERE external_id = $1
		RETURNING active
	`
	var active bool
	err := r.db.QueryRowContext(ctx, query, externalID).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) {
		return false, domain.ErrUserNotFound
	}
	return active, err
}

func (r *UserRepo) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
