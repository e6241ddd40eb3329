// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/aparna-ranjan/usr-annotate/auth"
	"github.com/aparna-ranjan/usr-annotate/models"
)

// CreateUser inserts a user with a freshly hashed password. The raw
// password never reaches the database. Role and status start at their
// 'pending' defaults.
func (s *Store) CreateUser(ctx context.Context, name, email, password string, languages []string, organization *string) (models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	if len(languages) == 0 {
		languages = []string{models.DefaultLanguage}
	}

	u := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Languages:    languages,
		Organization: organization,
	}

	err = s.db.QueryRowContext(ctx, `
		INSERT INTO "user" (name, email, password_hash, languages, organization)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, role, status, created_at, updated_at
	`, name, email, hash, pq.Array(languages), organization).Scan(
		&u.ID, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return u, nil
}

// SetPassword rehashes and stores a new password for the user.
func (s *Store) SetPassword(ctx context.Context, userID int64, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE "user" SET password_hash = $1, updated_at = NOW() WHERE id = $2
	`, hash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return oneRow(res)
}

// CheckPassword reports whether the password matches the user's stored hash.
func (s *Store) CheckPassword(ctx context.Context, userID int64, password string) (bool, error) {
	var hash string
	err := s.db.QueryRowContext(ctx, `
		SELECT password_hash FROM "user" WHERE id = $1
	`, userID).Scan(&hash)
	if err == sql.ErrNoRows {
		return false, ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to query user: %w", err)
	}
	return auth.CheckPassword(password, hash), nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	return s.getUser(ctx, `WHERE id = $1`, id)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.getUser(ctx, `WHERE email = $1`, email)
}

func (s *Store) getUser(ctx context.Context, where string, arg any) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, role, languages, organization,
		       status, otp, otp_expiration, created_at, updated_at
		FROM "user" `+where,
		arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		pq.Array(&u.Languages), &u.Organization, &u.Status,
		&u.OTP, &u.OTPExpiration, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

// ListUsersByRole returns all users with the given role, newest first.
func (s *Store) ListUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, password_hash, role, languages, organization,
		       status, otp, otp_expiration, created_at, updated_at
		FROM "user"
		WHERE role = $1
		ORDER BY created_at DESC
	`, role)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
			pq.Array(&u.Languages), &u.Organization, &u.Status,
			&u.OTP, &u.OTPExpiration, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateUserRole moves a user to a new role (e.g. pending -> annotator).
func (s *Store) UpdateUserRole(ctx context.Context, userID int64, role string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE "user" SET role = $1, updated_at = NOW() WHERE id = $2
	`, role, userID)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return oneRow(res)
}

// UpdateUserStatus activates or disables an account.
func (s *Store) UpdateUserStatus(ctx context.Context, userID int64, status string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE "user" SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, userID)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	return oneRow(res)
}

// SetOTP stores a one-time password and its expiration for the user.
func (s *Store) SetOTP(ctx context.Context, userID int64, otp string, expiration time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE "user" SET otp = $1, otp_expiration = $2, updated_at = NOW() WHERE id = $3
	`, otp, expiration, userID)
	if err != nil {
		return fmt.Errorf("failed to set OTP: %w", err)
	}
	return oneRow(res)
}

// ClearOTP removes any pending one-time password.
func (s *Store) ClearOTP(ctx context.Context, userID int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE "user" SET otp = NULL, otp_expiration = NULL, updated_at = NOW() WHERE id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear OTP: %w", err)
	}
	return oneRow(res)
}

// oneRow maps a zero-row update/delete to ErrNotFound.
func oneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
