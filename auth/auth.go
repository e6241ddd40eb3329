// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("password must not be empty")

// OTPTTL is how long a one-time password stays valid after issuance.
const OTPTTL = 10 * time.Minute

// HashPassword derives a salted bcrypt hash from a raw password.
// The raw value is never stored; the hash fits the 256-char column.
func HashPassword(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether raw matches the stored hash.
func CheckPassword(raw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}

// GenerateOTP creates a random 6-digit one-time password for the
// verification flow, with its expiration time.
func GenerateOTP() (otp string, expiration time.Time, err error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), time.Now().Add(OTPTTL), nil
}

// OTPValid reports whether a submitted OTP matches the stored one and has
// not expired. A nil stored value or expiration means no OTP is pending.
func OTPValid(submitted string, stored *string, expiration *time.Time, now time.Time) bool {
	if stored == nil || expiration == nil {
		return false
	}
	if now.After(*expiration) {
		return false
	}
	return submitted == *stored
}
