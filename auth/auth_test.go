// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"testing"
	"time"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "s3cret-password" {
		t.Error("HashPassword() stored the raw password")
	}
	if len(hash) > 256 {
		t.Errorf("HashPassword() length = %d, exceeds password_hash column", len(hash))
	}

	// Same input must produce a different hash (random salt)
	hash2, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == hash2 {
		t.Error("HashPassword() produced identical hashes for two calls")
	}
}

func TestHashPasswordEmpty(t *testing.T) {
	if _, err := HashPassword(""); err != ErrEmptyPassword {
		t.Errorf("HashPassword(\"\") error = %v, want ErrEmptyPassword", err)
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !CheckPassword("correct horse battery staple", hash) {
		t.Error("CheckPassword() = false for the matching password")
	}
	if CheckPassword("wrong password", hash) {
		t.Error("CheckPassword() = true for a non-matching password")
	}
	if CheckPassword("correct horse battery staple", "not-a-bcrypt-hash") {
		t.Error("CheckPassword() = true for a garbage hash")
	}
}

func TestGenerateOTP(t *testing.T) {
	otp, exp, err := GenerateOTP()
	if err != nil {
		t.Fatalf("GenerateOTP() error = %v", err)
	}
	if len(otp) != 6 {
		t.Errorf("GenerateOTP() length = %d, want 6", len(otp))
	}
	for _, c := range otp {
		if c < '0' || c > '9' {
			t.Errorf("GenerateOTP() contains non-digit: %c", c)
		}
	}
	if remaining := time.Until(exp); remaining <= 0 || remaining > OTPTTL {
		t.Errorf("GenerateOTP() expiration %v outside (now, now+OTPTTL]", exp)
	}
}

func TestOTPValid(t *testing.T) {
	now := time.Now()
	otp := "123456"
	future := now.Add(5 * time.Minute)
	past := now.Add(-time.Minute)

	tests := []struct {
		name       string
		submitted  string
		stored     *string
		expiration *time.Time
		want       bool
	}{
		{"match before expiry", "123456", &otp, &future, true},
		{"wrong code", "654321", &otp, &future, false},
		{"expired", "123456", &otp, &past, false},
		{"no otp pending", "123456", nil, &future, false},
		{"no expiration set", "123456", &otp, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OTPValid(tt.submitted, tt.stored, tt.expiration, now); got != tt.want {
				t.Errorf("OTPValid() = %v, want %v", got, tt.want)
			}
		})
	}
}
