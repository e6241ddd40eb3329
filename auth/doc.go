// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential hashing and one-time-password helpers.

# Passwords

Passwords are stored as salted bcrypt hashes, never as raw values:

	hash, err := auth.HashPassword(raw)
	ok := auth.CheckPassword(raw, hash)

CheckPassword is a constant-time comparison via bcrypt. Each call to
HashPassword produces a different hash for the same input (random salt), so
equality of hashes is never meaningful; only CheckPassword is.

# One-Time Passwords

The user table carries otp/otp_expiration columns for the verification flow:

	otp, exp, err := auth.GenerateOTP()
	ok := auth.OTPValid(submitted, user.OTP, user.OTPExpiration, time.Now())

OTPs are 6 crypto/rand digits and expire after OTPTTL (10 minutes). Sending
the OTP (mail, SMS) belongs to the application layer, not this repository.
*/
package auth
