// Package common defines shared sentinel errors used across gallerie
// components. Callers should use errors.Is to match these values. Error
// texts follow the Go lowercase convention; the presentation layer owns the
// exact user-facing wording and casing ("Email already exists", "Invalid
// email or password").
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Business-rule rejections. These are returned, never panicked.
	// ErrInvalidCredentials is deliberately identical for unknown email
	// and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")

	// Session errors.
	ErrNotLoggedIn = errors.New("not logged in")

	// Validation errors.
	ErrInvalidCategory = errors.New("invalid category")
)
