package service

import "errors"

var (
	// ErrNotLoggedIn is returned when an intent requires an active
	// session and there is none.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrAlreadyLoggedIn is returned when login is attempted while an
	// account is active; there is no account-switching transition.
	ErrAlreadyLoggedIn = errors.New("already logged in")
	// ErrInvalidCredentials is returned when login resolves no account.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
