package actions

import "errors"

// Every action fails closed: when one of these comes back, no account
// was touched.
var (
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrRecipientNotFound  = errors.New("recipient account not found")
	ErrSelfTransfer       = errors.New("cannot transfer to own account")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrLoanDenied         = errors.New("loan denied")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
)
