// Package service holds the session controller: the single mutable
// piece of state between the HTTP surface and the account store. There
// is exactly one interactive user in this bank, so there is exactly one
// session.
package service

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/mcintyrejak/bankist/internal/ledger"
	"github.com/mcintyrejak/bankist/internal/operator"
	"github.com/mcintyrejak/bankist/internal/operator/actions"
	"github.com/mcintyrejak/bankist/internal/store"
)

// Session is a two-state machine: logged out, or logged in to exactly
// one account. Switching accounts requires an explicit logout first.
// Mutations are handed to the operator; derived values are always
// recomputed from a fresh store snapshot, never from state captured at
// login.
type Session struct {
	store    *store.Store
	operator *operator.OperatorDelegator

	mu      sync.Mutex
	current *store.Account
}

func NewSession(st *store.Store, op *operator.OperatorDelegator) *Session {
	return &Session{
		store:    st,
		operator: op,
	}
}

// Login resolves the credentials and activates the account. A failed
// login leaves the session logged out; a login while already logged in
// is rejected, matching the no-account-switching rule.
func (s *Session) Login(username string, pin int) (store.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		return store.Account{}, ErrAlreadyLoggedIn
	}

	account, ok := s.store.FindByCredentials(username, pin)
	if !ok {
		return store.Account{}, ErrInvalidCredentials
	}

	s.current = &account
	return account, nil
}

// Logout deactivates the session unconditionally.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// LoggedIn reports whether an account is active.
func (s *Session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Account returns a fresh snapshot of the active account.
func (s *Session) Account() (store.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.freshSnapshot()
}

// Movements returns the active account's movement list, optionally
// sorted ascending by amount. The underlying history is untouched
// either way.
func (s *Session) Movements(sorted bool) ([]ledger.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.freshSnapshot()
	if err != nil {
		return nil, err
	}
	if sorted {
		return ledger.Sorted(account.Movements), nil
	}
	return account.Movements, nil
}

// Summary recomputes the active account's derived values.
func (s *Session) Summary() (ledger.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.freshSnapshot()
	if err != nil {
		return ledger.Summary{}, err
	}
	return ledger.Summarize(account.Movements, account.InterestRate), nil
}

// Transfer moves funds from the active account to the named recipient
// and returns the recomputed summary.
func (s *Session) Transfer(ctx context.Context, toUsername string, amount decimal.Decimal) (ledger.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ledger.Summary{}, ErrNotLoggedIn
	}

	action := &actions.Transfer{
		FromUsername: s.current.Username,
		ToUsername:   toUsername,
		Amount:       amount,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return ledger.Summary{}, err
	}
	return s.summaryLocked()
}

// RequestLoan asks the bank for a loan on the active account and
// returns the recomputed summary on approval.
func (s *Session) RequestLoan(ctx context.Context, amount decimal.Decimal) (ledger.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ledger.Summary{}, ErrNotLoggedIn
	}

	action := &actions.RequestLoan{
		Username: s.current.Username,
		Amount:   amount,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return ledger.Summary{}, err
	}
	return s.summaryLocked()
}

// CloseAccount removes the active account after the user confirms its
// username and pin, then logs out. A failed confirmation leaves both
// the store and the session untouched.
func (s *Session) CloseAccount(ctx context.Context, confirmUsername string, confirmPIN int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNotLoggedIn
	}

	action := &actions.CloseAccount{
		Username:        s.current.Username,
		ConfirmUsername: confirmUsername,
		ConfirmPIN:      confirmPIN,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return err
	}

	s.current = nil
	return nil
}

// freshSnapshot re-reads the active account from the store so derived
// values reflect every mutation. Callers must hold s.mu.
func (s *Session) freshSnapshot() (store.Account, error) {
	if s.current == nil {
		return store.Account{}, ErrNotLoggedIn
	}
	account, ok := s.store.FindByUsername(s.current.Username)
	if !ok {
		return store.Account{}, actions.ErrAccountNotFound
	}
	return account, nil
}

func (s *Session) summaryLocked() (ledger.Summary, error) {
	account, err := s.freshSnapshot()
	if err != nil {
		return ledger.Summary{}, err
	}
	return ledger.Summarize(account.Movements, account.InterestRate), nil
}
