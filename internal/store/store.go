// Package store is the in-memory account collection. Nothing is
// persisted; the process owns the only copy of the data and every
// method takes the store lock, so readers always see an account in a
// consistent state. Lookups return deep copies, never internal
// pointers.
package store

import (
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/mcintyrejak/bankist/internal/ledger"
)

// Store holds the registered accounts.
type Store struct {
	mu       sync.RWMutex
	accounts []*Account
}

// New creates a store and registers the given seed accounts.
func New(seed []SeedAccount) *Store {
	s := &Store{}
	s.Register(seed)
	return s
}

// Register adds accounts from seed configuration, deriving each
// username from the owner name. A seed whose username is already
// registered is skipped, so re-running registration is idempotent.
func (s *Store) Register(seed []SeedAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sa := range seed {
		username := UsernameFor(sa.Owner)
		if s.find(username) != nil {
			continue
		}

		movements := make([]ledger.Movement, len(sa.Movements))
		copy(movements, sa.Movements)

		account := &Account{
			ID:           uuid.Must(uuid.NewV4()),
			Owner:        sa.Owner,
			Username:     username,
			PIN:          sa.PIN,
			InterestRate: sa.InterestRate,
			Currency:     sa.Currency,
			Movements:    movements,
			Balance:      ledger.Balance(movements),
		}
		s.accounts = append(s.accounts, account)
	}
}

// find returns the first account with the given username. Callers must
// hold the lock.
func (s *Store) find(username string) *Account {
	for _, a := range s.accounts {
		if a.Username == username {
			return a
		}
	}
	return nil
}

// FindByUsername returns a snapshot of the first account with the
// given username.
func (s *Store) FindByUsername(username string) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a := s.find(username)
	if a == nil {
		return Account{}, false
	}
	return snapshot(a), true
}

// FindByCredentials returns a snapshot of the account matching both
// username and pin.
func (s *Store) FindByCredentials(username string, pin int) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a := s.find(username)
	if a == nil || a.PIN != pin {
		return Account{}, false
	}
	return snapshot(a), true
}

// Remove deletes the first account with the given username. It reports
// whether an account was removed.
func (s *Store) Remove(username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.accounts {
		if a.Username == username {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return true
		}
	}
	return false
}

// AppendMovement appends a movement to the named account and refreshes
// its balance cache. It reports whether the account exists.
func (s *Store) AppendMovement(username string, m ledger.Movement) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.find(username)
	if a == nil {
		return false
	}
	a.Movements = append(a.Movements, m)
	a.Balance = ledger.Balance(a.Movements)
	return true
}

// AppendTransfer applies a debit to the sender and a matching credit to
// the recipient under one lock acquisition with one shared timestamp,
// so no reader can observe the funds in flight. Both accounts must
// exist; otherwise nothing is applied.
func (s *Store) AppendTransfer(fromUsername, toUsername string, amount decimal.Decimal, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := s.find(fromUsername)
	to := s.find(toUsername)
	if from == nil || to == nil {
		return false
	}

	from.Movements = append(from.Movements, ledger.Movement{Amount: amount.Neg(), Date: at})
	to.Movements = append(to.Movements, ledger.Movement{Amount: amount, Date: at})
	from.Balance = ledger.Balance(from.Movements)
	to.Balance = ledger.Balance(to.Movements)
	return true
}

// List returns snapshots of every registered account in registration
// order.
func (s *Store) List() []Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Account, len(s.accounts))
	for i, a := range s.accounts {
		out[i] = snapshot(a)
	}
	return out
}

// Len returns the number of registered accounts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

// snapshot deep-copies an account so callers cannot reach the store's
// internal movement slice.
func snapshot(a *Account) Account {
	cp := *a
	cp.Movements = make([]ledger.Movement, len(a.Movements))
	copy(cp.Movements, a.Movements)
	return cp
}
