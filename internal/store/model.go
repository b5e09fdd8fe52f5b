package store

import (
	"strings"
	"time"
	"unicode"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/mcintyrejak/bankist/internal/ledger"
)

// Account is an account record. Owner, Username, PIN, InterestRate and
// Currency are fixed at registration; Movements is append only and
// Balance is a cache of the movement sum, refreshed on every mutation.
type Account struct {
	ID           uuid.UUID
	Owner        string
	Username     string
	PIN          int
	InterestRate decimal.Decimal
	Currency     string
	Movements    []ledger.Movement
	Balance      decimal.Decimal
}

// FirstName returns the first word of the owner's display name, used
// for the welcome message.
func (a *Account) FirstName() string {
	fields := strings.Fields(a.Owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// SeedAccount is the static configuration an account is registered
// from. Movement dates are paired with amounts by index.
type SeedAccount struct {
	Owner        string
	PIN          int
	InterestRate decimal.Decimal
	Currency     string
	Movements    []ledger.Movement
}

// SeedMovement pairs an amount with its date for seed data.
func SeedMovement(amount string, date time.Time) ledger.Movement {
	return ledger.Movement{Amount: decimal.RequireFromString(amount), Date: date}
}

// UsernameFor derives the login username from an owner's display name:
// the lowercase first letter of each whitespace-separated word,
// concatenated in order ("Jamie McIntyre" becomes "jm").
func UsernameFor(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(owner) {
		for _, r := range word {
			b.WriteRune(unicode.ToLower(r))
			break
		}
	}
	return b.String()
}
