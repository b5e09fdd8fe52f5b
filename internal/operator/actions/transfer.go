package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mcintyrejak/bankist/internal/ledger"
	"github.com/mcintyrejak/bankist/internal/store"
)

// Transfer moves Amount from the sender to the recipient as one atomic
// step: a debit on the sender and a matching credit on the recipient,
// both stamped with the same instant.
type Transfer struct {
	FromUsername string
	ToUsername   string
	Amount       decimal.Decimal

	IAction
}

func (t *Transfer) Perform(ctx context.Context, st *store.Store) error {
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	recipient, ok := st.FindByUsername(t.ToUsername)
	if !ok {
		return ErrRecipientNotFound
	}
	if recipient.Username == t.FromUsername {
		return ErrSelfTransfer
	}

	sender, ok := st.FindByUsername(t.FromUsername)
	if !ok {
		return ErrAccountNotFound
	}
	// Check against the movement sum, not the cached balance.
	if ledger.Balance(sender.Movements).LessThan(t.Amount) {
		return ErrInsufficientFunds
	}

	if !st.AppendTransfer(t.FromUsername, t.ToUsername, t.Amount, time.Now()) {
		return ErrAccountNotFound
	}
	return nil
}
