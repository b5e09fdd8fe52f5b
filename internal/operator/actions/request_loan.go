package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mcintyrejak/bankist/internal/ledger"
	"github.com/mcintyrejak/bankist/internal/store"
)

var ten = decimal.NewFromInt(10)

// RequestLoan credits the floored requested amount to the account when
// the bank's rule holds: at least one existing movement must be worth
// 10% of the request. Negative movements are scanned too but can never
// satisfy the inequality for a positive request.
type RequestLoan struct {
	Username string
	Amount   decimal.Decimal

	IAction
}

func (l *RequestLoan) Perform(ctx context.Context, st *store.Store) error {
	// Fractional requests truncate toward negative infinity.
	amount := l.Amount.Floor()
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	account, ok := st.FindByUsername(l.Username)
	if !ok {
		return ErrAccountNotFound
	}

	threshold := amount.Div(ten)
	approved := false
	for _, m := range account.Movements {
		if m.Amount.GreaterThanOrEqual(threshold) {
			approved = true
			break
		}
	}
	if !approved {
		return ErrLoanDenied
	}

	if !st.AppendMovement(l.Username, ledger.Movement{Amount: amount, Date: time.Now()}) {
		return ErrAccountNotFound
	}
	return nil
}
