// Package ledger holds the pure movement math: balances, summary
// totals, interest accrual, sorting, and classification. Functions here
// never mutate their inputs; mutation is the store's job.
package ledger

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Movement is a single signed ledger entry. Amount > 0 is a deposit,
// Amount < 0 a withdrawal. Date is captured at the instant the movement
// is applied.
type Movement struct {
	Amount decimal.Decimal
	Date   time.Time
}

// Kind classifies a movement for display.
type Kind string

const (
	Deposit    Kind = "deposit"
	Withdrawal Kind = "withdrawal"
)

// Classify returns Deposit for strictly positive amounts and
// Withdrawal otherwise, so a zero amount counts as a withdrawal.
func Classify(m Movement) Kind {
	if m.Amount.IsPositive() {
		return Deposit
	}
	return Withdrawal
}

// Summary bundles the derived values recomputed after every mutation.
type Summary struct {
	Balance     decimal.Decimal
	Deposits    decimal.Decimal
	Withdrawals decimal.Decimal
	Interest    decimal.Decimal
}

// Balance sums all movement amounts.
func Balance(movements []Movement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		total = total.Add(m.Amount)
	}
	return total
}

// TotalDeposits sums the strictly positive movement amounts.
func TotalDeposits(movements []Movement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if m.Amount.IsPositive() {
			total = total.Add(m.Amount)
		}
	}
	return total
}

// TotalWithdrawals returns the absolute value of the sum of strictly
// negative movement amounts. Zero amounts count toward neither total.
func TotalWithdrawals(movements []Movement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if m.Amount.IsNegative() {
			total = total.Add(m.Amount)
		}
	}
	return total.Abs()
}

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// TotalInterest accrues rate% on each deposit individually and sums the
// contributions. A single deposit's interest below 1 is not paid at
// all; the threshold applies per deposit, not to the summed total.
func TotalInterest(movements []Movement, rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if !m.Amount.IsPositive() {
			continue
		}
		contribution := m.Amount.Mul(rate).Div(hundred)
		if contribution.LessThan(one) {
			continue
		}
		total = total.Add(contribution)
	}
	return total
}

// Sorted returns a copy of movements ordered by ascending amount. The
// input slice is never reordered. The sort is stable, so movements with
// equal amounts keep their chronological order.
func Sorted(movements []Movement) []Movement {
	out := make([]Movement, len(movements))
	copy(out, movements)
	slices.SortStableFunc(out, func(a, b Movement) int {
		return a.Amount.Cmp(b.Amount)
	})
	return out
}

// Summarize recomputes every derived value for an account's movements.
func Summarize(movements []Movement, interestRate decimal.Decimal) Summary {
	return Summary{
		Balance:     Balance(movements),
		Deposits:    TotalDeposits(movements),
		Withdrawals: TotalWithdrawals(movements),
		Interest:    TotalInterest(movements, interestRate),
	}
}
