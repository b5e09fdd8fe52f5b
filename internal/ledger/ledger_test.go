package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func makeMovements(amounts ...string) []Movement {
	base := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	movements := make([]Movement, len(amounts))
	for i, a := range amounts {
		movements[i] = Movement{
			Amount: decimal.RequireFromString(a),
			Date:   base.Add(time.Duration(i) * 24 * time.Hour),
		}
	}
	return movements
}

// -- Balance tests --

func TestBalance(t *testing.T) {
	movements := makeMovements("200", "450", "-400", "3000", "-650", "-130", "70", "1300")

	assert.True(t, decimal.RequireFromString("3840").Equal(Balance(movements)))
}

func TestBalance_Empty(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(Balance(nil)))
}

// -- Totals tests --

func TestTotalDeposits(t *testing.T) {
	movements := makeMovements("200", "-200", "340", "-300", "-20", "50", "400", "-460")

	assert.True(t, decimal.RequireFromString("990").Equal(TotalDeposits(movements)))
}

func TestTotalWithdrawals_IsAbsolute(t *testing.T) {
	movements := makeMovements("200", "-200", "340", "-300", "-20", "50", "400", "-460")

	assert.True(t, decimal.RequireFromString("980").Equal(TotalWithdrawals(movements)))
}

func TestTotals_ZeroMovementExcludedFromBoth(t *testing.T) {
	movements := makeMovements("100", "0", "-40")

	assert.True(t, decimal.RequireFromString("100").Equal(TotalDeposits(movements)))
	assert.True(t, decimal.RequireFromString("40").Equal(TotalWithdrawals(movements)))
}

func TestTotals_DepositsMinusWithdrawalsEqualsBalance(t *testing.T) {
	movements := makeMovements("5000", "3400", "-150", "-790", "-3210", "-1000", "8500", "-30")

	diff := TotalDeposits(movements).Sub(TotalWithdrawals(movements))
	assert.True(t, Balance(movements).Equal(diff))
}

// -- Interest tests --

func TestTotalInterest(t *testing.T) {
	movements := makeMovements("1000", "-50")
	rate := decimal.RequireFromString("1.5")

	// 1000 * 1.5 / 100 = 15, above the per-deposit threshold.
	assert.True(t, decimal.RequireFromString("15").Equal(TotalInterest(movements, rate)))
}

func TestTotalInterest_DiscardsContributionsBelowOne(t *testing.T) {
	// 50 * 1.5 / 100 = 0.75, discarded; 1000 contributes 15.
	movements := makeMovements("1000", "50")
	rate := decimal.RequireFromString("1.5")

	assert.True(t, decimal.RequireFromString("15").Equal(TotalInterest(movements, rate)))
}

func TestTotalInterest_ThresholdIsPerDepositNotTotal(t *testing.T) {
	// Each deposit yields 0.75; the sum would be 1.5 but neither
	// contribution is paid on its own.
	movements := makeMovements("50", "50")
	rate := decimal.RequireFromString("1.5")

	assert.True(t, TotalInterest(movements, rate).IsZero())
}

func TestTotalInterest_ExactlyOneIsKept(t *testing.T) {
	// 100 * 1 / 100 = 1: not strictly below the threshold, so paid.
	movements := makeMovements("100")
	rate := decimal.RequireFromString("1")

	assert.True(t, decimal.RequireFromString("1").Equal(TotalInterest(movements, rate)))
}

func TestTotalInterest_IgnoresWithdrawals(t *testing.T) {
	movements := makeMovements("-10000")
	rate := decimal.RequireFromString("1.5")

	assert.True(t, TotalInterest(movements, rate).IsZero())
}

// -- Sorted tests --

func TestSorted_AscendingPermutation(t *testing.T) {
	movements := makeMovements("200", "450", "-400", "3000", "-650", "-130", "70", "1300")

	sorted := Sorted(movements)

	assert.Len(t, sorted, len(movements))
	for i := 1; i < len(sorted); i++ {
		assert.True(t, sorted[i-1].Amount.LessThanOrEqual(sorted[i].Amount))
	}

	// Permutation check: same multiset of amounts.
	counts := map[string]int{}
	for _, m := range movements {
		counts[m.Amount.String()]++
	}
	for _, m := range sorted {
		counts[m.Amount.String()]--
	}
	for amount, n := range counts {
		assert.Zero(t, n, "amount %s", amount)
	}
}

func TestSorted_DoesNotMutateInput(t *testing.T) {
	movements := makeMovements("300", "-100", "200")
	original := make([]Movement, len(movements))
	copy(original, movements)

	_ = Sorted(movements)

	assert.Equal(t, original, movements)
}

func TestSorted_KeepsDateWithAmount(t *testing.T) {
	movements := makeMovements("300", "-100", "200")

	sorted := Sorted(movements)

	assert.True(t, sorted[0].Amount.Equal(movements[1].Amount))
	assert.Equal(t, movements[1].Date, sorted[0].Date)
}

// -- Classify tests --

func TestClassify(t *testing.T) {
	assert.Equal(t, Deposit, Classify(Movement{Amount: decimal.RequireFromString("0.01")}))
	assert.Equal(t, Withdrawal, Classify(Movement{Amount: decimal.RequireFromString("-5")}))
	assert.Equal(t, Withdrawal, Classify(Movement{Amount: decimal.Zero}), "zero classifies as withdrawal")
}

// -- Summarize tests --

func TestSummarize(t *testing.T) {
	movements := makeMovements("200", "450", "-400", "3000", "-650", "-130", "70", "1300")
	rate := decimal.RequireFromString("1.2")

	summary := Summarize(movements, rate)

	assert.True(t, decimal.RequireFromString("3840").Equal(summary.Balance))
	assert.True(t, decimal.RequireFromString("5020").Equal(summary.Deposits))
	assert.True(t, decimal.RequireFromString("1180").Equal(summary.Withdrawals))
	// Qualifying deposits: 200 (2.4), 450 (5.4), 3000 (36), 1300 (15.6);
	// 70 yields 0.84 and is discarded.
	assert.True(t, decimal.RequireFromString("59.4").Equal(summary.Interest))
}
