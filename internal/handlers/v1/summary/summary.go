package summary

import "github.com/mcintyrejak/bankist/internal/ledger"

// Summary is the API model of the recomputed ledger values. Amounts are
// raw decimal strings; formatting is the caller's concern.
type Summary struct {
	Balance     string `json:"balance" doc:"Decimal sum of all movements"`
	Deposits    string `json:"deposits" doc:"Decimal sum of deposits"`
	Withdrawals string `json:"withdrawals" doc:"Decimal absolute sum of withdrawals"`
	Interest    string `json:"interest" doc:"Decimal interest accrued on qualifying deposits"`
}

// FromLedger converts ledger totals to their API representation.
func FromLedger(s ledger.Summary) Summary {
	return Summary{
		Balance:     s.Balance.String(),
		Deposits:    s.Deposits.String(),
		Withdrawals: s.Withdrawals.String(),
		Interest:    s.Interest.String(),
	}
}
