package config

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mcintyrejak/bankist/internal/ledger"
	"github.com/mcintyrejak/bankist/internal/store"
)

// SeedAccounts returns the demo dataset the bank boots with. There is
// no runtime account creation; these four accounts are the whole bank.
func SeedAccounts() []store.SeedAccount {
	return []store.SeedAccount{
		{
			Owner:        "Jamie McIntyre",
			PIN:          1111,
			InterestRate: decimal.RequireFromString("1.2"),
			Currency:     "USD",
			Movements: movements(
				[]string{"200", "450", "-400", "3000", "-650", "-130", "70", "1300"},
				[]string{
					"2019-01-28T09:15:04.904Z",
					"2019-04-01T10:17:24.185Z",
					"2019-05-27T17:01:17.194Z",
					"2019-07-11T23:36:17.929Z",
					"2019-11-18T21:31:17.178Z",
					"2023-01-01T07:42:02.383Z",
					"2023-01-02T14:11:59.604Z",
					"2023-01-06T10:51:36.790Z",
				},
			),
		},
		{
			Owner:        "Jessica Davis",
			PIN:          2222,
			InterestRate: decimal.RequireFromString("1.5"),
			Currency:     "EUR",
			Movements: movements(
				[]string{"5000", "3400", "-150", "-790", "-3210", "-1000", "8500", "-30"},
				[]string{
					"2019-01-28T09:15:04.904Z",
					"2019-04-01T10:17:24.185Z",
					"2019-05-27T17:01:17.194Z",
					"2019-07-11T23:36:17.929Z",
					"2019-11-18T21:31:17.178Z",
					"2019-12-23T07:42:02.383Z",
					"2020-03-08T14:11:59.604Z",
					"2020-03-12T10:51:36.790Z",
				},
			),
		},
		{
			Owner:        "Steven Thomas Williams",
			PIN:          3333,
			InterestRate: decimal.RequireFromString("0.7"),
			Currency:     "USD",
			Movements: movements(
				[]string{"200", "-200", "340", "-300", "-20", "50", "400", "-460"},
				[]string{
					"2019-01-28T09:15:04.904Z",
					"2019-04-01T10:17:24.185Z",
					"2019-05-27T17:01:17.194Z",
					"2019-07-11T23:36:17.929Z",
					"2019-11-18T21:31:17.178Z",
					"2019-12-23T07:42:02.383Z",
					"2020-03-08T14:11:59.604Z",
					"2020-03-12T10:51:36.790Z",
				},
			),
		},
		{
			Owner:        "Sarah Smith",
			PIN:          4444,
			InterestRate: decimal.RequireFromString("1"),
			Currency:     "USD",
			Movements: movements(
				[]string{"430", "1000", "700", "50", "90"},
				[]string{
					"2019-01-28T09:15:04.904Z",
					"2019-04-01T10:17:24.185Z",
					"2019-05-27T17:01:17.194Z",
					"2019-07-11T23:36:17.929Z",
					"2019-11-18T21:31:17.178Z",
				},
			),
		},
	}
}

// movements zips parallel amount and RFC3339 date lists into movement
// records. Seed data is trusted; a malformed entry is a programming
// error.
func movements(amounts, dates []string) []ledger.Movement {
	if len(amounts) != len(dates) {
		panic("config: seed amounts and dates length mismatch")
	}
	out := make([]ledger.Movement, len(amounts))
	for i := range amounts {
		date, err := time.Parse(time.RFC3339, dates[i])
		if err != nil {
			panic(err)
		}
		out[i] = store.SeedMovement(amounts[i], date)
	}
	return out
}
