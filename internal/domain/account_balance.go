package domain

import "github.com/shopspring/decimal"

type NormalBalance string

const (
	NormalBalanceDebit  NormalBalance = "D"
	NormalBalanceCredit NormalBalance = "C"
)

// AccountBalance is the computed position of one account within a trial
// balance run. All monetary fields are zero when source data is absent.
type AccountBalance struct {
	AccountCode    string
	AccountName    string
	NormalBalance  NormalBalance
	OpeningBalance decimal.Decimal
	PeriodDebits   decimal.Decimal
	PeriodCredits  decimal.Decimal
	ClosingBalance decimal.Decimal
}

// TrialBalanceDebit returns the amount this account contributes to the
// debit column. A debit-normal account lands here when its closing balance
// is non-negative; a credit-normal account only when it closed negative.
func (a AccountBalance) TrialBalanceDebit() decimal.Decimal {
	if a.NormalBalance == NormalBalanceDebit {
		if a.ClosingBalance.Sign() >= 0 {
			return a.ClosingBalance
		}
		return decimal.Zero
	}
	if a.ClosingBalance.Sign() < 0 {
		return a.ClosingBalance.Neg()
	}
	return decimal.Zero
}

// TrialBalanceCredit is the mirror of TrialBalanceDebit.
func (a AccountBalance) TrialBalanceCredit() decimal.Decimal {
	if a.NormalBalance == NormalBalanceCredit {
		if a.ClosingBalance.Sign() >= 0 {
			return a.ClosingBalance
		}
		return decimal.Zero
	}
	if a.ClosingBalance.Sign() < 0 {
		return a.ClosingBalance.Neg()
	}
	return decimal.Zero
}
