package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type BankTransaction struct {
	ID              int64
	CompanyID       int64
	FiscalPeriodID  int64
	TransactionDate time.Time
	Details         string
	DebitAmount     decimal.Decimal
	CreditAmount    decimal.Decimal
	Balance         decimal.NullDecimal
	CreatedAt       time.Time
}

// NewBankTransaction maps an accepted standardized transaction onto the
// persisted row shape. Debits and service fees are money leaving the
// account, so both land in the debit column.
func NewBankTransaction(companyID, fiscalPeriodID int64, txn StandardizedTransaction) BankTransaction {
	record := BankTransaction{
		CompanyID:       companyID,
		FiscalPeriodID:  fiscalPeriodID,
		TransactionDate: DateOnly(txn.Date()),
		Details:         txn.Description(),
		DebitAmount:     decimal.Zero,
		CreditAmount:    decimal.Zero,
		Balance:         txn.Balance(),
	}

	if txn.Type() == TransactionTypeCredit {
		record.CreditAmount = txn.Amount()
	} else {
		record.DebitAmount = txn.Amount()
	}

	return record
}

// DuplicateKey is the composite identity used to detect re-imported
// transactions: company, date, both amount columns, normalized details and
// the running balance. Balance is the strongest discriminator because it is
// cumulative over the account's whole history.
type DuplicateKey struct {
	CompanyID       int64
	TransactionDate time.Time
	DebitAmount     decimal.Decimal
	CreditAmount    decimal.Decimal
	Details         string
	Balance         decimal.NullDecimal
}

func (t BankTransaction) Key() DuplicateKey {
	return DuplicateKey{
		CompanyID:       t.CompanyID,
		TransactionDate: DateOnly(t.TransactionDate),
		DebitAmount:     t.DebitAmount,
		CreditAmount:    t.CreditAmount,
		Details:         NormalizeDetails(t.Details),
		Balance:         t.Balance,
	}
}

// Matches reports whether two keys identify the same transaction. Amounts
// compare by value, details case-insensitively, and a missing balance only
// matches another missing balance.
func (k DuplicateKey) Matches(other DuplicateKey) bool {
	if k.CompanyID != other.CompanyID {
		return false
	}
	if !DateOnly(k.TransactionDate).Equal(DateOnly(other.TransactionDate)) {
		return false
	}
	if !k.DebitAmount.Equal(other.DebitAmount) {
		return false
	}
	if !k.CreditAmount.Equal(other.CreditAmount) {
		return false
	}
	if NormalizeDetails(k.Details) != NormalizeDetails(other.Details) {
		return false
	}
	if k.Balance.Valid != other.Balance.Valid {
		return false
	}
	if k.Balance.Valid && !k.Balance.Decimal.Equal(other.Balance.Decimal) {
		return false
	}
	return true
}

// NormalizeDetails lowercases the description and collapses runs of
// whitespace so duplicate matching ignores casing and spacing artifacts
// introduced by text extraction. Punctuation is kept as-is.
func NormalizeDetails(details string) string {
	return strings.ToLower(strings.Join(strings.Fields(details), " "))
}

// DateOnly strips the time-of-day component, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
