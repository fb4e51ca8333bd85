package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDebit      TransactionType = "DEBIT"
	TransactionTypeCredit     TransactionType = "CREDIT"
	TransactionTypeServiceFee TransactionType = "SERVICE_FEE"
)

var feeKeywords = []string{"fee", "charge"}

var debitKeywords = []string{"withdrawal", "debit", "payment", "transfer to", "atm", "eft out"}

var creditKeywords = []string{"deposit", "credit", "salary", "transfer from", "interest", "dividend", "eft in", "refund"}

// DetermineType assigns the transaction kind from the extracted amounts and
// description. Rules are evaluated top to bottom and the first match wins:
// fee evidence, then populated amount columns, then description keywords,
// then the sign of credit minus debit. Fee detection runs before the amount
// rules because banks often report fees in the debit column as well.
func DetermineType(debit, credit, serviceFee decimal.Decimal, description string) TransactionType {
	desc := strings.ToLower(description)

	if serviceFee.IsPositive() || containsAny(desc, feeKeywords) {
		return TransactionTypeServiceFee
	}
	if debit.IsPositive() && credit.IsZero() {
		return TransactionTypeDebit
	}
	if credit.IsPositive() && debit.IsZero() {
		return TransactionTypeCredit
	}
	if containsAny(desc, debitKeywords) {
		return TransactionTypeDebit
	}
	if containsAny(desc, creditKeywords) {
		return TransactionTypeCredit
	}
	if credit.Sub(debit).Sign() >= 0 {
		return TransactionTypeCredit
	}
	return TransactionTypeDebit
}

// DescriptionSuggestsDebit reports whether the description carries one of
// the debit-indicating keywords used by the keyword fallback rule.
func DescriptionSuggestsDebit(description string) bool {
	return containsAny(strings.ToLower(description), debitKeywords)
}

// DescriptionSuggestsCredit is the credit-side counterpart.
func DescriptionSuggestsCredit(description string) bool {
	return containsAny(strings.ToLower(description), creditKeywords)
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// TransactionFields is the mutable field bag produced by the parser chain.
type TransactionFields struct {
	Date        time.Time
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	ServiceFee  decimal.Decimal
	Balance     decimal.NullDecimal
	Reference   string
}

type BuildError struct {
	Field  string
	Reason string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("cannot build transaction: %s %s", e.Field, e.Reason)
}

// StandardizedTransaction is the validated, immutable form of a parsed
// statement line. Its type is always recomputed from the stored amounts and
// description, never set directly.
type StandardizedTransaction struct {
	date        time.Time
	description string
	debit       decimal.Decimal
	credit      decimal.Decimal
	serviceFee  decimal.Decimal
	balance     decimal.NullDecimal
	reference   string
	txnType     TransactionType
}

// NewStandardizedTransaction validates the field bag and assembles the
// immutable record. Date and a non-empty description are the only hard
// requirements; monetary fields default to zero. When the derived type is
// SERVICE_FEE but the fee column is empty, the fee amount is relocated from
// whichever amount column carried it so the amount accessor stays truthful.
func NewStandardizedTransaction(fields TransactionFields) (StandardizedTransaction, error) {
	if fields.Date.IsZero() {
		return StandardizedTransaction{}, &BuildError{Field: "date", Reason: "is required"}
	}

	description := strings.TrimSpace(fields.Description)
	if description == "" {
		return StandardizedTransaction{}, &BuildError{Field: "description", Reason: "is required"}
	}

	if fields.Debit.IsNegative() {
		return StandardizedTransaction{}, &BuildError{Field: "debit", Reason: "must not be negative"}
	}
	if fields.Credit.IsNegative() {
		return StandardizedTransaction{}, &BuildError{Field: "credit", Reason: "must not be negative"}
	}
	if fields.ServiceFee.IsNegative() {
		return StandardizedTransaction{}, &BuildError{Field: "serviceFee", Reason: "must not be negative"}
	}

	debit := fields.Debit
	credit := fields.Credit
	serviceFee := fields.ServiceFee

	txnType := DetermineType(debit, credit, serviceFee, description)
	if txnType == TransactionTypeServiceFee && serviceFee.IsZero() {
		switch {
		case debit.IsPositive():
			serviceFee = debit
			debit = decimal.Zero
		case credit.IsPositive():
			serviceFee = credit
			credit = decimal.Zero
		}
	}

	return StandardizedTransaction{
		date:        fields.Date,
		description: description,
		debit:       debit,
		credit:      credit,
		serviceFee:  serviceFee,
		balance:     fields.Balance,
		reference:   strings.TrimSpace(fields.Reference),
		txnType:     txnType,
	}, nil
}

func (t StandardizedTransaction) Date() time.Time { return t.date }

func (t StandardizedTransaction) Description() string { return t.description }

func (t StandardizedTransaction) DebitAmount() decimal.Decimal { return t.debit }

func (t StandardizedTransaction) CreditAmount() decimal.Decimal { return t.credit }

func (t StandardizedTransaction) ServiceFee() decimal.Decimal { return t.serviceFee }

func (t StandardizedTransaction) Balance() decimal.NullDecimal { return t.balance }

func (t StandardizedTransaction) Reference() string { return t.reference }

func (t StandardizedTransaction) Type() TransactionType { return t.txnType }

// Amount returns the single monetary value matching the transaction type.
func (t StandardizedTransaction) Amount() decimal.Decimal {
	switch t.txnType {
	case TransactionTypeDebit:
		return t.debit
	case TransactionTypeCredit:
		return t.credit
	default:
		return t.serviceFee
	}
}
