package domain

import "github.com/shopspring/decimal"

// JournalEntryLine is one side of a posted double-entry, already joined to
// its chart-of-accounts row. AccountType is the explicit classification tag
// from the chart and may be empty when the chart only carries codes.
type JournalEntryLine struct {
	AccountCode string
	AccountName string
	AccountType string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}
