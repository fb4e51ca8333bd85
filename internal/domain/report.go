package domain

import "github.com/shopspring/decimal"

// StatementBatch is one statement document queued for ingestion: the
// ordered extracted lines plus the company and period they belong to.
type StatementBatch struct {
	CompanyID      int64
	FiscalPeriodID int64
	Source         string
	Lines          []string
}

// UnparsedLine records a line that looked like a transaction but was
// accepted by no parser. Position is 1-based within the statement.
type UnparsedLine struct {
	Position int
	Text     string
}

// LineFailure records a line that parsed but could not be assembled into a
// valid transaction.
type LineFailure struct {
	Position int
	Text     string
	Reason   string
}

// DuplicateRejection pairs a candidate with the stored transaction it
// collided with.
type DuplicateRejection struct {
	Position    int
	Transaction StandardizedTransaction
	ExistingID  int64
}

// IngestReport is the outcome of one statement run. A non-empty failure
// bucket does not invalidate the accepted transactions; one bad line never
// blocks the rest of the statement.
type IngestReport struct {
	Source             string
	Accepted           []StandardizedTransaction
	RejectedDuplicates []DuplicateRejection
	Unparsed           []UnparsedLine
	Failed             []LineFailure
}

func (r IngestReport) HasFailures() bool {
	return len(r.RejectedDuplicates) > 0 || len(r.Unparsed) > 0 || len(r.Failed) > 0
}

// TrialBalanceReport lists every account's closing position split into the
// two display columns. Balanced means the column totals match exactly;
// Difference is TotalDebit minus TotalCredit, so a positive value means the
// books are debit-heavy.
type TrialBalanceReport struct {
	CompanyID      int64
	FiscalPeriodID int64
	Accounts       []AccountBalance
	TotalDebit     decimal.Decimal
	TotalCredit    decimal.Decimal
	Balanced       bool
	Difference     decimal.Decimal
}
