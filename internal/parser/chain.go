package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sthwalo/acc-sub020/internal/domain"
)

// LineParser recognizes and extracts one transaction shape.
type LineParser interface {
	Name() string
	CanParse(line string, ctx *Context) bool
	Parse(line string, ctx *Context) (domain.TransactionFields, error)
}

type Outcome int

const (
	// OutcomeParsed means a parser accepted the line and extracted fields.
	OutcomeParsed Outcome = iota
	// OutcomeSkipped means the line was consumed for carry-over context
	// (balance brought forward, statement totals) and yields no transaction.
	OutcomeSkipped
	// OutcomeNoMatch means no parser accepted the line.
	OutcomeNoMatch
)

// Chain tries parsers in a fixed priority order, most specific format
// first, and stops at the first acceptor.
type Chain struct {
	parsers []LineParser
}

func NewChain() *Chain {
	return &Chain{
		parsers: []LineParser{
			&TabularParser{},
			&CreditTransferParser{},
			&ServiceFeeParser{},
			&GenericParser{},
		},
	}
}

// ParseLine dispatches one classified line. Balance-carry and summary rows
// update the context and come back as OutcomeSkipped. A parser that accepts
// a line but fails to extract it does not fall through to less specific
// parsers; the error carries the parser name so the caller can report it.
func (c *Chain) ParseLine(line string, ctx *Context) (domain.TransactionFields, Outcome, error) {
	trimmed := strings.TrimSpace(line)

	if balance, ok := extractCarriedBalance(trimmed); ok {
		ctx.ObserveBalance(balance)
		return domain.TransactionFields{}, OutcomeSkipped, nil
	}
	if isSummaryLine(trimmed) {
		return domain.TransactionFields{}, OutcomeSkipped, nil
	}

	for _, p := range c.parsers {
		if !p.CanParse(trimmed, ctx) {
			continue
		}
		fields, err := p.Parse(trimmed, ctx)
		if err != nil {
			return domain.TransactionFields{}, OutcomeNoMatch, fmt.Errorf("%s parser: %w", p.Name(), err)
		}
		return fields, OutcomeParsed, nil
	}
	return domain.TransactionFields{}, OutcomeNoMatch, nil
}

// extractCarriedBalance recognizes opening and closing balance rows and
// returns the signed balance so the run's context can be seeded before the
// first real transaction.
func extractCarriedBalance(line string) (decimal.Decimal, bool) {
	lower := strings.ToLower(line)
	carries := []string{
		"balance brought forward", "brought forward", "opening balance",
		"balance carried forward", "carried forward", "closing balance",
	}
	matched := false
	for _, phrase := range carries {
		if strings.Contains(lower, phrase) {
			matched = true
			break
		}
	}
	if !matched {
		return decimal.Decimal{}, false
	}

	amounts := findAmounts(line)
	if len(amounts) == 0 {
		return decimal.Decimal{}, false
	}
	value, err := ParseAmount(amounts[len(amounts)-1])
	if err != nil {
		return decimal.Decimal{}, false
	}
	return value, true
}

func isSummaryLine(line string) bool {
	lower := strings.ToLower(line)
	for _, phrase := range []string{
		"total paid in", "total paid out", "total payments",
		"total receipts", "statement period", "continued on",
	} {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
