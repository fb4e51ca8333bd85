package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sthwalo/acc-sub020/internal/domain"
)

// TabularParser handles column-oriented statement exports.
//
// The full layout is:
//   Details | Service Fee | Debits | Credits | Date | Balance [| Reference]
//
// Tab-delimited rows keep empty cells, so columns map by position. Rows
// flattened to runs of spaces lose empty cells; those are mapped from the
// end (balance, then date) with the remaining amount tokens assigned by
// sign, where a trailing minus marks a debit.
//
// Example rows:
//   "INSURANCE PREMIUM\t\t120.00\t\t15/01/2024\t4,180.00"
//   "SALARY PAYMENT  5,000.00  15/01/2024  9,300.00"
type TabularParser struct{}

func (p *TabularParser) Name() string {
	return "tabular"
}

var spaceRunPattern = regexp.MustCompile(`\s{2,}`)

func splitColumns(line string) []string {
	if strings.Contains(line, "\t") {
		cells := strings.Split(line, "\t")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		return cells
	}
	return spaceRunPattern.Split(strings.TrimSpace(line), -1)
}

func (p *TabularParser) CanParse(line string, ctx *Context) bool {
	cells := splitColumns(line)
	if len(cells) < 4 {
		return false
	}
	if _, ok := ParseDate(cells[len(cells)-2]); !ok {
		return false
	}
	return isAmountCell(cells[len(cells)-1]) && cells[len(cells)-1] != ""
}

func (p *TabularParser) Parse(line string, ctx *Context) (domain.TransactionFields, error) {
	cells := splitColumns(line)

	if strings.Contains(line, "\t") && len(cells) >= 6 {
		return p.parsePositional(cells, ctx)
	}
	return p.parseFromEnd(cells, ctx)
}

// parsePositional maps a complete tab-delimited row column by column.
func (p *TabularParser) parsePositional(cells []string, ctx *Context) (domain.TransactionFields, error) {
	date, ok := ParseDate(cells[4])
	if !ok {
		return domain.TransactionFields{}, fmt.Errorf("bad date cell %q", cells[4])
	}

	fee, err := ParseAmount(cells[1])
	if err != nil {
		return domain.TransactionFields{}, err
	}
	debit, err := ParseAmount(cells[2])
	if err != nil {
		return domain.TransactionFields{}, err
	}
	credit, err := ParseAmount(cells[3])
	if err != nil {
		return domain.TransactionFields{}, err
	}
	balance, err := parseBalanceCell(cells[5])
	if err != nil {
		return domain.TransactionFields{}, err
	}

	fields := domain.TransactionFields{
		Date:        date,
		Description: cells[0],
		Debit:       debit.Abs(),
		Credit:      credit.Abs(),
		ServiceFee:  fee.Abs(),
		Balance:     balance,
	}
	if len(cells) >= 7 {
		fields.Reference = cells[6]
	}

	ctx.ObserveDate(date)
	if balance.Valid {
		ctx.ObserveBalance(balance.Decimal)
	}
	return fields, nil
}

// parseFromEnd maps a space-flattened row: the last two cells are balance
// and date, the trailing run of amount cells before them carries the
// movement, and everything else is the description.
func (p *TabularParser) parseFromEnd(cells []string, ctx *Context) (domain.TransactionFields, error) {
	n := len(cells)

	date, ok := ParseDate(cells[n-2])
	if !ok {
		return domain.TransactionFields{}, fmt.Errorf("bad date cell %q", cells[n-2])
	}
	balance, err := parseBalanceCell(cells[n-1])
	if err != nil {
		return domain.TransactionFields{}, err
	}

	// Trailing run of pure amount cells between description and date.
	firstAmount := n - 2
	for firstAmount > 1 && isAmountCell(cells[firstAmount-1]) {
		firstAmount--
	}

	amounts := make([]decimal.Decimal, 0, 3)
	for _, cell := range cells[firstAmount : n-2] {
		value, err := ParseAmount(cell)
		if err != nil {
			return domain.TransactionFields{}, err
		}
		amounts = append(amounts, value)
	}

	description := strings.Join(cells[:firstAmount], " ")

	fields := domain.TransactionFields{
		Date:        date,
		Description: description,
		Balance:     balance,
	}

	switch len(amounts) {
	case 0:
		return domain.TransactionFields{}, fmt.Errorf("no amount columns")
	case 1:
		debit, credit := resolveDirection(amounts[0], balance, ctx, description)
		fields.Debit = debit
		fields.Credit = credit
	case 2:
		fields.Debit, fields.Credit = splitDebitCredit(amounts[0], amounts[1])
	default:
		fields.ServiceFee = amounts[0].Abs()
		fields.Debit = amounts[1].Abs()
		fields.Credit = amounts[2].Abs()
	}

	ctx.ObserveDate(date)
	if balance.Valid {
		ctx.ObserveBalance(balance.Decimal)
	}
	return fields, nil
}

// splitDebitCredit assigns two bare amounts to the debit and credit
// columns. A negative amount is always the debit; otherwise column order
// wins.
func splitDebitCredit(first, second decimal.Decimal) (debit, credit decimal.Decimal) {
	if first.IsNegative() && !second.IsNegative() {
		return first.Abs(), second.Abs()
	}
	if second.IsNegative() && !first.IsNegative() {
		return second.Abs(), first.Abs()
	}
	return first.Abs(), second.Abs()
}

// isAmountCell reports whether the cell is entirely one amount token, or
// an empty placeholder.
func isAmountCell(cell string) bool {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" || trimmed == "-" {
		return true
	}
	return amountPattern.FindString(trimmed) == trimmed
}
