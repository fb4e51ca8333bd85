package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sthwalo/acc-sub020/internal/domain"
)

// GenericParser is the catch-all for bare narrative lines carrying at
// least one amount:
//   "15/01/2024 ATM WITHDRAWAL 500.00- 3,800.00"
//   "INTEREST CAPITALISED 12.45"
// The date may come from the line or carry over from the previous row.
type GenericParser struct{}

func (p *GenericParser) Name() string {
	return "generic"
}

func (p *GenericParser) CanParse(line string, ctx *Context) bool {
	return hasAmountToken(line)
}

func (p *GenericParser) Parse(line string, ctx *Context) (domain.TransactionFields, error) {
	date, dateToken, hasDate := FindDate(line)
	if !hasDate {
		date = ctx.LastDate
	}

	rest := line
	if hasDate {
		rest = strings.Replace(rest, dateToken, " ", 1)
	}

	amounts := findAmounts(rest)
	if len(amounts) == 0 {
		return domain.TransactionFields{}, fmt.Errorf("no amount token")
	}

	primary, err := ParseAmount(amounts[0])
	if err != nil {
		return domain.TransactionFields{}, err
	}

	balance := decimal.NullDecimal{}
	if len(amounts) > 1 {
		balance, err = parseBalanceCell(amounts[len(amounts)-1])
		if err != nil {
			return domain.TransactionFields{}, err
		}
	}

	description := stripTokens(rest, amounts...)

	fields := domain.TransactionFields{
		Date:        date,
		Description: description,
		Balance:     balance,
	}
	fields.Debit, fields.Credit = resolveDirection(primary, balance, ctx, description)

	ctx.ObserveDate(date)
	if balance.Valid {
		ctx.ObserveBalance(balance.Decimal)
	}
	return fields, nil
}

// resolveDirection assigns a single bare amount to the debit or credit
// column. Exact balance progression against the pending balance is the
// strongest evidence, then the sign notation, then description keywords.
// An amount with no evidence at all lands on the credit side, matching the
// non-negative default of the type classifier.
func resolveDirection(amount decimal.Decimal, balance decimal.NullDecimal, ctx *Context, description string) (debit, credit decimal.Decimal) {
	magnitude := amount.Abs()

	if ctx.PendingBalance.Valid && balance.Valid {
		if ctx.PendingBalance.Decimal.Sub(magnitude).Equal(balance.Decimal) {
			return magnitude, decimal.Zero
		}
		if ctx.PendingBalance.Decimal.Add(magnitude).Equal(balance.Decimal) {
			return decimal.Zero, magnitude
		}
	}

	if amount.IsNegative() {
		return magnitude, decimal.Zero
	}
	if domain.DescriptionSuggestsDebit(description) {
		return magnitude, decimal.Zero
	}
	if domain.DescriptionSuggestsCredit(description) {
		return decimal.Zero, magnitude
	}
	return decimal.Zero, magnitude
}
