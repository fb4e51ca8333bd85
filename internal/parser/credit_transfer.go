package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sthwalo/acc-sub020/internal/domain"
)

// CreditTransferParser handles narrative transfer-in lines:
//   "CREDIT TRANSFER from ABC Company 1,500.00"
//   "15/01/2024 EFT CREDIT SALARY RUN 12,000.00 17,300.00"
// The first amount is the transfer, an optional second is the running
// balance.
type CreditTransferParser struct{}

var creditTransferPattern = regexp.MustCompile(`(?i)\b(credit transfer|eft credit|inward transfer|transfer from)\b`)

func (p *CreditTransferParser) Name() string {
	return "credit-transfer"
}

func (p *CreditTransferParser) CanParse(line string, ctx *Context) bool {
	return creditTransferPattern.MatchString(line) && hasAmountToken(line)
}

func (p *CreditTransferParser) Parse(line string, ctx *Context) (domain.TransactionFields, error) {
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

	credit, err := ParseAmount(amounts[0])
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

	fields := domain.TransactionFields{
		Date:        date,
		Description: stripTokens(rest, amounts...),
		Credit:      credit.Abs(),
		Balance:     balance,
	}

	ctx.ObserveDate(date)
	if balance.Valid {
		ctx.ObserveBalance(balance.Decimal)
	}
	return fields, nil
}
