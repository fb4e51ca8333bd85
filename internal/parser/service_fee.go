package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sthwalo/acc-sub020/internal/domain"
)

// ServiceFeeParser handles bank charge lines:
//   "SERVICE FEE 35.00-"
//   "15/01/2024 #MONTHLY ACCOUNT CHARGE 45.00- 2,255.00"
// Fee lines often omit the date; the previous row's date carries over.
type ServiceFeeParser struct{}

var serviceFeePattern = regexp.MustCompile(`(?i)\b(fee|fees|charge|charges|commission)\b`)

func (p *ServiceFeeParser) Name() string {
	return "service-fee"
}

func (p *ServiceFeeParser) CanParse(line string, ctx *Context) bool {
	return serviceFeePattern.MatchString(line) && hasAmountToken(line)
}

func (p *ServiceFeeParser) Parse(line string, ctx *Context) (domain.TransactionFields, error) {
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

	fee, err := ParseAmount(amounts[0])
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
		ServiceFee:  fee.Abs(),
		Balance:     balance,
	}

	ctx.ObserveDate(date)
	if balance.Valid {
		ctx.ObserveBalance(balance.Decimal)
	}
	return fields, nil
}
