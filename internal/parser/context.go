package parser

import (
	"time"

	"github.com/shopspring/decimal"
)

// Context carries cross-line state for one statement run: the running
// balance after the previous row and the last transaction date seen.
// Statements frequently omit both on continuation rows. Each ingestion run
// owns its own Context; nothing here is shared.
type Context struct {
	PendingBalance decimal.NullDecimal
	LastDate       time.Time
}

func NewContext() *Context {
	return &Context{}
}

func (c *Context) ObserveBalance(balance decimal.Decimal) {
	c.PendingBalance = decimal.NewNullDecimal(balance)
}

func (c *Context) ObserveDate(date time.Time) {
	if !date.IsZero() {
		c.LastDate = date
	}
}
