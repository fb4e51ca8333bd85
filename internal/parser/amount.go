package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern matches monetary tokens as they appear on statements:
// "4,300.00", "1 234.56", "35.00-", "(120.00)", "-250.00". Two decimal
// places are required so years and reference numbers never match.
var amountPattern = regexp.MustCompile(`-?\(?(?:\d{1,3}(?:[ ,]\d{3})+\.\d{2}|\d+\.\d{2})\)?-?`)

// ParseAmount converts a statement amount token to a decimal. A trailing
// minus (the common bank export notation for debits) and parentheses both
// mean negative. Empty and bare "-" cells parse to zero.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return decimal.Zero, nil
	}

	negative := false
	if strings.HasSuffix(s, "-") {
		negative = true
		s = strings.TrimSuffix(s, "-")
	}
	if strings.HasPrefix(s, "-") {
		negative = true
		s = strings.TrimPrefix(s, "-")
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}

	for _, symbol := range []string{"R", "£", "$", "€", " ", " ", ","} {
		s = strings.ReplaceAll(s, symbol, "")
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("unparseable amount %q: %w", raw, err)
	}

	if negative {
		value = value.Neg()
	}
	return value, nil
}

// parseBalanceCell parses a running-balance cell, keeping the sign. Empty
// and "-" placeholder cells mean the balance is unknown, not zero.
func parseBalanceCell(cell string) (decimal.NullDecimal, error) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" || trimmed == "-" {
		return decimal.NullDecimal{}, nil
	}
	value, err := ParseAmount(trimmed)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(value), nil
}

// findAmounts returns every amount token on the line, in order.
func findAmounts(line string) []string {
	return amountPattern.FindAllString(line, -1)
}

func hasAmountToken(line string) bool {
	return amountPattern.MatchString(line)
}

// stripTokens removes each token once and collapses the leftover whitespace,
// leaving the narrative part of the line.
func stripTokens(line string, tokens ...string) string {
	for _, token := range tokens {
		line = strings.Replace(line, token, " ", 1)
	}
	return strings.Join(strings.Fields(line), " ")
}
