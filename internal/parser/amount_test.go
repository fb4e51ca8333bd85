package parser

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1,234.56", "1234.56"},
		{"4,300.00", "4300.00"},
		{"35.00-", "-35.00"},
		{"-45.10", "-45.10"},
		{"(120.00)", "-120.00"},
		{"R 1 234.56", "1234.56"},
		{"£2,500.00", "2500.00"},
		{"0.00", "0.00"},
		{"", "0"},
		{"-", "0"},
	}

	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if err != nil {
			t.Errorf("ParseAmount(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if !got.Equal(d(tt.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	if _, err := ParseAmount("abc"); err == nil {
		t.Error("ParseAmount(\"abc\"): expected error")
	}
}

func TestFindAmounts(t *testing.T) {
	amounts := findAmounts("15/01/2024 ATM WITHDRAWAL 500.00- 3,800.00")
	if len(amounts) != 2 {
		t.Fatalf("findAmounts: got %d tokens %v, want 2", len(amounts), amounts)
	}
	if amounts[0] != "500.00-" {
		t.Errorf("amounts[0] = %q, want %q", amounts[0], "500.00-")
	}
	if amounts[1] != "3,800.00" {
		t.Errorf("amounts[1] = %q, want %q", amounts[1], "3,800.00")
	}
}

func TestFindAmountsSpaceThousands(t *testing.T) {
	amounts := findAmounts("SALARY 5 000.00 9 300.00")
	if len(amounts) != 2 {
		t.Fatalf("findAmounts: got %d tokens %v, want 2", len(amounts), amounts)
	}
	if amounts[0] != "5 000.00" {
		t.Errorf("amounts[0] = %q, want %q", amounts[0], "5 000.00")
	}
}

func TestFindAmountsIgnoresDates(t *testing.T) {
	amounts := findAmounts("15/01/2024 and 2024-01-15 carry no amounts")
	if len(amounts) != 0 {
		t.Errorf("findAmounts: got %v, want none", amounts)
	}
}

func TestParseBalanceCell(t *testing.T) {
	balance, err := parseBalanceCell("4,300.00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.Valid || !balance.Decimal.Equal(d("4300.00")) {
		t.Errorf("parseBalanceCell: got %v, want valid 4300.00", balance)
	}

	empty, err := parseBalanceCell("-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty.Valid {
		t.Error("parseBalanceCell(\"-\"): want invalid balance")
	}

	overdrawn, err := parseBalanceCell("1,200.00-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !overdrawn.Valid || !overdrawn.Decimal.Equal(d("-1200.00")) {
		t.Errorf("parseBalanceCell: got %v, want -1200.00", overdrawn)
	}
}
