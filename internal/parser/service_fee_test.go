package parser

import (
	"testing"
	"time"
)

func TestServiceFeeParser(t *testing.T) {
	p := &ServiceFeeParser{}
	ctx := NewContext()
	ctx.ObserveDate(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))

	line := "SERVICE FEE 35.00-"
	if !p.CanParse(line, ctx) {
		t.Fatal("CanParse = false, want true")
	}

	fields, err := p.Parse(line, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fields.Description != "SERVICE FEE" {
		t.Errorf("description = %q", fields.Description)
	}
	if !fields.ServiceFee.Equal(d("35.00")) {
		t.Errorf("serviceFee = %s, want 35.00", fields.ServiceFee)
	}
	if !fields.Debit.IsZero() || !fields.Credit.IsZero() {
		t.Errorf("amount columns should stay zero, got debit=%s credit=%s", fields.Debit, fields.Credit)
	}
	if !fields.Date.Equal(ctx.LastDate) {
		t.Errorf("date = %v, want carried-over %v", fields.Date, ctx.LastDate)
	}
}

func TestServiceFeeParserWithBalance(t *testing.T) {
	p := &ServiceFeeParser{}
	ctx := NewContext()

	fields, err := p.Parse("31/01/2024 #MONTHLY ACCOUNT CHARGE 45.00- 2,255.00", ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fields.Description != "#MONTHLY ACCOUNT CHARGE" {
		t.Errorf("description = %q", fields.Description)
	}
	if !fields.ServiceFee.Equal(d("45.00")) {
		t.Errorf("serviceFee = %s, want 45.00", fields.ServiceFee)
	}
	if !fields.Balance.Valid || !fields.Balance.Decimal.Equal(d("2255.00")) {
		t.Errorf("balance = %v, want 2255.00", fields.Balance)
	}
	if !ctx.PendingBalance.Valid || !ctx.PendingBalance.Decimal.Equal(d("2255.00")) {
		t.Errorf("context balance = %v, want 2255.00", ctx.PendingBalance)
	}
}

func TestServiceFeeParserRejects(t *testing.T) {
	p := &ServiceFeeParser{}
	ctx := NewContext()

	lines := []string{
		"ATM WITHDRAWAL 500.00-",
		"BANK CHARGES UNDER REVIEW",
	}
	for _, line := range lines {
		if p.CanParse(line, ctx) {
			t.Errorf("CanParse(%q) = true, want false", line)
		}
	}
}
