package parser

import (
	"testing"
	"time"
)

func TestTabularParser_TabDelimited(t *testing.T) {
	p := &TabularParser{}
	ctx := NewContext()

	line := "INSURANCE PREMIUM\t\t120.00\t\t15/01/2024\t4,180.00"
	if !p.CanParse(line, ctx) {
		t.Fatal("CanParse = false, want true")
	}

	fields, err := p.Parse(line, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fields.Description != "INSURANCE PREMIUM" {
		t.Errorf("description = %q", fields.Description)
	}
	if !fields.Debit.Equal(d("120.00")) {
		t.Errorf("debit = %s, want 120.00", fields.Debit)
	}
	if !fields.Credit.IsZero() {
		t.Errorf("credit = %s, want 0", fields.Credit)
	}
	if !fields.ServiceFee.IsZero() {
		t.Errorf("serviceFee = %s, want 0", fields.ServiceFee)
	}
	if !fields.Date.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v", fields.Date)
	}
	if !fields.Balance.Valid || !fields.Balance.Decimal.Equal(d("4180.00")) {
		t.Errorf("balance = %v, want 4180.00", fields.Balance)
	}

	if !ctx.PendingBalance.Valid || !ctx.PendingBalance.Decimal.Equal(d("4180.00")) {
		t.Errorf("context balance = %v, want 4180.00", ctx.PendingBalance)
	}
	if !ctx.LastDate.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("context date = %v", ctx.LastDate)
	}
}

func TestTabularParser_TabDelimitedWithFeeAndReference(t *testing.T) {
	p := &TabularParser{}
	ctx := NewContext()

	line := "MONTHLY ACCOUNT ADMIN\t5.00\t110.00\t\t31/01/2024\t4,070.00\tREF884213"
	fields, err := p.Parse(line, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !fields.ServiceFee.Equal(d("5.00")) {
		t.Errorf("serviceFee = %s, want 5.00", fields.ServiceFee)
	}
	if !fields.Debit.Equal(d("110.00")) {
		t.Errorf("debit = %s, want 110.00", fields.Debit)
	}
	if fields.Reference != "REF884213" {
		t.Errorf("reference = %q", fields.Reference)
	}
}

func TestTabularParser_SpaceSeparatedTrailingMinus(t *testing.T) {
	p := &TabularParser{}
	ctx := NewContext()

	line := "INSURANCE PREMIUM  120.00-  15/01/2024  4,180.00"
	if !p.CanParse(line, ctx) {
		t.Fatal("CanParse = false, want true")
	}

	fields, err := p.Parse(line, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fields.Description != "INSURANCE PREMIUM" {
		t.Errorf("description = %q", fields.Description)
	}
	if !fields.Debit.Equal(d("120.00")) {
		t.Errorf("debit = %s, want 120.00", fields.Debit)
	}
	if !fields.Credit.IsZero() {
		t.Errorf("credit = %s, want 0", fields.Credit)
	}
}

func TestTabularParser_BalanceProgressionBeatsUnsignedDefault(t *testing.T) {
	p := &TabularParser{}

	// Unsigned single amount would default to credit; with a pending
	// balance the progression decides instead.
	ctx := NewContext()
	ctx.ObserveBalance(d("4300.00"))

	fields, err := p.Parse("SALARY PAYMENT  5,000.00  15/01/2024  9,300.00", ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fields.Credit.Equal(d("5000.00")) {
		t.Errorf("credit = %s, want 5000.00", fields.Credit)
	}

	debitCtx := NewContext()
	debitCtx.ObserveBalance(d("4300.00"))

	fields, err = p.Parse("SUNDRY PURCHASE  300.00  15/01/2024  4,000.00", debitCtx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fields.Debit.Equal(d("300.00")) {
		t.Errorf("debit = %s, want 300.00", fields.Debit)
	}
}

func TestTabularParser_TwoAmountColumns(t *testing.T) {
	p := &TabularParser{}
	ctx := NewContext()

	fields, err := p.Parse("TRANSFER CORRECTION  200.00-  50.00  15/01/2024  4,150.00", ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fields.Debit.Equal(d("200.00")) {
		t.Errorf("debit = %s, want 200.00", fields.Debit)
	}
	if !fields.Credit.Equal(d("50.00")) {
		t.Errorf("credit = %s, want 50.00", fields.Credit)
	}
}

func TestTabularParser_RejectsNonTabular(t *testing.T) {
	p := &TabularParser{}
	ctx := NewContext()

	lines := []string{
		"SERVICE FEE 35.00-",
		"15/01/2024 ATM WITHDRAWAL 500.00- 3,800.00",
		"CREDIT TRANSFER from ABC Company 1,500.00",
		"a  short  row",
	}
	for _, line := range lines {
		if p.CanParse(line, ctx) {
			t.Errorf("CanParse(%q) = true, want false", line)
		}
	}
}
