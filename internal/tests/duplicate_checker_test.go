package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sthwalo/acc-sub020/internal/adapter/repository/memory"
	"github.com/sthwalo/acc-sub020/internal/adapter/repository/mocks"
	"github.com/sthwalo/acc-sub020/internal/domain"
	"github.com/sthwalo/acc-sub020/internal/usecase/services"
)

func storedWithdrawal(t *testing.T, repo *memory.BankTransactionRepository, balance string) domain.BankTransaction {
	t.Helper()

	stored, err := repo.Insert(context.Background(), domain.BankTransaction{
		CompanyID:       1,
		FiscalPeriodID:  1,
		TransactionDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Details:         "ATM WITHDRAWAL",
		DebitAmount:     decimal.RequireFromString("100.00"),
		CreditAmount:    decimal.Zero,
		Balance:         decimal.NullDecimal{Valid: true, Decimal: decimal.RequireFromString(balance)},
	})
	if err != nil {
		t.Fatalf("seed stored transaction: %v", err)
	}
	return stored
}

func withdrawalCandidate(t *testing.T, description, balance string) domain.StandardizedTransaction {
	t.Helper()

	txn, err := domain.NewStandardizedTransaction(domain.TransactionFields{
		Date:        time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Description: description,
		Debit:       decimal.RequireFromString("100.00"),
		Balance:     decimal.NullDecimal{Valid: true, Decimal: decimal.RequireFromString(balance)},
	})
	if err != nil {
		t.Fatalf("build candidate: %v", err)
	}
	return txn
}

func TestDuplicateCheckerMatchesOnFullKey(t *testing.T) {
	repo := memory.NewBankTransactionRepository()
	stored := storedWithdrawal(t, repo, "4300.00")
	checker := services.NewDuplicateChecker(repo)

	candidate := withdrawalCandidate(t, "ATM WITHDRAWAL", "4300.00")
	isDuplicate, err := checker.IsDuplicate(context.Background(), 1, &candidate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isDuplicate {
		t.Fatal("expected candidate matching all key fields to be a duplicate")
	}

	existing, err := checker.Check(context.Background(), 1, &candidate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if existing == nil || existing.ID != stored.ID {
		t.Fatalf("expected stored transaction %d, got %+v", stored.ID, existing)
	}
}

func TestDuplicateCheckerBalanceDiscriminates(t *testing.T) {
	repo := memory.NewBankTransactionRepository()
	storedWithdrawal(t, repo, "4300.00")
	checker := services.NewDuplicateChecker(repo)

	// One cent of running balance is enough to tell two otherwise identical
	// same-day withdrawals apart.
	candidate := withdrawalCandidate(t, "ATM WITHDRAWAL", "4300.01")
	isDuplicate, err := checker.IsDuplicate(context.Background(), 1, &candidate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isDuplicate {
		t.Fatal("expected differing balance to break the duplicate match")
	}
}

func TestDuplicateCheckerDescriptionCaseAndSpacing(t *testing.T) {
	repo := memory.NewBankTransactionRepository()
	storedWithdrawal(t, repo, "4300.00")
	checker := services.NewDuplicateChecker(repo)

	candidate := withdrawalCandidate(t, "  atm   withdrawal ", "4300.00")
	isDuplicate, err := checker.IsDuplicate(context.Background(), 1, &candidate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isDuplicate {
		t.Fatal("expected description match to ignore casing and spacing")
	}
}

func TestDuplicateCheckerDifferentCompany(t *testing.T) {
	repo := memory.NewBankTransactionRepository()
	storedWithdrawal(t, repo, "4300.00")
	checker := services.NewDuplicateChecker(repo)

	candidate := withdrawalCandidate(t, "ATM WITHDRAWAL", "4300.00")
	isDuplicate, err := checker.IsDuplicate(context.Background(), 2, &candidate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isDuplicate {
		t.Fatal("expected company scoping to isolate the match")
	}
}

func TestDuplicateCheckerNilCandidate(t *testing.T) {
	repo := memory.NewBankTransactionRepository()
	checker := services.NewDuplicateChecker(repo)

	existing, err := checker.Check(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if existing != nil {
		t.Fatal("expected nil candidate to never be a duplicate")
	}

	isDuplicate, err := checker.IsDuplicate(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isDuplicate {
		t.Fatal("expected nil candidate to never be a duplicate")
	}
}

func TestDuplicateCheckerStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockBankTransactionRepository(ctrl)
	repo.EXPECT().
		FindByKey(gomock.Any(), gomock.Any()).
		Return(domain.BankTransaction{}, errors.New("connection reset"))

	checker := services.NewDuplicateChecker(repo)
	candidate := withdrawalCandidate(t, "ATM WITHDRAWAL", "4300.00")

	_, err := checker.Check(context.Background(), 1, &candidate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate lookup")
}

func TestDuplicateCheckerNotFoundIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockBankTransactionRepository(ctrl)
	repo.EXPECT().
		FindByKey(gomock.Any(), gomock.Any()).
		Return(domain.BankTransaction{}, domain.ErrRecordNotFound)

	checker := services.NewDuplicateChecker(repo)
	candidate := withdrawalCandidate(t, "ATM WITHDRAWAL", "4300.00")

	existing, err := checker.Check(context.Background(), 1, &candidate)
	require.NoError(t, err)
	assert.Nil(t, existing)
}
