package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sthwalo/acc-sub020/internal/adapter/repository/repo_interfaces"
	"github.com/sthwalo/acc-sub020/internal/domain"
	"github.com/sthwalo/acc-sub020/internal/logger"
)

// DuplicateChecker decides whether a candidate transaction already exists in
// the persisted store. Matching uses the full composite key, so two legitimate
// same-day transactions with equal amounts still differ by their running
// balance.
type DuplicateChecker struct {
	bankTransactionRepo repo_interfaces.BankTransactionRepository
}

func NewDuplicateChecker(bankTransactionRepo repo_interfaces.BankTransactionRepository) *DuplicateChecker {
	return &DuplicateChecker{bankTransactionRepo: bankTransactionRepo}
}

func (c *DuplicateChecker) Check(ctx context.Context, companyID int64, candidate *domain.StandardizedTransaction) (*domain.BankTransaction, error) {
	if candidate == nil {
		logger.Warn("duplicate check received nil transaction", logger.Fields{
			"companyId": companyID,
		})
		return nil, nil
	}

	// The fiscal period is not part of the duplicate key, so the mapping can
	// run with a zero period id.
	key := domain.NewBankTransaction(companyID, 0, *candidate).Key()

	existing, err := c.bankTransactionRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("duplicate lookup: %w", err)
	}

	logger.Info("duplicate transaction detected", logger.Fields{
		"companyId":  companyID,
		"existingId": existing.ID,
		"date":       existing.TransactionDate.Format("2006-01-02"),
		"details":    existing.Details,
	})

	return &existing, nil
}

func (c *DuplicateChecker) IsDuplicate(ctx context.Context, companyID int64, candidate *domain.StandardizedTransaction) (bool, error) {
	existing, err := c.Check(ctx, companyID, candidate)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}
