package service_interfaces

import (
	"context"

	"github.com/sthwalo/acc-sub020/internal/domain"
)

type DuplicateChecker interface {
	// Check returns the stored transaction the candidate collides with, or
	// nil when the candidate is new. A nil candidate is never a duplicate.
	Check(ctx context.Context, companyID int64, candidate *domain.StandardizedTransaction) (*domain.BankTransaction, error)
	IsDuplicate(ctx context.Context, companyID int64, candidate *domain.StandardizedTransaction) (bool, error)
}
