package service_interfaces

import (
	"context"

	"github.com/sthwalo/acc-sub020/internal/domain"
)

type LedgerService interface {
	ComputeTrialBalance(ctx context.Context, companyID, fiscalPeriodID int64) (domain.TrialBalanceReport, error)
}
