package repo_interfaces

import (
	"context"

	"github.com/sthwalo/acc-sub020/internal/domain"
)

//go:generate mockgen -destination=../mocks/mock_journal_entry_repository.go -package=mocks -source=journal_entry_repository.go JournalEntryRepository
type JournalEntryRepository interface {
	// LinesForPeriod returns every posted journal line inside the period,
	// joined to its chart-of-accounts row.
	LinesForPeriod(ctx context.Context, companyID, fiscalPeriodID int64) ([]domain.JournalEntryLine, error)
	// LinesBeforePeriod returns every posted journal line dated strictly
	// before the period start, for opening balance computation.
	LinesBeforePeriod(ctx context.Context, companyID, fiscalPeriodID int64) ([]domain.JournalEntryLine, error)
}
