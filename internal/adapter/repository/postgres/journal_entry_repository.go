package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sthwalo/acc-sub020/internal/domain"
	"github.com/sthwalo/acc-sub020/internal/logger"
)

type JournalEntryRepository struct {
	db *sql.DB
}

func NewJournalEntryRepository(db *sql.DB) *JournalEntryRepository {
	return &JournalEntryRepository{db: db}
}

func (r *JournalEntryRepository) LinesForPeriod(ctx context.Context, companyID, fiscalPeriodID int64) ([]domain.JournalEntryLine, error) {
	logger.Info("journal entry repository lines for period", logger.Fields{
		"companyId":      companyID,
		"fiscalPeriodId": fiscalPeriodID,
	})

	if _, err := r.periodStart(ctx, companyID, fiscalPeriodID); err != nil {
		return nil, err
	}

	const query = `
SELECT a.code, a.name, a.account_type, l.debit_amount, l.credit_amount
FROM journal_entry_lines l
JOIN journal_entries e ON e.id = l.journal_entry_id
JOIN accounts a ON a.id = l.account_id
WHERE e.company_id = $1
  AND e.fiscal_period_id = $2
  AND e.posted
ORDER BY a.code ASC, l.id ASC`

	return r.queryLines(ctx, query, companyID, fiscalPeriodID)
}

func (r *JournalEntryRepository) LinesBeforePeriod(ctx context.Context, companyID, fiscalPeriodID int64) ([]domain.JournalEntryLine, error) {
	logger.Info("journal entry repository lines before period", logger.Fields{
		"companyId":      companyID,
		"fiscalPeriodId": fiscalPeriodID,
	})

	start, err := r.periodStart(ctx, companyID, fiscalPeriodID)
	if err != nil {
		return nil, err
	}

	const query = `
SELECT a.code, a.name, a.account_type, l.debit_amount, l.credit_amount
FROM journal_entry_lines l
JOIN journal_entries e ON e.id = l.journal_entry_id
JOIN accounts a ON a.id = l.account_id
WHERE e.company_id = $1
  AND e.entry_date < $2
  AND e.posted
ORDER BY a.code ASC, l.id ASC`

	return r.queryLines(ctx, query, companyID, start)
}

func (r *JournalEntryRepository) periodStart(ctx context.Context, companyID, fiscalPeriodID int64) (time.Time, error) {
	const query = `
SELECT start_date
FROM fiscal_periods
WHERE id = $1
  AND company_id = $2`

	var start time.Time
	if err := r.db.QueryRowContext(ctx, query, fiscalPeriodID, companyID).Scan(&start); err != nil {
		if err == sql.ErrNoRows {
			logger.Info("journal entry repository fiscal period not found", logger.Fields{
				"companyId":      companyID,
				"fiscalPeriodId": fiscalPeriodID,
			})
			return time.Time{}, domain.ErrPeriodNotFound
		}
		logger.Error("journal entry repository fiscal period lookup failed", err, logger.Fields{
			"companyId":      companyID,
			"fiscalPeriodId": fiscalPeriodID,
		})
		return time.Time{}, fmt.Errorf("lookup fiscal period: %w", err)
	}

	return start, nil
}

func (r *JournalEntryRepository) queryLines(ctx context.Context, query string, args ...any) ([]domain.JournalEntryLine, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("journal entry repository query lines failed", err, nil)
		return nil, fmt.Errorf("query journal lines: %w", err)
	}
	defer rows.Close()

	lines := make([]domain.JournalEntryLine, 0)
	for rows.Next() {
		var line domain.JournalEntryLine
		if err := rows.Scan(
			&line.AccountCode,
			&line.AccountName,
			&line.AccountType,
			&line.Debit,
			&line.Credit,
		); err != nil {
			logger.Error("journal entry repository scan line failed", err, nil)
			return nil, fmt.Errorf("scan journal line: %w", err)
		}

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		logger.Error("journal entry repository iterate lines failed", err, nil)
		return nil, fmt.Errorf("iterate journal lines: %w", err)
	}

	logger.Info("journal entry repository query lines success", logger.Fields{
		"count": len(lines),
	})

	return lines, nil
}
