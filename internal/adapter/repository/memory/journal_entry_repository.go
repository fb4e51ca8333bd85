package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sthwalo/acc-sub020/internal/adapter/repository/repo_interfaces"
	"github.com/sthwalo/acc-sub020/internal/domain"
)

type fiscalPeriod struct {
	companyID int64
	start     time.Time
	end       time.Time
}

type journalEntry struct {
	companyID      int64
	fiscalPeriodID int64
	entryDate      time.Time
	lines          []domain.JournalEntryLine
}

// JournalEntryRepository holds posted journal entries in memory, keyed by
// company and fiscal period. Periods must be registered before their lines
// can be queried.
type JournalEntryRepository struct {
	mu      sync.RWMutex
	periods map[int64]fiscalPeriod
	entries []journalEntry
}

func NewJournalEntryRepository() *JournalEntryRepository {
	return &JournalEntryRepository{
		periods: make(map[int64]fiscalPeriod),
	}
}

// AddPeriod registers a fiscal period so line queries can resolve it.
func (r *JournalEntryRepository) AddPeriod(id, companyID int64, start, end time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.periods[id] = fiscalPeriod{companyID: companyID, start: start, end: end}
}

// AddEntry stores one posted journal entry with its lines.
func (r *JournalEntryRepository) AddEntry(companyID, fiscalPeriodID int64, entryDate time.Time, lines ...domain.JournalEntryLine) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, journalEntry{
		companyID:      companyID,
		fiscalPeriodID: fiscalPeriodID,
		entryDate:      entryDate,
		lines:          lines,
	})
}

func (r *JournalEntryRepository) LinesForPeriod(_ context.Context, companyID, fiscalPeriodID int64) ([]domain.JournalEntryLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, err := r.lookupPeriod(companyID, fiscalPeriodID); err != nil {
		return nil, err
	}

	lines := make([]domain.JournalEntryLine, 0)
	for _, entry := range r.entries {
		if entry.companyID != companyID || entry.fiscalPeriodID != fiscalPeriodID {
			continue
		}
		lines = append(lines, entry.lines...)
	}

	return lines, nil
}

func (r *JournalEntryRepository) LinesBeforePeriod(_ context.Context, companyID, fiscalPeriodID int64) ([]domain.JournalEntryLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	period, err := r.lookupPeriod(companyID, fiscalPeriodID)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.JournalEntryLine, 0)
	for _, entry := range r.entries {
		if entry.companyID != companyID || !entry.entryDate.Before(period.start) {
			continue
		}
		lines = append(lines, entry.lines...)
	}

	return lines, nil
}

func (r *JournalEntryRepository) lookupPeriod(companyID, fiscalPeriodID int64) (fiscalPeriod, error) {
	period, ok := r.periods[fiscalPeriodID]
	if !ok || period.companyID != companyID {
		return fiscalPeriod{}, domain.ErrPeriodNotFound
	}

	return period, nil
}

var _ repo_interfaces.JournalEntryRepository = (*JournalEntryRepository)(nil)
