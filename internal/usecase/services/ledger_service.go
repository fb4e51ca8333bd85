package services

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sthwalo/acc-sub020/internal/adapter/repository/repo_interfaces"
	"github.com/sthwalo/acc-sub020/internal/domain"
	"github.com/sthwalo/acc-sub020/internal/logger"
	"github.com/sthwalo/acc-sub020/internal/rules"
)

// LedgerService aggregates posted journal lines into a trial balance.
// Opening balances come from lines dated before the period start; the
// closing balance of each account moves with the period's activity on the
// account's normal side. Column totals compare exactly, never by tolerance.
type LedgerService struct {
	journalRepo    repo_interfaces.JournalEntryRepository
	classification *rules.Rules
}

func NewLedgerService(journalRepo repo_interfaces.JournalEntryRepository, classification *rules.Rules) *LedgerService {
	return &LedgerService{
		journalRepo:    journalRepo,
		classification: classification,
	}
}

func (s *LedgerService) ComputeTrialBalance(ctx context.Context, companyID, fiscalPeriodID int64) (domain.TrialBalanceReport, error) {
	logger.Info("ledger service compute trial balance", logger.Fields{
		"companyId":      companyID,
		"fiscalPeriodId": fiscalPeriodID,
	})

	prior, err := s.journalRepo.LinesBeforePeriod(ctx, companyID, fiscalPeriodID)
	if err != nil {
		return domain.TrialBalanceReport{}, err
	}

	current, err := s.journalRepo.LinesForPeriod(ctx, companyID, fiscalPeriodID)
	if err != nil {
		return domain.TrialBalanceReport{}, err
	}

	accounts := make(map[string]*domain.AccountBalance)
	touch := func(line domain.JournalEntryLine) *domain.AccountBalance {
		account, ok := accounts[line.AccountCode]
		if !ok {
			account = &domain.AccountBalance{
				AccountCode:   line.AccountCode,
				AccountName:   line.AccountName,
				NormalBalance: s.classification.NormalBalanceFor(line.AccountCode, line.AccountType),
			}
			accounts[line.AccountCode] = account
		}
		return account
	}

	for _, line := range prior {
		account := touch(line)
		account.OpeningBalance = account.OpeningBalance.Add(signedMovement(account.NormalBalance, line.Debit, line.Credit))
	}

	for _, line := range current {
		account := touch(line)
		account.PeriodDebits = account.PeriodDebits.Add(line.Debit)
		account.PeriodCredits = account.PeriodCredits.Add(line.Credit)
	}

	report := domain.TrialBalanceReport{
		CompanyID:      companyID,
		FiscalPeriodID: fiscalPeriodID,
		Accounts:       make([]domain.AccountBalance, 0, len(accounts)),
	}

	for _, account := range accounts {
		movement := signedMovement(account.NormalBalance, account.PeriodDebits, account.PeriodCredits)
		account.ClosingBalance = account.OpeningBalance.Add(movement)
		report.Accounts = append(report.Accounts, *account)
	}

	sort.Slice(report.Accounts, func(i, j int) bool {
		return report.Accounts[i].AccountCode < report.Accounts[j].AccountCode
	})

	for _, account := range report.Accounts {
		report.TotalDebit = report.TotalDebit.Add(account.TrialBalanceDebit())
		report.TotalCredit = report.TotalCredit.Add(account.TrialBalanceCredit())
	}
	report.Balanced = report.TotalDebit.Equal(report.TotalCredit)
	report.Difference = report.TotalDebit.Sub(report.TotalCredit)

	if !report.Balanced {
		logger.Warn("trial balance out of balance", logger.Fields{
			"companyId":      companyID,
			"fiscalPeriodId": fiscalPeriodID,
			"difference":     report.Difference.StringFixed(2),
		})
	}

	logger.Info("ledger service compute trial balance complete", logger.Fields{
		"companyId":   companyID,
		"accounts":    len(report.Accounts),
		"totalDebit":  report.TotalDebit.StringFixed(2),
		"totalCredit": report.TotalCredit.StringFixed(2),
		"balanced":    report.Balanced,
	})

	return report, nil
}

// signedMovement nets debits against credits from the account's own point of
// view: a debit-normal account grows with debits, a credit-normal account
// grows with credits.
func signedMovement(side domain.NormalBalance, debit, credit decimal.Decimal) decimal.Decimal {
	if side == domain.NormalBalanceCredit {
		return credit.Sub(debit)
	}
	return debit.Sub(credit)
}
