package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sthwalo/acc-sub020/internal/adapter/repository/repo_interfaces"
	"github.com/sthwalo/acc-sub020/internal/domain"
	"github.com/sthwalo/acc-sub020/internal/logger"
	"github.com/sthwalo/acc-sub020/internal/parser"
	"github.com/sthwalo/acc-sub020/internal/usecase/service_interfaces"
)

// StatementService turns raw statement text into persisted bank transactions.
// Lines flow through classification, the parser chain, validation and the
// duplicate check; each accepted transaction is committed before the next
// line is examined, so an identical line later in the same statement is
// rejected by the store lookup.
type StatementService struct {
	bankTransactionRepo repo_interfaces.BankTransactionRepository
	duplicateChecker    service_interfaces.DuplicateChecker
}

func NewStatementService(
	bankTransactionRepo repo_interfaces.BankTransactionRepository,
	duplicateChecker service_interfaces.DuplicateChecker,
) *StatementService {
	return &StatementService{
		bankTransactionRepo: bankTransactionRepo,
		duplicateChecker:    duplicateChecker,
	}
}

func (s *StatementService) Ingest(ctx context.Context, batch domain.StatementBatch) (domain.IngestReport, error) {
	logger.Info("statement service ingest", logger.Fields{
		"source":         batch.Source,
		"companyId":      batch.CompanyID,
		"fiscalPeriodId": batch.FiscalPeriodID,
		"lines":          len(batch.Lines),
	})

	report := domain.IngestReport{
		Source:             batch.Source,
		Accepted:           make([]domain.StandardizedTransaction, 0),
		RejectedDuplicates: make([]domain.DuplicateRejection, 0),
		Unparsed:           make([]domain.UnparsedLine, 0),
		Failed:             make([]domain.LineFailure, 0),
	}

	chain := parser.NewChain()
	runCtx := parser.NewContext()

	for i, line := range batch.Lines {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		position := i + 1
		if !parser.IsTransactionLine(line) {
			continue
		}

		fields, outcome, err := chain.ParseLine(line, runCtx)
		if err != nil {
			report.Failed = append(report.Failed, domain.LineFailure{
				Position: position,
				Text:     line,
				Reason:   err.Error(),
			})
			continue
		}
		switch outcome {
		case parser.OutcomeSkipped:
			continue
		case parser.OutcomeNoMatch:
			report.Unparsed = append(report.Unparsed, domain.UnparsedLine{
				Position: position,
				Text:     line,
			})
			continue
		}

		transaction, err := domain.NewStandardizedTransaction(fields)
		if err != nil {
			report.Failed = append(report.Failed, domain.LineFailure{
				Position: position,
				Text:     line,
				Reason:   err.Error(),
			})
			continue
		}

		existing, err := s.duplicateChecker.Check(ctx, batch.CompanyID, &transaction)
		if err != nil {
			return report, fmt.Errorf("duplicate check at line %d: %w", position, err)
		}
		if existing != nil {
			report.RejectedDuplicates = append(report.RejectedDuplicates, domain.DuplicateRejection{
				Position:    position,
				Transaction: transaction,
				ExistingID:  existing.ID,
			})
			continue
		}

		record := domain.NewBankTransaction(batch.CompanyID, batch.FiscalPeriodID, transaction)
		if _, err := s.bankTransactionRepo.Insert(ctx, record); err != nil {
			return report, fmt.Errorf("insert at line %d: %w", position, err)
		}

		report.Accepted = append(report.Accepted, transaction)
	}

	logger.Info("statement service ingest complete", logger.Fields{
		"source":     batch.Source,
		"accepted":   len(report.Accepted),
		"duplicates": len(report.RejectedDuplicates),
		"unparsed":   len(report.Unparsed),
		"failed":     len(report.Failed),
	})

	return report, nil
}

// IngestAll processes several statements concurrently, one goroutine per
// batch. Reports keep the order of the input batches. The first store error
// cancels the remaining work; transactions committed before the failure stay
// committed.
func (s *StatementService) IngestAll(ctx context.Context, batches []domain.StatementBatch) ([]domain.IngestReport, error) {
	reports := make([]domain.IngestReport, len(batches))

	g, groupCtx := errgroup.WithContext(ctx)
	for i, batch := range batches {
		g.Go(func() error {
			report, err := s.Ingest(groupCtx, batch)
			reports[i] = report
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return reports, err
	}

	return reports, nil
}
