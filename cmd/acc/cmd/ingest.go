package cmd

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sthwalo/acc-sub020/internal/adapter/history"
	"github.com/sthwalo/acc-sub020/internal/adapter/repository/memory"
	"github.com/sthwalo/acc-sub020/internal/adapter/repository/postgres"
	"github.com/sthwalo/acc-sub020/internal/adapter/repository/repo_interfaces"
	"github.com/sthwalo/acc-sub020/internal/config"
	"github.com/sthwalo/acc-sub020/internal/domain"
	"github.com/sthwalo/acc-sub020/internal/logger"
	"github.com/sthwalo/acc-sub020/internal/usecase/services"
)

var (
	companyID      int64
	fiscalPeriodID int64
	dryRun         bool
)

// ingestCmd represents the ingest command.
var ingestCmd = &cobra.Command{
	Use:   "ingest <statement-file>...",
	Short: "Import bank statement files into the transaction store",
	Long: `Import one or more bank statement text files.

This command:
1. Parses each statement line by line
2. Rejects lines that duplicate stored transactions
3. Reports unparsed and invalid lines per file
4. Records each run in the SQLite import history

A file whose checksum was imported before is flagged before the run; its
lines still go through the duplicate check, so a re-import is safe.

Example:
  acc ingest --company 1 --period 3 statements/march.txt
  acc ingest --company 1 --period 3 --dry-run statements/march.txt statements/april.txt`,
	Args: cobra.MinimumNArgs(1),
	Run:  runIngest,
}

func init() {
	ingestCmd.Flags().Int64Var(&companyID, "company", 0, "Company id (required)")
	ingestCmd.Flags().Int64Var(&fiscalPeriodID, "period", 0, "Fiscal period id (required)")
	ingestCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse against an empty in-memory store, write nothing")

	ingestCmd.MarkFlagRequired("company")
	ingestCmd.MarkFlagRequired("period")
}

func runIngest(cmd *cobra.Command, args []string) {
	logger.Info("starting ingest", logger.Fields{
		"files":          len(args),
		"companyId":      companyID,
		"fiscalPeriodId": fiscalPeriodID,
		"dryRun":         dryRun,
	})

	cfg, err := config.Load()
	exitOnError(err, "failed to load configuration")

	ctx := context.Background()

	var bankTransactionRepo repo_interfaces.BankTransactionRepository
	if dryRun {
		bankTransactionRepo = memory.NewBankTransactionRepository()
	} else {
		err := postgres.RunMigrations(ctx, cfg.DatabaseDSN, cfg.MigrationsDir)
		exitOnError(err, "failed to run migrations")

		conn, err := postgres.Open(ctx, cfg.DatabaseDSN)
		exitOnError(err, "failed to connect to database")
		defer conn.Close()

		bankTransactionRepo = postgres.NewBankTransactionRepository(conn)
	}

	var store *history.Store
	if !dryRun {
		store, err = history.Open(cfg.HistoryDBPath)
		exitOnError(err, "failed to open history database")
		defer store.Close()
	}

	batches := make([]domain.StatementBatch, 0, len(args))
	checksums := make([]string, 0, len(args))
	for _, path := range args {
		lines, checksum, err := readStatement(path)
		exitOnError(err, fmt.Sprintf("failed to read %s", path))

		if store != nil {
			previous, err := store.LastRunForChecksum(ctx, checksum)
			exitOnError(err, "failed to check import history")
			if previous != nil {
				logger.Warn("file was imported before", logger.Fields{
					"file":       path,
					"runId":      previous.RunID,
					"importedAt": previous.ImportedAt,
				})
				fmt.Printf("Warning: %s was already imported on %s (run %s); duplicate lines will be rejected\n",
					path, previous.ImportedAt.Format("2006-01-02 15:04"), previous.RunID)
			}
		}

		batches = append(batches, domain.StatementBatch{
			CompanyID:      companyID,
			FiscalPeriodID: fiscalPeriodID,
			Source:         filepath.Base(path),
			Lines:          lines,
		})
		checksums = append(checksums, checksum)
	}

	statementService := services.NewStatementService(
		bankTransactionRepo,
		services.NewDuplicateChecker(bankTransactionRepo),
	)

	if dryRun {
		fmt.Println("[DRY RUN] Parsing against an empty in-memory store; nothing will be written")
	}

	reports, runErr := statementService.IngestAll(ctx, batches)
	for i := range reports {
		printReport(args[i], reports[i])
	}
	exitOnError(runErr, "ingest aborted by store failure")

	if store != nil {
		for i, report := range reports {
			run := history.ImportRun{
				RunID:          uuid.NewString(),
				Source:         report.Source,
				Checksum:       checksums[i],
				CompanyID:      companyID,
				FiscalPeriodID: fiscalPeriodID,
				Accepted:       len(report.Accepted),
				Duplicates:     len(report.RejectedDuplicates),
				Unparsed:       len(report.Unparsed),
				Failed:         len(report.Failed),
			}
			if _, err := store.RecordRun(ctx, run); err != nil {
				logger.Error("failed to record import run", err, logger.Fields{"source": report.Source})
			}
		}

		stats, err := store.GetStats(ctx)
		if err == nil {
			fmt.Println("\n=== Import Statistics ===")
			fmt.Printf("Total runs:       %d\n", stats.TotalRuns)
			fmt.Printf("Total accepted:   %d\n", stats.TotalAccepted)
			fmt.Printf("Total duplicates: %d\n", stats.TotalDuplicates)
			if stats.LastImport.Valid {
				fmt.Printf("Last import:      %s\n", stats.LastImport.String)
			}
			fmt.Println()
		}
	}

	logger.Info("ingest completed", logger.Fields{"files": len(args)})
}

// readStatement loads a statement file and returns its lines and SHA-256
// checksum. Line endings are normalized so the same statement exported on
// Windows and Unix parses identically.
func readStatement(path string) ([]string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	checksum := fmt.Sprintf("%x", sha256.Sum256(data))
	normalized := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(normalized, "\n"), checksum, nil
}

func printReport(path string, report domain.IngestReport) {
	fmt.Printf("\n=== %s ===\n", path)
	fmt.Printf("Accepted:   %d\n", len(report.Accepted))
	fmt.Printf("Duplicates: %d\n", len(report.RejectedDuplicates))
	fmt.Printf("Unparsed:   %d\n", len(report.Unparsed))
	fmt.Printf("Failed:     %d\n", len(report.Failed))

	for _, rejection := range report.RejectedDuplicates {
		fmt.Printf("  line %d: duplicate of stored transaction %d: %s\n",
			rejection.Position, rejection.ExistingID, rejection.Transaction.Description())
	}
	for _, unparsed := range report.Unparsed {
		fmt.Printf("  line %d: no parser matched: %s\n", unparsed.Position, unparsed.Text)
	}
	for _, failure := range report.Failed {
		fmt.Printf("  line %d: %s\n", failure.Position, failure.Reason)
	}
}
