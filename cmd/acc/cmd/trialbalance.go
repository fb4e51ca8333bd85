package cmd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sthwalo/acc-sub020/internal/adapter/repository/postgres"
	"github.com/sthwalo/acc-sub020/internal/config"
	"github.com/sthwalo/acc-sub020/internal/logger"
	"github.com/sthwalo/acc-sub020/internal/rules"
	"github.com/sthwalo/acc-sub020/internal/usecase/services"
)

// trialBalanceCmd represents the trial-balance command.
var trialBalanceCmd = &cobra.Command{
	Use:   "trial-balance",
	Short: "Display the trial balance for a fiscal period",
	Long: `Display the trial balance for one company and fiscal period.

Shows:
- Every account touched by posted journal entries, in code order
- Opening balances carried forward from earlier periods
- Debit and credit column totals
- The difference when the columns do not match

Example:
  acc trial-balance --company 1 --period 3`,
	Run: runTrialBalance,
}

func init() {
	trialBalanceCmd.Flags().Int64Var(&companyID, "company", 0, "Company id (required)")
	trialBalanceCmd.Flags().Int64Var(&fiscalPeriodID, "period", 0, "Fiscal period id (required)")

	trialBalanceCmd.MarkFlagRequired("company")
	trialBalanceCmd.MarkFlagRequired("period")
}

func runTrialBalance(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	exitOnError(err, "failed to load configuration")

	ctx := context.Background()

	conn, err := postgres.Open(ctx, cfg.DatabaseDSN)
	exitOnError(err, "failed to connect to database")
	defer conn.Close()

	classification, err := rules.Load(cfg.RulesPath)
	if err != nil {
		logger.Warn("rules file not loaded, using default account classification", logger.Fields{
			"path":  cfg.RulesPath,
			"error": err.Error(),
		})
		classification = rules.Default()
	}

	ledgerService := services.NewLedgerService(postgres.NewJournalEntryRepository(conn), classification)

	report, err := ledgerService.ComputeTrialBalance(ctx, companyID, fiscalPeriodID)
	exitOnError(err, "failed to compute trial balance")

	fmt.Printf("\n=== Trial Balance (company %d, period %d) ===\n", report.CompanyID, report.FiscalPeriodID)
	fmt.Printf("%-8s %-32s %15s %15s\n", "Code", "Account", "Debit", "Credit")
	for _, account := range report.Accounts {
		fmt.Printf("%-8s %-32s %15s %15s\n",
			account.AccountCode,
			account.AccountName,
			moneyCell(account.TrialBalanceDebit()),
			moneyCell(account.TrialBalanceCredit()),
		)
	}
	fmt.Printf("%-8s %-32s %15s %15s\n", "", "TOTAL",
		report.TotalDebit.StringFixed(2), report.TotalCredit.StringFixed(2))

	if report.Balanced {
		fmt.Println("\nBalanced: yes")
	} else {
		fmt.Printf("\nBalanced: NO (columns differ by %s)\n", report.Difference.StringFixed(2))
	}
	fmt.Println()
}

// moneyCell leaves the opposite column blank the way a printed trial
// balance does.
func moneyCell(value decimal.Decimal) string {
	if value.IsZero() {
		return "-"
	}
	return value.StringFixed(2)
}
