package models

import (
	"errors"
	"strings"

	"github.com/sthwalo/acc-sub020/internal/domain"
)

type TrialBalanceRequest struct {
	CompanyID      int64
	FiscalPeriodID int64
}

func (r TrialBalanceRequest) Validate() error {
	var errs []string

	if r.CompanyID <= 0 {
		errs = append(errs, "companyId must be greater than zero")
	}
	if r.FiscalPeriodID <= 0 {
		errs = append(errs, "fiscalPeriodId must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TrialBalanceRow struct {
	AccountCode string `json:"accountCode"`
	AccountName string `json:"accountName"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
}

type TrialBalanceResponse struct {
	CompanyID      int64             `json:"companyId"`
	FiscalPeriodID int64             `json:"fiscalPeriodId"`
	Rows           []TrialBalanceRow `json:"rows"`
	TotalDebit     string            `json:"totalDebit"`
	TotalCredit    string            `json:"totalCredit"`
	Balanced       bool              `json:"balanced"`
	Difference     string            `json:"difference"`
}

func NewTrialBalanceResponse(report domain.TrialBalanceReport) TrialBalanceResponse {
	response := TrialBalanceResponse{
		CompanyID:      report.CompanyID,
		FiscalPeriodID: report.FiscalPeriodID,
		Rows:           make([]TrialBalanceRow, 0, len(report.Accounts)),
		TotalDebit:     report.TotalDebit.StringFixed(2),
		TotalCredit:    report.TotalCredit.StringFixed(2),
		Balanced:       report.Balanced,
		Difference:     report.Difference.StringFixed(2),
	}

	for _, account := range report.Accounts {
		response.Rows = append(response.Rows, TrialBalanceRow{
			AccountCode: account.AccountCode,
			AccountName: account.AccountName,
			Debit:       account.TrialBalanceDebit().StringFixed(2),
			Credit:      account.TrialBalanceCredit().StringFixed(2),
		})
	}

	return response
}
