package models

import (
	"errors"
	"strings"

	"github.com/sthwalo/acc-sub020/internal/domain"
)

type IngestStatementRequest struct {
	CompanyID      int64    `json:"companyId"`
	FiscalPeriodID int64    `json:"fiscalPeriodId"`
	Source         string   `json:"source"`
	Lines          []string `json:"lines"`
}

func (r IngestStatementRequest) Validate() error {
	var errs []string

	if r.CompanyID <= 0 {
		errs = append(errs, "companyId must be greater than zero")
	}
	if r.FiscalPeriodID <= 0 {
		errs = append(errs, "fiscalPeriodId must be greater than zero")
	}
	if len(r.Lines) == 0 {
		errs = append(errs, "lines must not be empty")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (r IngestStatementRequest) ToBatch() domain.StatementBatch {
	source := strings.TrimSpace(r.Source)
	if source == "" {
		source = "api"
	}

	return domain.StatementBatch{
		CompanyID:      r.CompanyID,
		FiscalPeriodID: r.FiscalPeriodID,
		Source:         source,
		Lines:          r.Lines,
	}
}

type TransactionModel struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Balance     string `json:"balance,omitempty"`
	Reference   string `json:"reference,omitempty"`
}

type DuplicateModel struct {
	Position    int              `json:"position"`
	ExistingID  int64            `json:"existingId"`
	Transaction TransactionModel `json:"transaction"`
}

type UnparsedLineModel struct {
	Position int    `json:"position"`
	Text     string `json:"text"`
}

type LineFailureModel struct {
	Position int    `json:"position"`
	Text     string `json:"text"`
	Reason   string `json:"reason"`
}

type IngestStatementResponse struct {
	Source             string              `json:"source"`
	Accepted           []TransactionModel  `json:"accepted"`
	RejectedDuplicates []DuplicateModel    `json:"rejectedDuplicates"`
	Unparsed           []UnparsedLineModel `json:"unparsed"`
	Failed             []LineFailureModel  `json:"failed"`
}

func NewTransactionModel(txn domain.StandardizedTransaction) TransactionModel {
	model := TransactionModel{
		Date:        txn.Date().Format("2006-01-02"),
		Description: txn.Description(),
		Type:        string(txn.Type()),
		Amount:      txn.Amount().StringFixed(2),
		Reference:   txn.Reference(),
	}
	if balance := txn.Balance(); balance.Valid {
		model.Balance = balance.Decimal.StringFixed(2)
	}
	return model
}

func NewIngestStatementResponse(report domain.IngestReport) IngestStatementResponse {
	response := IngestStatementResponse{
		Source:             report.Source,
		Accepted:           make([]TransactionModel, 0, len(report.Accepted)),
		RejectedDuplicates: make([]DuplicateModel, 0, len(report.RejectedDuplicates)),
		Unparsed:           make([]UnparsedLineModel, 0, len(report.Unparsed)),
		Failed:             make([]LineFailureModel, 0, len(report.Failed)),
	}

	for _, txn := range report.Accepted {
		response.Accepted = append(response.Accepted, NewTransactionModel(txn))
	}
	for _, rejection := range report.RejectedDuplicates {
		response.RejectedDuplicates = append(response.RejectedDuplicates, DuplicateModel{
			Position:    rejection.Position,
			ExistingID:  rejection.ExistingID,
			Transaction: NewTransactionModel(rejection.Transaction),
		})
	}
	for _, line := range report.Unparsed {
		response.Unparsed = append(response.Unparsed, UnparsedLineModel{
			Position: line.Position,
			Text:     line.Text,
		})
	}
	for _, failure := range report.Failed {
		response.Failed = append(response.Failed, LineFailureModel{
			Position: failure.Position,
			Text:     failure.Text,
			Reason:   failure.Reason,
		})
	}

	return response
}
