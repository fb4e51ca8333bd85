package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sthwalo/acc-sub020/internal/adapter/http/models"
	"github.com/sthwalo/acc-sub020/internal/commons"
	"github.com/sthwalo/acc-sub020/internal/domain"
)

type statementServiceStub struct {
	ingestFn func(ctx context.Context, batch domain.StatementBatch) (domain.IngestReport, error)
}

func (s statementServiceStub) Ingest(ctx context.Context, batch domain.StatementBatch) (domain.IngestReport, error) {
	if s.ingestFn != nil {
		return s.ingestFn(ctx, batch)
	}
	return domain.IngestReport{}, nil
}

func acceptedTransaction(t *testing.T) domain.StandardizedTransaction {
	t.Helper()

	txn, err := domain.NewStandardizedTransaction(domain.TransactionFields{
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Description: "ATM WITHDRAWAL",
		Debit:       decimal.RequireFromString("500.00"),
	})
	if err != nil {
		t.Fatalf("build transaction: %v", err)
	}
	return txn
}

func postIngest(t *testing.T, svc StatementService, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/statements/ingest", strings.NewReader(body))
	rr := httptest.NewRecorder()
	NewStatementController(svc).ingest(rr, req)
	return rr
}

func TestStatementControllerIngestSuccess(t *testing.T) {
	var captured domain.StatementBatch
	svc := statementServiceStub{
		ingestFn: func(_ context.Context, batch domain.StatementBatch) (domain.IngestReport, error) {
			captured = batch
			return domain.IngestReport{
				Source:   batch.Source,
				Accepted: []domain.StandardizedTransaction{acceptedTransaction(t)},
			}, nil
		},
	}

	rr := postIngest(t, svc, `{"companyId":1,"fiscalPeriodId":7,"source":"january.txt","lines":["15/01/2024 ATM WITHDRAWAL 500.00- 3,800.00"]}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if captured.CompanyID != 1 || captured.FiscalPeriodID != 7 || len(captured.Lines) != 1 {
		t.Fatalf("service received batch %+v", captured)
	}

	var response commons.Response[models.IngestStatementResponse]
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !response.Success {
		t.Fatalf("expected success response, got %+v", response)
	}
	if response.Data == nil || len(response.Data.Accepted) != 1 {
		t.Fatalf("expected one accepted transaction, got %+v", response.Data)
	}
	if response.Data.Accepted[0].Amount != "500.00" {
		t.Errorf("accepted amount = %s, want 500.00", response.Data.Accepted[0].Amount)
	}
	if len(response.Errors) != 0 {
		t.Errorf("expected no error notes, got %v", response.Errors)
	}
}

func TestStatementControllerIngestPartial(t *testing.T) {
	svc := statementServiceStub{
		ingestFn: func(_ context.Context, batch domain.StatementBatch) (domain.IngestReport, error) {
			return domain.IngestReport{
				Source:   batch.Source,
				Accepted: []domain.StandardizedTransaction{acceptedTransaction(t)},
				RejectedDuplicates: []domain.DuplicateRejection{
					{Position: 2, Transaction: acceptedTransaction(t), ExistingID: 41},
				},
				Unparsed: []domain.UnparsedLine{{Position: 3, Text: "PENDING CARD PAYMENT"}},
			}, nil
		},
	}

	rr := postIngest(t, svc, `{"companyId":1,"fiscalPeriodId":1,"lines":["a","b","c"]}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var response commons.Response[models.IngestStatementResponse]
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !response.Success {
		t.Fatal("a report with rejected lines is still a processed statement")
	}
	if len(response.Errors) != 2 {
		t.Fatalf("expected 2 rejection notes, got %v", response.Errors)
	}
	if response.Data == nil || len(response.Data.RejectedDuplicates) != 1 {
		t.Fatalf("expected one itemized duplicate, got %+v", response.Data)
	}
	if response.Data.RejectedDuplicates[0].ExistingID != 41 {
		t.Errorf("duplicate existingId = %d, want 41", response.Data.RejectedDuplicates[0].ExistingID)
	}
}

func TestStatementControllerRejectsWrongMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/statements/ingest", nil)
	rr := httptest.NewRecorder()
	NewStatementController(statementServiceStub{}).ingest(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, rr.Code)
	}
}

func TestStatementControllerRejectsBadJSON(t *testing.T) {
	rr := postIngest(t, statementServiceStub{}, `{"companyId":`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestStatementControllerRejectsInvalidRequest(t *testing.T) {
	rr := postIngest(t, statementServiceStub{}, `{"companyId":0,"fiscalPeriodId":1,"lines":[]}`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}

	var response commons.Response[models.IngestStatementResponse]
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Success {
		t.Fatal("expected failure response")
	}
	if response.Message != "validation failed" {
		t.Errorf("message = %q, want validation failed", response.Message)
	}
}

func TestStatementControllerServiceError(t *testing.T) {
	svc := statementServiceStub{
		ingestFn: func(context.Context, domain.StatementBatch) (domain.IngestReport, error) {
			return domain.IngestReport{}, errors.New("insert at line 3: connection reset")
		},
	}

	rr := postIngest(t, svc, `{"companyId":1,"fiscalPeriodId":1,"lines":["x"]}`)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}

	var response commons.Response[models.IngestStatementResponse]
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Success {
		t.Fatal("expected failure response")
	}
	// Store details stay out of the response body.
	for _, note := range response.Errors {
		if strings.Contains(note, "connection reset") {
			t.Errorf("response leaked store error: %q", note)
		}
	}
}
