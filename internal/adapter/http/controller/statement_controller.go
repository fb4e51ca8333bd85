package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sthwalo/acc-sub020/internal/adapter/http/models"
	"github.com/sthwalo/acc-sub020/internal/commons"
	"github.com/sthwalo/acc-sub020/internal/domain"
	"github.com/sthwalo/acc-sub020/internal/logger"
)

type StatementService interface {
	Ingest(ctx context.Context, batch domain.StatementBatch) (domain.IngestReport, error)
}

type StatementController struct {
	service StatementService
}

func NewStatementController(service StatementService) *StatementController {
	return &StatementController{service: service}
}

func (c *StatementController) RegisterRoutes(mux *http.ServeMux, logMiddleware func(http.Handler) http.Handler) {
	handler := http.HandlerFunc(c.ingest)
	if logMiddleware != nil {
		handler = logMiddleware(handler).ServeHTTP
	}

	mux.Handle("/api/statements/ingest", http.HandlerFunc(handler))
}

func (c *StatementController) ingest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodPost {
		response := commons.ErrorResponse[models.IngestStatementResponse]("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		logResponse(r, http.StatusMethodNotAllowed, start)
		return
	}

	var req models.IngestStatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.IngestStatementResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, start)
		return
	}
	logRequest(r, logger.Fields{
		"companyId":      req.CompanyID,
		"fiscalPeriodId": req.FiscalPeriodID,
		"source":         req.Source,
		"lines":          len(req.Lines),
	})

	if err := req.Validate(); err != nil {
		response := commons.ErrorResponse[models.IngestStatementResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, start)
		return
	}

	report, err := c.service.Ingest(r.Context(), req.ToBatch())
	if err != nil {
		logError(r, err, logger.Fields{"source": report.Source})
		response := commons.ErrorResponse[models.IngestStatementResponse]("failed to ingest statement", "Unable to process statement right now")
		writeJSON(w, http.StatusInternalServerError, response)
		logResponse(r, http.StatusInternalServerError, start)
		return
	}

	payload := models.NewIngestStatementResponse(report)
	response := commons.SuccessResponse("statement processed", payload)
	if report.HasFailures() {
		response = commons.PartialResponse("statement processed", payload, rejectionSummary(report)...)
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, start)
}

func rejectionSummary(report domain.IngestReport) []string {
	var notes []string
	if n := len(report.RejectedDuplicates); n > 0 {
		notes = append(notes, fmt.Sprintf("%d duplicate line(s) rejected", n))
	}
	if n := len(report.Unparsed); n > 0 {
		notes = append(notes, fmt.Sprintf("%d line(s) unparsed", n))
	}
	if n := len(report.Failed); n > 0 {
		notes = append(notes, fmt.Sprintf("%d line(s) failed validation", n))
	}
	return notes
}
