package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sthwalo/acc-sub020/internal/adapter/http/models"
	"github.com/sthwalo/acc-sub020/internal/commons"
	"github.com/sthwalo/acc-sub020/internal/domain"
	"github.com/sthwalo/acc-sub020/internal/logger"
)

type LedgerService interface {
	ComputeTrialBalance(ctx context.Context, companyID, fiscalPeriodID int64) (domain.TrialBalanceReport, error)
}

type LedgerController struct {
	service LedgerService
}

func NewLedgerController(service LedgerService) *LedgerController {
	return &LedgerController{service: service}
}

func (c *LedgerController) RegisterRoutes(mux *http.ServeMux, logMiddleware func(http.Handler) http.Handler) {
	handler := http.HandlerFunc(c.trialBalance)
	if logMiddleware != nil {
		handler = logMiddleware(handler).ServeHTTP
	}

	mux.Handle("/api/ledger/trial-balance", http.HandlerFunc(handler))
}

func (c *LedgerController) trialBalance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodGet {
		response := commons.ErrorResponse[models.TrialBalanceResponse]("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		logResponse(r, http.StatusMethodNotAllowed, start)
		return
	}

	req, err := parseTrialBalanceRequest(r)
	if err != nil {
		response := commons.ErrorResponse[models.TrialBalanceResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, start)
		return
	}
	if err := req.Validate(); err != nil {
		response := commons.ErrorResponse[models.TrialBalanceResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, start)
		return
	}

	report, err := c.service.ComputeTrialBalance(r.Context(), req.CompanyID, req.FiscalPeriodID)
	if err != nil {
		logError(r, err, logger.Fields{"companyId": req.CompanyID})
		if errors.Is(err, domain.ErrPeriodNotFound) {
			response := commons.ErrorResponse[models.TrialBalanceResponse]("Fiscal period not found")
			writeJSON(w, http.StatusNotFound, response)
			logResponse(r, http.StatusNotFound, start)
			return
		}
		response := commons.ErrorResponse[models.TrialBalanceResponse]("failed to compute trial balance", "Unable to compute trial balance right now")
		writeJSON(w, http.StatusInternalServerError, response)
		logResponse(r, http.StatusInternalServerError, start)
		return
	}

	payload := models.NewTrialBalanceResponse(report)
	response := commons.SuccessResponse("trial balance computed", payload)
	if !report.Balanced {
		note := fmt.Sprintf("columns differ by %s", report.Difference.StringFixed(2))
		response = commons.PartialResponse("trial balance computed", payload, note)
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, start)
}

func parseTrialBalanceRequest(r *http.Request) (models.TrialBalanceRequest, error) {
	query := r.URL.Query()

	companyID, err := strconv.ParseInt(query.Get("companyId"), 10, 64)
	if err != nil {
		return models.TrialBalanceRequest{}, fmt.Errorf("companyId must be an integer")
	}

	fiscalPeriodID, err := strconv.ParseInt(query.Get("fiscalPeriodId"), 10, 64)
	if err != nil {
		return models.TrialBalanceRequest{}, fmt.Errorf("fiscalPeriodId must be an integer")
	}

	return models.TrialBalanceRequest{
		CompanyID:      companyID,
		FiscalPeriodID: fiscalPeriodID,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
