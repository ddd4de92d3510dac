package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sinarkarya/leave-backend-go/internal/domain/payroll"
	"github.com/sinarkarya/leave-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ListEligible(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	CashOut(w http.ResponseWriter, r *http.Request)
	AnnualReset(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// ListEligible implements PayrollHandler.
func (p *PayrollHandlerImpl) ListEligible(w http.ResponseWriter, r *http.Request) {
	eligible, err := p.payrollService.ListEligible(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, eligible)
}

// History implements PayrollHandler.
func (p *PayrollHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	entries, err := p.payrollService.History(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}

// CashOut implements PayrollHandler.
func (p *PayrollHandlerImpl) CashOut(w http.ResponseWriter, r *http.Request) {
	actorID, ok := employeeIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	resp, err := p.payrollService.CashOut(r.Context(), actorID, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave balance encashed successfully", resp)
}

// AnnualReset implements PayrollHandler.
func (p *PayrollHandlerImpl) AnnualReset(w http.ResponseWriter, r *http.Request) {
	actorID, ok := employeeIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req payroll.AnnualResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AnnualReset decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := p.payrollService.AnnualReset(r.Context(), actorID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Annual leave balances reset", resp)
}
