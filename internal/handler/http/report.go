package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sinarkarya/leave-backend-go/internal/domain/audit"
	"github.com/sinarkarya/leave-backend-go/internal/domain/report"
	"github.com/sinarkarya/leave-backend-go/internal/handler/http/response"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	LeaveSummary(w http.ResponseWriter, r *http.Request)
	ActivityLogs(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
	auditService  audit.Service
}

func NewReportHandler(reportService report.Service, auditService audit.Service) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
		auditService:  auditService,
	}
}

// LeaveSummary implements ReportHandler. Defaults to the current calendar
// year when no window is given.
func (h *ReportHandlerImpl) LeaveSummary(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

	if v := r.URL.Query().Get("from"); v != "" {
		parsed, ok := validator.IsValidDate(v)
		if !ok {
			response.BadRequest(w, "from must be in YYYY-MM-DD format", nil)
			return
		}
		from = parsed
	}
	if v := r.URL.Query().Get("to"); v != "" {
		parsed, ok := validator.IsValidDate(v)
		if !ok {
			response.BadRequest(w, "to must be in YYYY-MM-DD format", nil)
			return
		}
		to = parsed
	}
	if from.After(to) {
		response.BadRequest(w, "from must not be after to", nil)
		return
	}

	summary, err := h.reportService.LeaveSummary(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ActivityLogs implements ReportHandler.
func (h *ReportHandlerImpl) ActivityLogs(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "limit must be a number", nil)
			return
		}
		limit = parsed
	}

	records, err := h.auditService.ListRecent(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
