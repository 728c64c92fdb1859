package http

import (
	"net/http"
	"strconv"

	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/report"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Monthly implements ReportHandler. Without employeeId it aggregates every
// employee for the month.
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return
	}

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	if employeeID := query.Get("employeeId"); employeeID != "" {
		result, err := h.reportService.BuildReport(r.Context(), employeeID, month, year)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	results, err := h.reportService.BuildAllReports(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
