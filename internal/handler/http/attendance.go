package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/attendance"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockAction(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ClockAction implements AttendanceHandler. The server clock decides the
// window outcome; the client never sends a timestamp.
func (h *attendanceHandlerImpl) ClockAction(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockActionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.ClockAction(r.Context(), req, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded", result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.AttendanceFilter{}

	if employeeID := r.URL.Query().Get("employeeId"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if date := r.URL.Query().Get("date"); date != "" {
		filter.Date = &date
	}

	result, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
