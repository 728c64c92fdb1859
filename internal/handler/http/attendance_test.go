package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/attendance"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/employee"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/domain/leave"
	"github.com/Iqrahussain-041/Attendance-Portal-System/internal/handler/http/response"
)

type fakeAttendanceService struct {
	clockFn func(ctx context.Context, req attendance.ClockActionRequest, now time.Time) (attendance.AttendanceResponse, error)
	listFn  func(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error)
}

func (f *fakeAttendanceService) ClockAction(ctx context.Context, req attendance.ClockActionRequest, now time.Time) (attendance.AttendanceResponse, error) {
	return f.clockFn(ctx, req, now)
}

func (f *fakeAttendanceService) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	return f.listFn(ctx, filter)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestClockActionHandlerSuccess(t *testing.T) {
	clockIn := "21:05:00"
	svc := &fakeAttendanceService{
		clockFn: func(ctx context.Context, req attendance.ClockActionRequest, now time.Time) (attendance.AttendanceResponse, error) {
			assert.Equal(t, "emp-1", req.EmployeeID)
			assert.Equal(t, "clock-in", req.Action)
			assert.WithinDuration(t, time.Now(), now, time.Minute)
			return attendance.AttendanceResponse{
				EmployeeID: req.EmployeeID,
				Date:       "2026-08-14",
				ClockIn:    &clockIn,
				Status:     "present",
			}, nil
		},
	}
	handler := NewAttendanceHandler(svc)

	body := bytes.NewBufferString(`{"employeeId":"emp-1","action":"clock-in"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/action", body)
	rec := httptest.NewRecorder()
	handler.ClockAction(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
}

func TestClockActionHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"window closed", attendance.ErrClockInWindowClosed, http.StatusBadRequest},
		{"already clocked in", attendance.ErrAlreadyClockedIn, http.StatusBadRequest},
		{"not clocked in", attendance.ErrNotClockedIn, http.StatusBadRequest},
		{"unknown employee", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"store failure", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := &fakeAttendanceService{
				clockFn: func(ctx context.Context, req attendance.ClockActionRequest, now time.Time) (attendance.AttendanceResponse, error) {
					return attendance.AttendanceResponse{}, c.err
				},
			}
			handler := NewAttendanceHandler(svc)

			body := bytes.NewBufferString(`{"employeeId":"emp-1","action":"clock-in"}`)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/action", body)
			rec := httptest.NewRecorder()
			handler.ClockAction(rec, req)

			assert.Equal(t, c.wantCode, rec.Code)
			envelope := decodeEnvelope(t, rec)
			assert.False(t, envelope.Success)
			require.NotNil(t, envelope.Error)
		})
	}
}

func TestClockActionHandlerBadJSON(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/action", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	handler.ClockAction(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAttendanceHandlerFilters(t *testing.T) {
	svc := &fakeAttendanceService{
		listFn: func(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
			require.NotNil(t, filter.EmployeeID)
			require.NotNil(t, filter.Date)
			assert.Equal(t, "emp-1", *filter.EmployeeID)
			assert.Equal(t, "2026-08-14", *filter.Date)
			return attendance.ListAttendanceResponse{Attendance: []attendance.AttendanceResponse{}}, nil
		},
	}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance?employeeId=emp-1&date=2026-08-14", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

type fakeLeaveService struct {
	requestFn func(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	decideFn  func(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error)
	listFn    func(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeavesResponse, error)
}

func (f *fakeLeaveService) RequestLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.requestFn(ctx, req)
}

func (f *fakeLeaveService) DecideLeave(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return f.decideFn(ctx, req)
}

func (f *fakeLeaveService) ListLeaves(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeavesResponse, error) {
	return f.listFn(ctx, filter)
}

func TestDecideLeaveHandlerTakesDateFromURL(t *testing.T) {
	svc := &fakeLeaveService{
		decideFn: func(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
			assert.Equal(t, "2026-08-20", req.Date)
			assert.Equal(t, "emp-1", req.EmployeeID)
			assert.Equal(t, "approved", req.Status)
			return leave.LeaveResponse{
				EmployeeID: req.EmployeeID,
				Date:       req.Date,
				Status:     req.Status,
			}, nil
		},
	}
	handler := NewLeaveHandler(svc)

	r := chi.NewRouter()
	r.Patch("/leaves/{date}", handler.Decide)

	body := bytes.NewBufferString(`{"employeeId":"emp-1","status":"approved"}`)
	req := httptest.NewRequest(http.MethodPatch, "/leaves/2026-08-20", body)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
}

func TestRequestLeaveHandlerConflict(t *testing.T) {
	svc := &fakeLeaveService{
		requestFn: func(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
			return leave.LeaveResponse{}, leave.ErrDuplicateRequest
		},
	}
	handler := NewLeaveHandler(svc)

	body := bytes.NewBufferString(`{"employeeId":"emp-1","date":"2026-08-20","type":"full-day","reason":"travel"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leaves", body)
	rec := httptest.NewRecorder()
	handler.Request(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
