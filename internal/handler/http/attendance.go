package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pulsehr/pulse-backend-go/internal/domain/attendance"
	"github.com/pulsehr/pulse-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	GetMyMonthlyLog(w http.ResponseWriter, r *http.Request)
	GetMyMonthlyAnalytics(w http.ResponseWriter, r *http.Request)
	ListTimeEntries(w http.ResponseWriter, r *http.Request)
	UpdateTimeEntry(w http.ResponseWriter, r *http.Request)
	DeleteTimeEntry(w http.ResponseWriter, r *http.Request)
	GetMonthlyAnalytics(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func timeEntryFilterFromQuery(r *http.Request) attendance.TimeEntryFilter {
	filter := attendance.TimeEntryFilter{}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	return filter
}

func monthlyRequestFromQuery(r *http.Request, employeeID string) attendance.MonthlyRequest {
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	return attendance.MonthlyRequest{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
	}
}

// ClockIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	result, err := a.attendanceService.ClockIn(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in successfully", result)
}

// ClockOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	result, err := a.attendanceService.ClockOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out successfully", result)
}

// GetMyAttendance implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := a.attendanceService.GetMyAttendance(r.Context(), timeEntryFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Entries, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// GetMyMonthlyLog implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetMyMonthlyLog(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := a.attendanceService.MonthlyLog(r.Context(), monthlyRequestFromQuery(r, employeeID))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyMonthlyAnalytics implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetMyMonthlyAnalytics(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := a.attendanceService.MonthlyAnalytics(r.Context(), monthlyRequestFromQuery(r, employeeID))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListTimeEntries implements AttendanceHandler.
func (a *AttendanceHandlerImpl) ListTimeEntries(w http.ResponseWriter, r *http.Request) {
	result, err := a.attendanceService.ListTimeEntries(r.Context(), timeEntryFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Entries, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// UpdateTimeEntry implements AttendanceHandler.
func (a *AttendanceHandlerImpl) UpdateTimeEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Time entry ID is required", nil)
		return
	}

	var req attendance.UpdateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateTimeEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := a.attendanceService.UpdateTimeEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry updated successfully", result)
}

// DeleteTimeEntry implements AttendanceHandler.
func (a *AttendanceHandlerImpl) DeleteTimeEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Time entry ID is required", nil)
		return
	}

	if err := a.attendanceService.DeleteTimeEntry(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry deleted successfully", nil)
}

// GetMonthlyAnalytics implements AttendanceHandler. Admin view of any
// employee's month.
func (a *AttendanceHandlerImpl) GetMonthlyAnalytics(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := a.attendanceService.MonthlyAnalytics(r.Context(), monthlyRequestFromQuery(r, employeeID))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}
