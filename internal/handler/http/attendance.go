package http

import (
	"net/http"

	"github.com/lakbayhr/hr-portal-go/internal/domain/attendance"
	"github.com/lakbayhr/hr-portal-go/internal/handler/http/middleware"
	"github.com/lakbayhr/hr-portal-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetPeriodSummary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

func (h *attendanceHandlerImpl) GetPeriodSummary(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := middleware.EmployeeIDFromContext(r.Context())
	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")

	result, err := h.attendanceService.PeriodReport(r.Context(), employeeID, startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
