package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lakbayhr/hr-portal-go/internal/domain/schedule"
	"github.com/lakbayhr/hr-portal-go/internal/handler/http/middleware"
	"github.com/lakbayhr/hr-portal-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	GetMonthSchedule(w http.ResponseWriter, r *http.Request)
	GetScheduleByDate(w http.ResponseWriter, r *http.Request)
	GetScheduleRange(w http.ResponseWriter, r *http.Request)
	CreateSchedule(w http.ResponseWriter, r *http.Request)
	GenerateMonth(w http.ResponseWriter, r *http.Request)
	BulkUpdate(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// GetMonthSchedule implements ScheduleHandler. Year and month default
// to the current month when omitted.
func (h *scheduleHandlerImpl) GetMonthSchedule(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := middleware.EmployeeIDFromContext(r.Context())

	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		year = y
	}
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil {
			response.HandleError(w, schedule.ErrInvalidMonth)
			return
		}
		month = m
	}

	result, err := h.scheduleService.BuildMonth(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetScheduleByDate implements ScheduleHandler. Persisted records
// only; a date nobody scheduled is a 404.
func (h *scheduleHandlerImpl) GetScheduleByDate(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := middleware.EmployeeIDFromContext(r.Context())
	date := chi.URLParam(r, "date")

	result, err := h.scheduleService.GetByDate(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) GetScheduleRange(w http.ResponseWriter, r *http.Request) {
	employeeID, _ := middleware.EmployeeIDFromContext(r.Context())
	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")

	result, err := h.scheduleService.GetRange(r.Context(), employeeID, startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.EmployeeIDFromContext(r.Context())

	var req schedule.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.EmployeeID == "" {
		req.EmployeeID = callerID
	}
	req.CreatedBy = callerID

	result, err := h.scheduleService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule created successfully", result)
}

func (h *scheduleHandlerImpl) GenerateMonth(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.EmployeeIDFromContext(r.Context())

	var req schedule.GenerateMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.EmployeeID == "" {
		req.EmployeeID = callerID
	}
	req.CreatedBy = callerID

	result, err := h.scheduleService.GenerateMonth(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Month schedule generated successfully", result)
}

func (h *scheduleHandlerImpl) BulkUpdate(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.EmployeeIDFromContext(r.Context())

	var req schedule.BulkUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if len(req.Updates) == 0 {
		response.BadRequest(w, "No updates supplied", nil)
		return
	}
	req.CreatedBy = callerID

	result, err := h.scheduleService.BulkUpdate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
