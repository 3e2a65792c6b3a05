package update_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/IS-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	"github.com/m04kA/IS-SalonBookingService/internal/service/workinghours"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidSchedule       = "некорректное расписание"
	msgProfessionalNotFound  = "профессионал не найден"
)

type Handler struct {
	service WorkingHoursService
	logger  Logger
}

func NewHandler(service WorkingHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/professionals/{professionalId}/working-hours
// Тело запроса - недельное расписание целиком, частичных обновлений нет.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalIDStr := vars["professionalId"]
	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /professionals/{id}/working-hours - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	var hours domain.WeekSchedule
	if err := handlers.DecodeJSON(r, &hours); err != nil {
		h.logger.Warn("PUT /professionals/{id}/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), professionalID, hours)
	if err != nil {
		switch {
		case errors.Is(err, workinghours.ErrProfessionalNotFound):
			h.logger.Warn("PUT /professionals/{id}/working-hours - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, workinghours.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/{id}/working-hours - Invalid schedule: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /professionals/{id}/working-hours - Failed to update working hours: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /professionals/{id}/working-hours - Working hours updated: professional_id=%d", professionalID)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
