package get_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/IS-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/IS-SalonBookingService/internal/service/workinghours"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
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

// Handle GET /api/v1/professionals/{professionalId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalIDStr := vars["professionalId"]
	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/working-hours - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	hours, err := h.service.Get(r.Context(), professionalID)
	if err != nil {
		switch {
		case errors.Is(err, workinghours.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id}/working-hours - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		default:
			h.logger.Error("GET /professionals/{id}/working-hours - Failed to get working hours: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/working-hours - Working hours retrieved: professional_id=%d", professionalID)
	handlers.RespondJSON(w, http.StatusOK, hours)
}
