package get_professional_agenda

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/IS-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	"github.com/m04kA/IS-SalonBookingService/internal/service/bookings"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/agenda
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalIDStr := vars["professionalId"]
	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/agenda - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /professionals/{id}/agenda - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/agenda - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	agenda, err := h.service.GetAgenda(r.Context(), professionalID, date)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/agenda - Invalid input: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)

		default:
			h.logger.Error("GET /professionals/{id}/agenda - Failed to get agenda: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/agenda - Agenda retrieved successfully: professional_id=%d, date=%s, bookings=%d, blocks=%d",
		professionalID, dateStr, len(agenda.Bookings), len(agenda.BlockedSlots))
	handlers.RespondJSON(w, http.StatusOK, agenda)
}
