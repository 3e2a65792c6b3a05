package get_blocked_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/IS-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	"github.com/m04kA/IS-SalonBookingService/internal/service/blockedslots"
	"github.com/m04kA/IS-SalonBookingService/internal/service/bookings/models"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service BlockedSlotService
	logger  Logger
}

func NewHandler(service BlockedSlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/blocked-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalIDStr := vars["professionalId"]
	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/blocked-slots - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /professionals/{id}/blocked-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/blocked-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	blocks, err := h.service.List(r.Context(), professionalID, date)
	if err != nil {
		switch {
		case errors.Is(err, blockedslots.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/blocked-slots - Invalid input: professional_id=%d, error=%v", professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)

		default:
			h.logger.Error("GET /professionals/{id}/blocked-slots - Failed to list blocked slots: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/blocked-slots - Blocked slots retrieved: professional_id=%d, date=%s, count=%d",
		professionalID, dateStr, len(blocks))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBlockedSlotList(blocks))
}
