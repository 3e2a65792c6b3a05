package create_blocked_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/IS-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/IS-SalonBookingService/internal/service/blockedslots"
	"github.com/m04kA/IS-SalonBookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные блокировки"
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

// Handle POST /api/v1/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockedSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /blocked-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	block, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, blockedslots.ErrInvalidInput):
			h.logger.Warn("POST /blocked-slots - Invalid input: professional_id=%d, error=%v", req.ProfessionalID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /blocked-slots - Failed to create blocked slot: professional_id=%d, error=%v",
				req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-slots - Blocked slot created successfully: block_id=%d, professional_id=%d",
		block.ID, block.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBlockedSlot(block))
}
