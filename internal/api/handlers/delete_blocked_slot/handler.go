package delete_blocked_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/IS-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/IS-SalonBookingService/internal/service/blockedslots"
)

const (
	msgInvalidBlockID = "некорректный ID блокировки"
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

// Handle DELETE /api/v1/blocked-slots/{blockId}
// Операция идемпотентна: удаление несуществующей блокировки - 204.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blockIDStr := vars["blockId"]

	blockID, err := strconv.ParseInt(blockIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /blocked-slots/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.Delete(r.Context(), blockID); err != nil {
		switch {
		case errors.Is(err, blockedslots.ErrInvalidInput):
			h.logger.Warn("DELETE /blocked-slots/{id} - Invalid input: block_id=%d, error=%v", blockID, err)
			handlers.RespondBadRequest(w, msgInvalidBlockID)

		default:
			h.logger.Error("DELETE /blocked-slots/{id} - Failed to delete blocked slot: block_id=%d, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocked-slots/{id} - Blocked slot deleted: block_id=%d", blockID)
	handlers.RespondNoContent(w)
}
