package create_blocked_slot

import (
	"time"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	"github.com/m04kA/IS-SalonBookingService/internal/service/blockedslots"
	"github.com/m04kA/IS-SalonBookingService/pkg/types"
)

// CreateBlockedSlotRequest HTTP request model
type CreateBlockedSlotRequest struct {
	ProfessionalID int64  `json:"professionalId"`
	BlockDate      string `json:"blockDate"` // "2025-10-15"
	StartTime      string `json:"startTime"` // "10:00", игнорируется при fullDay
	EndTime        string `json:"endTime"`   // "12:00", игнорируется при fullDay
	Reason         string `json:"reason,omitempty"`
	FullDay        bool   `json:"fullDay,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBlockedSlotRequest) ToServiceRequest() (blockedslots.CreateBlockRequest, error) {
	blockDate, err := time.Parse(domain.DateFormat, r.BlockDate)
	if err != nil {
		return blockedslots.CreateBlockRequest{}, err
	}

	return blockedslots.CreateBlockRequest{
		ProfessionalID: r.ProfessionalID,
		BlockDate:      blockDate,
		StartTime:      types.TimeString(r.StartTime),
		EndTime:        types.TimeString(r.EndTime),
		Reason:         r.Reason,
		FullDay:        r.FullDay,
	}, nil
}
