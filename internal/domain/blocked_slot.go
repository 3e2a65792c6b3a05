package domain

import (
	"time"

	"github.com/m04kA/IS-SalonBookingService/pkg/types"
)

// BlockedSlot represents an administrator-declared unavailable interval.
// The interval is half-open [StartTime, EndTime); a full-day block is
// conventionally stored as 00:00-23:59. Overlapping blocks are allowed -
// they only ever union their exclusion effect.
type BlockedSlot struct {
	ID             int64
	ProfessionalID int64
	BlockDate      time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Reason         string
	CreatedAt      time.Time
}

// Interval returns the half-open minute interval of the block
func (b *BlockedSlot) Interval() (start, end int, err error) {
	start, err = b.StartTime.Minutes()
	if err != nil {
		return 0, 0, err
	}
	end, err = b.EndTime.Minutes()
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// IsFullDay returns true for the conventional whole-day block
func (b *BlockedSlot) IsFullDay() bool {
	return b.StartTime == FullDayBlockStart && b.EndTime == FullDayBlockEnd
}
