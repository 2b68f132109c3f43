package domain

import (
	"time"

	"github.com/evenderechit/evenderechit/pkg/types"
)

// AvailabilityWindow represents a weekly working-hours window.
// DayOfWeek uses 0 = Sunday ... 6 = Saturday.
type AvailabilityWindow struct {
	ID         int64
	BusinessID int64
	StaffID    *int64 // nil = окно действует для бизнеса в целом
	DayOfWeek  int
	StartTime  types.TimeString
	EndTime    types.TimeString
	Active     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppliesTo returns true if the window belongs to the given staff scope
func (w *AvailabilityWindow) AppliesTo(staffID *int64) bool {
	if staffID == nil {
		return w.StaffID == nil
	}
	return w.StaffID != nil && *w.StaffID == *staffID
}

// BlockedDate represents a calendar date on which no appointments
// can be booked. A business-wide block (StaffID == nil) blocks all
// staff members; a staff block applies to that member only.
type BlockedDate struct {
	ID         int64
	BusinessID int64
	StaffID    *int64
	Date       time.Time
	Reason     *string

	CreatedAt time.Time
}
