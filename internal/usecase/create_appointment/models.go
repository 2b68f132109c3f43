package create_appointment

import (
	"time"

	"github.com/evenderechit/evenderechit/pkg/types"
)

// Request запрос на создание записи
type Request struct {
	BusinessID int64
	ServiceID  *int64
	StaffID    *int64

	CustomerName  string
	CustomerPhone string
	CustomerEmail *string

	Date      time.Time
	StartTime types.TimeString
	Notes     *string
}

// Response ответ с созданной записью
type Response struct {
	ID         int64
	BusinessID int64
	ServiceID  *int64
	StaffID    *int64

	CustomerName  string
	CustomerPhone string
	CustomerEmail *string

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    string
	Notes     *string

	ServiceName  *string
	ServicePrice *float64

	ManageToken string

	CreatedAt time.Time
	UpdatedAt time.Time
}
