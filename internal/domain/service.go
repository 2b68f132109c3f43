package domain

import "time"

// Service represents a bookable service offered by a business
type Service struct {
	ID              int64
	BusinessID      int64
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64
	Active          bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Staff represents a staff member of a business
type Staff struct {
	ID         int64
	BusinessID int64
	Name       string
	Phone      *string
	Email      *string
	Role       *string
	Active     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceStaff links a service to the staff members who can perform it
type ServiceStaff struct {
	ServiceID int64
	StaffID   int64
}
