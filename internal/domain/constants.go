package domain

// Slot computation constants
const (
	SlotStepMinutes               = 15
	DefaultServiceDurationMinutes = 60
	DefaultBufferMinutes          = 15
)

// Booking policy defaults
const (
	DefaultAdvanceBookingDays      = 30
	DefaultCancellationNoticeHours = 24
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxCustomerNameLength     = 100
	MaxNotesLength            = 500
	MaxTemplateBodyLength     = 2000
	MaxSlugLength             = 50
)

// Reminder dispatch constants
const (
	MaxReminderBatchSize = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот
// Используется при подсчёте доступных слотов
var InactiveStatuses = []AppointmentStatus{
	StatusCanceled,
}

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusNoShow,
}
