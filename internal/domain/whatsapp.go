package domain

import "time"

// TemplateType классифицирует шаблоны сообщений
type TemplateType string

const (
	TemplateConfirmation TemplateType = "confirmation"
	TemplateReminder     TemplateType = "reminder"
	TemplateCancellation TemplateType = "cancellation"
)

// WhatsappTemplate is a per-business message template. The body supports
// {{variable}} substitution and {{#variable}}...{{/variable}} conditional
// blocks rendered only when the variable is non-empty.
type WhatsappTemplate struct {
	ID         int64
	BusinessID int64
	Type       TemplateType
	Body       string
	Active     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MessageStatus статус отправленного сообщения
type MessageStatus string

const (
	MessageSent   MessageStatus = "sent"
	MessageFailed MessageStatus = "failed"
	// MessageLink означает, что API недоступен и сформирована wa.me ссылка
	MessageLink MessageStatus = "link"
)

// WhatsappMessage is a log entry for an outbound message
type WhatsappMessage struct {
	ID            int64
	BusinessID    int64
	AppointmentID *int64
	Phone         string
	Body          string
	Status        MessageStatus
	Error         *string

	CreatedAt time.Time
}

// ReminderType определяет, за сколько до записи отправляется напоминание
type ReminderType string

const (
	Reminder24Hours   ReminderType = "24h"
	Reminder2Hours    ReminderType = "2h"
	Reminder30Minutes ReminderType = "30m"
)

// Offset returns how long before the appointment the reminder fires
func (t ReminderType) Offset() time.Duration {
	switch t {
	case Reminder24Hours:
		return 24 * time.Hour
	case Reminder2Hours:
		return 2 * time.Hour
	case Reminder30Minutes:
		return 30 * time.Minute
	default:
		return 0
	}
}

// ReminderStatus статус запланированного напоминания
type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderSent      ReminderStatus = "sent"
	ReminderFailed    ReminderStatus = "failed"
	ReminderCancelled ReminderStatus = "cancelled"
)

// ScheduledReminder is a reminder queued for dispatch
type ScheduledReminder struct {
	ID            int64
	AppointmentID int64
	Type          ReminderType
	SendAt        time.Time
	Status        ReminderStatus
	Error         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DueReminder is a pending reminder joined with the data needed to
// render and send the message
type DueReminder struct {
	Reminder    ScheduledReminder
	Appointment Appointment
	Settings    BusinessSettings
}
