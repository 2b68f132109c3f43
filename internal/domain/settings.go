package domain

import "time"

// BusinessSettings holds per-business configuration: the public booking
// link, scheduling parameters and messaging toggles.
type BusinessSettings struct {
	BusinessID   int64
	BusinessName string
	Address      *string
	Phone        *string
	LinkSlug     string // Уникальный слаг публичной страницы записи
	Timezone     string

	// Scheduling
	BufferMinutes           int // Буфер между записями, читается из настроек
	AdvanceBookingDays      int // Горизонт записи вперёд
	CancellationNoticeHours int // Минимальное время до записи для отмены клиентом

	// WhatsApp integration
	WhatsappEnabled         bool
	AutoConfirmationEnabled bool // Автоматическое подтверждение при создании записи
	WhatsappPhoneNumberID   *string
	WhatsappAccessToken     *string

	// Reminders
	RemindersEnabled bool
	Reminder24h      bool
	Reminder2h       bool
	Reminder30m      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasWhatsappAPI returns true if the business has Graph API credentials
// configured; otherwise messages fall back to wa.me links.
func (s *BusinessSettings) HasWhatsappAPI() bool {
	return s.WhatsappEnabled &&
		s.WhatsappPhoneNumberID != nil && *s.WhatsappPhoneNumberID != "" &&
		s.WhatsappAccessToken != nil && *s.WhatsappAccessToken != ""
}

// EnabledReminderTypes returns the reminder types switched on for the business
func (s *BusinessSettings) EnabledReminderTypes() []ReminderType {
	if !s.RemindersEnabled {
		return nil
	}
	var out []ReminderType
	if s.Reminder24h {
		out = append(out, Reminder24Hours)
	}
	if s.Reminder2h {
		out = append(out, Reminder2Hours)
	}
	if s.Reminder30m {
		out = append(out, Reminder30Minutes)
	}
	return out
}
