package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input")

	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrDateInPast возвращается при попытке записи на прошедшую дату
	ErrDateInPast = errors.New("date is in the past")

	// ErrDateBlocked возвращается, когда дата заблокирована для записи
	ErrDateBlocked = errors.New("date is blocked")

	// ErrSlotNotAvailable возвращается, когда выбранное время недоступно
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInternal внутренняя ошибка use case
	ErrInternal = errors.New("internal error")
)
