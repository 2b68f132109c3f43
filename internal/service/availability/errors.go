package availability

import "errors"

var (
	// ErrWindowNotFound возвращается, когда окно доступности не найдено
	ErrWindowNotFound = errors.New("availability window not found")

	// ErrBlockedDateNotFound возвращается, когда блокировка даты не найдена
	ErrBlockedDateNotFound = errors.New("blocked date not found")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне окна
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
