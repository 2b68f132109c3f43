package whatsapp

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе Graph API
	ErrInvalidResponse = errors.New("whatsapp client: invalid response")

	// ErrSendFailed возвращается, когда Graph API отклонил отправку
	ErrSendFailed = errors.New("whatsapp client: send failed")

	// ErrNoCredentials возвращается, когда у бизнеса нет учётных данных API
	ErrNoCredentials = errors.New("whatsapp client: no API credentials")
)
