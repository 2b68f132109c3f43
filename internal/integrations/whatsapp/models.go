package whatsapp

// Credentials учётные данные Graph API бизнеса
type Credentials struct {
	PhoneNumberID string
	AccessToken   string
}

// SendResult результат отправки сообщения
type SendResult struct {
	// MessageID идентификатор сообщения от Graph API (пустой для wa.me ссылки)
	MessageID string
	// WaLink запасная ссылка wa.me, когда API недоступен
	WaLink string
}

// Sent сообщает, было ли сообщение реально отправлено через API
func (r *SendResult) Sent() bool {
	return r.MessageID != ""
}

// sendMessageRequest тело запроса Graph API /messages
type sendMessageRequest struct {
	MessagingProduct string      `json:"messaging_product"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Text             messageText `json:"text"`
}

type messageText struct {
	Body string `json:"body"`
}

// sendMessageResponse тело ответа Graph API /messages
type sendMessageResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// errorResponse модель ошибки Graph API
type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}
