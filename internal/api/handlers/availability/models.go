package availability

// CreateWindowBody тело запроса на создание окна доступности
type CreateWindowBody struct {
	StaffID   *int64 `json:"staffId,omitempty"`
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "17:00"
	Active    bool   `json:"active"`
}

// UpdateWindowBody тело запроса на обновление окна доступности
type UpdateWindowBody struct {
	StaffID   *int64 `json:"staffId,omitempty"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Active    bool   `json:"active"`
}

// AddBlockedDateBody тело запроса на блокировку даты
type AddBlockedDateBody struct {
	StaffID *int64  `json:"staffId,omitempty"`
	Date    string  `json:"date"` // "2025-10-15"
	Reason  *string `json:"reason,omitempty"`
}
