package get_available_slots

import (
	"time"

	"github.com/evenderechit/evenderechit/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID int64     // ID бизнеса
	ServiceID  *int64    // ID услуги (опционально, определяет длительность)
	StaffID    *int64    // ID сотрудника (опционально)
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time          // Дата, на которую запрашивались слоты
	BusinessID      int64              // ID бизнеса
	ServiceID       *int64             // ID услуги
	StaffID         *int64             // ID сотрудника
	DurationMinutes int                // Длительность, использованная при расчёте
	Slots           []types.TimeString // Времена начала доступных слотов
}
