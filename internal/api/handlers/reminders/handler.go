package reminders

import (
	"net/http"

	"github.com/evenderechit/evenderechit/internal/api/handlers"
	"github.com/evenderechit/evenderechit/internal/api/middleware"
)

const msgUnauthorized = "authentication required"

// ProcessResultResponse итог одного цикла обработки напоминаний
type ProcessResultResponse struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Cancelled int `json:"cancelled"`
}

// Handler обрабатывает ручной запуск обработки напоминаний
type Handler struct {
	useCase ProcessRemindersUseCase
	logger  Logger
}

func NewHandler(useCase ProcessRemindersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleProcess POST /api/v1/reminders/process
// Запускает тот же цикл, что и фоновый планировщик
func (h *Handler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /reminders/process - Failed to process reminders: business_id=%d, error=%v",
			businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /reminders/process - Reminders processed: business_id=%d, processed=%d, sent=%d, failed=%d, cancelled=%d",
		businessID, result.Processed, result.Sent, result.Failed, result.Cancelled)
	handlers.RespondJSON(w, http.StatusOK, &ProcessResultResponse{
		Processed: result.Processed,
		Sent:      result.Sent,
		Failed:    result.Failed,
		Cancelled: result.Cancelled,
	})
}
