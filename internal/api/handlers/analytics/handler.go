package analytics

import (
	"errors"
	"net/http"
	"time"

	"github.com/evenderechit/evenderechit/internal/api/handlers"
	"github.com/evenderechit/evenderechit/internal/api/middleware"
	"github.com/evenderechit/evenderechit/internal/domain"
	analyticsService "github.com/evenderechit/evenderechit/internal/service/analytics"
)

const (
	msgUnauthorized  = "authentication required"
	msgInvalidPeriod = "invalid period, expected from and to as YYYY-MM-DD"
)

// Handler обрабатывает аналитику бизнеса
type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleOverview GET /api/v1/analytics/overview
// Query params: from, to (YYYY-MM-DD, по умолчанию последние 30 дней)
func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if v := r.URL.Query().Get("from"); v != "" {
		parsed, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		from = parsed
	}
	if v := r.URL.Query().Get("to"); v != "" {
		parsed, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		to = parsed
	}

	result, err := h.service.Overview(r.Context(), businessID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, analyticsService.ErrInvalidPeriod):
			h.logger.Warn("GET /analytics/overview - Invalid period: business_id=%d", businessID)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
		default:
			h.logger.Error("GET /analytics/overview - Failed to get overview: business_id=%d, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /analytics/overview - Overview retrieved: business_id=%d, appointments=%d",
		businessID, result.TotalAppointments)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDashboard GET /api/v1/analytics/dashboard
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.GetBusinessID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.Dashboard(r.Context(), businessID)
	if err != nil {
		h.logger.Error("GET /analytics/dashboard - Failed to get dashboard: business_id=%d, error=%v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
