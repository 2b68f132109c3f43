package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evenderechit/evenderechit/internal/domain"
)

const topServicesLimit = 5

var (
	// ErrInvalidPeriod возвращается при некорректном периоде
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// OverviewResponse сводная статистика бизнеса за период
type OverviewResponse struct {
	From              string              `json:"from"`
	To                string              `json:"to"`
	TotalAppointments int64               `json:"totalAppointments"`
	CompletedRevenue  float64             `json:"completedRevenue"`
	UniqueCustomers   int64               `json:"uniqueCustomers"`
	CancelRate        float64             `json:"cancelRate"`
	ByStatus          []StatusCountItem   `json:"byStatus"`
	TopServices       []TopServiceItem    `json:"topServices"`
}

// StatusCountItem количество записей в статусе
type StatusCountItem struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// TopServiceItem услуга в топе за период
type TopServiceItem struct {
	ServiceName string  `json:"serviceName"`
	Count       int64   `json:"count"`
	Revenue     float64 `json:"revenue"`
}

// DashboardResponse статистика для главного экрана владельца
type DashboardResponse struct {
	TodayAppointments    int64   `json:"todayAppointments"`
	UpcomingAppointments int64   `json:"upcomingAppointments"`
	WeekAppointments     int64   `json:"weekAppointments"`
	WeekRevenue          float64 `json:"weekRevenue"`
}

// Service сервис аналитики бизнеса
type Service struct {
	stats        AppointmentStats
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(stats AppointmentStats, logger Logger) *Service {
	return &Service{
		stats:        stats,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Overview собирает сводную статистику бизнеса за период
func (s *Service) Overview(ctx context.Context, businessID int64, from, to time.Time) (*OverviewResponse, error) {
	s.logger.Info("Overview: business=%d from=%s to=%s",
		businessID, from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, ErrInvalidPeriod
	}

	total, err := s.stats.CountForPeriod(ctx, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: Overview - count: %v", ErrInternal, err)
	}

	revenue, err := s.stats.CompletedRevenue(ctx, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: Overview - revenue: %v", ErrInternal, err)
	}

	customers, err := s.stats.CountDistinctCustomers(ctx, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: Overview - customers: %v", ErrInternal, err)
	}

	statusCounts, err := s.stats.StatusCounts(ctx, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: Overview - status counts: %v", ErrInternal, err)
	}

	topServices, err := s.stats.TopServices(ctx, businessID, from, to, topServicesLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: Overview - top services: %v", ErrInternal, err)
	}

	resp := &OverviewResponse{
		From:              from.Format(domain.DateFormat),
		To:                to.Format(domain.DateFormat),
		TotalAppointments: total,
		CompletedRevenue:  revenue,
		UniqueCustomers:   customers,
		ByStatus:          make([]StatusCountItem, 0, len(statusCounts)),
		TopServices:       make([]TopServiceItem, 0, len(topServices)),
	}

	var cancelled int64
	for _, sc := range statusCounts {
		resp.ByStatus = append(resp.ByStatus, StatusCountItem{Status: string(sc.Status), Count: sc.Count})
		if sc.Status == domain.StatusCanceled {
			cancelled = sc.Count
		}
	}
	if total > 0 {
		resp.CancelRate = float64(cancelled) / float64(total)
	}

	for _, ts := range topServices {
		resp.TopServices = append(resp.TopServices, TopServiceItem{
			ServiceName: ts.ServiceName,
			Count:       ts.Count,
			Revenue:     ts.Revenue,
		})
	}

	return resp, nil
}

// Dashboard собирает статистику для главного экрана владельца:
// записи на сегодня, будущие активные записи и итоги текущей недели
func (s *Service) Dashboard(ctx context.Context, businessID int64) (*DashboardResponse, error) {
	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// Неделя начинается с воскресенья
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)

	// Горизонт будущих записей ограничиваем годом
	horizon := today.AddDate(1, 0, 0)

	todayCount, err := s.stats.CountForPeriod(ctx, businessID, today, today)
	if err != nil {
		return nil, fmt.Errorf("%w: Dashboard - today count: %v", ErrInternal, err)
	}

	upcoming, err := s.stats.CountByStatusForPeriod(ctx, businessID,
		[]domain.AppointmentStatus{domain.StatusScheduled, domain.StatusConfirmed}, today, horizon)
	if err != nil {
		return nil, fmt.Errorf("%w: Dashboard - upcoming count: %v", ErrInternal, err)
	}

	weekCount, err := s.stats.CountForPeriod(ctx, businessID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: Dashboard - week count: %v", ErrInternal, err)
	}

	weekRevenue, err := s.stats.CompletedRevenue(ctx, businessID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: Dashboard - week revenue: %v", ErrInternal, err)
	}

	return &DashboardResponse{
		TodayAppointments:    todayCount,
		UpcomingAppointments: upcoming,
		WeekAppointments:     weekCount,
		WeekRevenue:          weekRevenue,
	}, nil
}
