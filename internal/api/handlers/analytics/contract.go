package analytics

import (
	"context"
	"time"

	analyticsService "github.com/evenderechit/evenderechit/internal/service/analytics"
)

type AnalyticsService interface {
	Overview(ctx context.Context, businessID int64, from, to time.Time) (*analyticsService.OverviewResponse, error)
	Dashboard(ctx context.Context, businessID int64) (*analyticsService.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
