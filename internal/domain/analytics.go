package domain

import "time"

// AnalyticsPeriod границы периода для агрегаций
type AnalyticsPeriod struct {
	From time.Time
	To   time.Time
}

// TopService is a service ranked by appointment count over a period
type TopService struct {
	ServiceName string
	Count       int64
	Revenue     float64
}

// StatusCount количество записей в разрезе статуса
type StatusCount struct {
	Status AppointmentStatus
	Count  int64
}

// OverviewStats aggregated business metrics over a period
type OverviewStats struct {
	TotalAppointments int64
	CompletedRevenue  float64
	UniqueCustomers   int64
	CancelRate        float64
	ByStatus          []StatusCount
	TopServices       []TopService
}

// DashboardStats metrics for the today-screen of the business owner
type DashboardStats struct {
	TodayAppointments    int64
	UpcomingAppointments int64
	WeekAppointments     int64
	WeekRevenue          float64
}
