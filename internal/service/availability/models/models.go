package models

import (
	"time"

	"github.com/evenderechit/evenderechit/internal/domain"
	"github.com/evenderechit/evenderechit/pkg/types"
)

// Request модели

// CreateWindowRequest запрос на создание окна доступности
type CreateWindowRequest struct {
	BusinessID int64  `json:"businessId"`
	StaffID    *int64 `json:"staffId,omitempty"`
	DayOfWeek  int    `json:"dayOfWeek"` // 0 = воскресенье
	StartTime  string `json:"startTime"` // "09:00"
	EndTime    string `json:"endTime"`   // "17:00"
	Active     bool   `json:"active"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateWindowRequest) ToDomain() *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		BusinessID: r.BusinessID,
		StaffID:    r.StaffID,
		DayOfWeek:  r.DayOfWeek,
		StartTime:  types.TimeString(r.StartTime),
		EndTime:    types.TimeString(r.EndTime),
		Active:     r.Active,
	}
}

// UpdateWindowRequest запрос на обновление окна доступности
type UpdateWindowRequest struct {
	BusinessID int64  `json:"businessId"`
	ID         int64  `json:"id"`
	StaffID    *int64 `json:"staffId,omitempty"`
	DayOfWeek  int    `json:"dayOfWeek"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Active     bool   `json:"active"`
}

// ToDomain конвертирует request в domain модель
func (r *UpdateWindowRequest) ToDomain() *domain.AvailabilityWindow {
	return &domain.AvailabilityWindow{
		ID:         r.ID,
		BusinessID: r.BusinessID,
		StaffID:    r.StaffID,
		DayOfWeek:  r.DayOfWeek,
		StartTime:  types.TimeString(r.StartTime),
		EndTime:    types.TimeString(r.EndTime),
		Active:     r.Active,
	}
}

// AddBlockedDateRequest запрос на блокировку даты
type AddBlockedDateRequest struct {
	BusinessID int64     `json:"businessId"`
	StaffID    *int64    `json:"staffId,omitempty"`
	Date       time.Time `json:"date"`
	Reason     *string   `json:"reason,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *AddBlockedDateRequest) ToDomain() *domain.BlockedDate {
	return &domain.BlockedDate{
		BusinessID: r.BusinessID,
		StaffID:    r.StaffID,
		Date:       r.Date,
		Reason:     r.Reason,
	}
}

// Response модели

// WindowResponse ответ с данными окна доступности
type WindowResponse struct {
	ID        int64  `json:"id"`
	StaffID   *int64 `json:"staffId,omitempty"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Active    bool   `json:"active"`
}

// WindowListResponse ответ со списком окон
type WindowListResponse struct {
	Windows []*WindowResponse `json:"windows"`
}

// FromDomainWindow конвертирует domain модель в response
func FromDomainWindow(w *domain.AvailabilityWindow) *WindowResponse {
	return &WindowResponse{
		ID:        w.ID,
		StaffID:   w.StaffID,
		DayOfWeek: w.DayOfWeek,
		StartTime: string(w.StartTime),
		EndTime:   string(w.EndTime),
		Active:    w.Active,
	}
}

// FromDomainWindows конвертирует список domain моделей в response
func FromDomainWindows(windows []*domain.AvailabilityWindow) *WindowListResponse {
	result := make([]*WindowResponse, len(windows))
	for i, w := range windows {
		result[i] = FromDomainWindow(w)
	}
	return &WindowListResponse{Windows: result}
}

// BlockedDateResponse ответ с данными блокировки
type BlockedDateResponse struct {
	ID      int64   `json:"id"`
	StaffID *int64  `json:"staffId,omitempty"`
	Date    string  `json:"date"` // "2025-10-15"
	Reason  *string `json:"reason,omitempty"`
}

// BlockedDateListResponse ответ со списком блокировок
type BlockedDateListResponse struct {
	BlockedDates []*BlockedDateResponse `json:"blockedDates"`
}

// FromDomainBlockedDate конвертирует domain модель в response
func FromDomainBlockedDate(b *domain.BlockedDate) *BlockedDateResponse {
	return &BlockedDateResponse{
		ID:      b.ID,
		StaffID: b.StaffID,
		Date:    b.Date.Format(domain.DateFormat),
		Reason:  b.Reason,
	}
}

// FromDomainBlockedDates конвертирует список domain моделей в response
func FromDomainBlockedDates(blockedDates []*domain.BlockedDate) *BlockedDateListResponse {
	result := make([]*BlockedDateResponse, len(blockedDates))
	for i, b := range blockedDates {
		result[i] = FromDomainBlockedDate(b)
	}
	return &BlockedDateListResponse{BlockedDates: result}
}
