package models

import "github.com/evenderechit/evenderechit/internal/domain"

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	BusinessID      int64   `json:"businessId"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Active          bool    `json:"active"`
	StaffIDs        []int64 `json:"staffIds,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateServiceRequest) ToDomain() *domain.Service {
	return &domain.Service{
		BusinessID:      r.BusinessID,
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Active:          r.Active,
	}
}

// UpdateServiceRequest запрос на обновление услуги
type UpdateServiceRequest struct {
	BusinessID      int64   `json:"businessId"`
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Active          bool    `json:"active"`
	StaffIDs        []int64 `json:"staffIds,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *UpdateServiceRequest) ToDomain() *domain.Service {
	return &domain.Service{
		ID:              r.ID,
		BusinessID:      r.BusinessID,
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Active:          r.Active,
	}
}

// CreateStaffRequest запрос на создание сотрудника
type CreateStaffRequest struct {
	BusinessID int64   `json:"businessId"`
	Name       string  `json:"name"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	Role       *string `json:"role,omitempty"`
	Active     bool    `json:"active"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateStaffRequest) ToDomain() *domain.Staff {
	return &domain.Staff{
		BusinessID: r.BusinessID,
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		Role:       r.Role,
		Active:     r.Active,
	}
}

// UpdateStaffRequest запрос на обновление сотрудника
type UpdateStaffRequest struct {
	BusinessID int64   `json:"businessId"`
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	Role       *string `json:"role,omitempty"`
	Active     bool    `json:"active"`
}

// ToDomain конвертирует request в domain модель
func (r *UpdateStaffRequest) ToDomain() *domain.Staff {
	return &domain.Staff{
		ID:         r.ID,
		BusinessID: r.BusinessID,
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		Role:       r.Role,
		Active:     r.Active,
	}
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Active          bool    `json:"active"`
	StaffIDs        []int64 `json:"staffIds,omitempty"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в response
func FromDomainService(s *domain.Service, staffIDs []int64) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Active:          s.Active,
		StaffIDs:        staffIDs,
	}
}

// StaffResponse ответ с данными сотрудника
type StaffResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Phone  *string `json:"phone,omitempty"`
	Email  *string `json:"email,omitempty"`
	Role   *string `json:"role,omitempty"`
	Active bool    `json:"active"`
}

// StaffListResponse ответ со списком сотрудников
type StaffListResponse struct {
	Staff []*StaffResponse `json:"staff"`
}

// FromDomainStaff конвертирует domain модель в response
func FromDomainStaff(m *domain.Staff) *StaffResponse {
	return &StaffResponse{
		ID:     m.ID,
		Name:   m.Name,
		Phone:  m.Phone,
		Email:  m.Email,
		Role:   m.Role,
		Active: m.Active,
	}
}

// FromDomainStaffList конвертирует список domain моделей в response
func FromDomainStaffList(members []*domain.Staff) *StaffListResponse {
	result := make([]*StaffResponse, len(members))
	for i, m := range members {
		result[i] = FromDomainStaff(m)
	}
	return &StaffListResponse{Staff: result}
}
