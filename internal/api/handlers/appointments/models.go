package appointments

import (
	"net/url"
	"strconv"
	"time"

	"github.com/evenderechit/evenderechit/internal/domain"
	"github.com/evenderechit/evenderechit/internal/service/appointments/models"
)

// UpdateStatusBody тело запроса на смену статуса
type UpdateStatusBody struct {
	Status string `json:"status"`
}

// UpdateNotesBody тело запроса на обновление заметок
type UpdateNotesBody struct {
	Notes *string `json:"notes"`
}

// ToListRequest собирает запрос списка записей из query параметров
func ToListRequest(businessID int64, query url.Values) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{BusinessID: businessID}

	if v := query.Get("staffId"); v != "" {
		staffID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.StaffID = &staffID
	}
	if v := query.Get("serviceId"); v != "" {
		serviceID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ServiceID = &serviceID
	}
	if v := query.Get("startDate"); v != "" {
		startDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}
	if v := query.Get("endDate"); v != "" {
		endDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.Limit = &limit
	}
	if v := query.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.Offset = &offset
	}

	return req, nil
}
