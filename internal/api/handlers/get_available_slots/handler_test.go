package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/evenderechit/evenderechit/internal/usecase/get_available_slots"
	"github.com/evenderechit/evenderechit/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	gotReq *getAvailableSlots.Request
	resp   *getAvailableSlots.Response
	err    error
}

func (s *stubUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/businesses/{businessId}/available-slots", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_Success(t *testing.T) {
	uc := &stubUseCase{
		resp: &getAvailableSlots.Response{
			Date:            time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			BusinessID:      1,
			DurationMinutes: 30,
			Slots:           []types.TimeString{"09:00", "09:15", "09:30"},
		},
	}
	router := newRouter(NewHandler(uc, nopLogger{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/1/available-slots?date=2025-06-02", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-06-02", body.Date)
	assert.Equal(t, int64(1), body.BusinessID)
	assert.Equal(t, 30, body.DurationMinutes)
	assert.Equal(t, []string{"09:00", "09:15", "09:30"}, body.Slots)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(1), uc.gotReq.BusinessID)
	assert.Nil(t, uc.gotReq.ServiceID)
	assert.Nil(t, uc.gotReq.StaffID)
}

func TestHandle_PassesOptionalParams(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{Slots: []types.TimeString{}}}
	router := newRouter(NewHandler(uc, nopLogger{}))

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/businesses/1/available-slots?date=2025-06-02&serviceId=5&staffId=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq.ServiceID)
	assert.Equal(t, int64(5), *uc.gotReq.ServiceID)
	require.NotNil(t, uc.gotReq.StaffID)
	assert.Equal(t, int64(3), *uc.gotReq.StaffID)
}

func TestHandle_MissingDate(t *testing.T) {
	uc := &stubUseCase{}
	router := newRouter(NewHandler(uc, nopLogger{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/1/available-slots", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_InvalidDate(t *testing.T) {
	uc := &stubUseCase{}
	router := newRouter(NewHandler(uc, nopLogger{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/1/available-slots?date=02-06-2025", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BusinessNotFound(t *testing.T) {
	uc := &stubUseCase{err: getAvailableSlots.ErrBusinessNotFound}
	router := newRouter(NewHandler(uc, nopLogger{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/99/available-slots?date=2025-06-02", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
