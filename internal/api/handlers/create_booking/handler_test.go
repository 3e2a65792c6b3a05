package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/IS-SalonBookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func postBooking(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	rw := httptest.NewRecorder()
	h.Handle(rw, req)
	return rw
}

func validBody() CreateBookingRequest {
	return CreateBookingRequest{
		ProfessionalID: 1,
		ServiceID:      2,
		BookingDate:    "2025-10-20",
		StartTime:      "11:00",
		ClientName:     "Maria Silva",
		ClientEmail:    "maria@example.com",
		ClientPhone:    "+351 912 345 678",
	}
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:              10,
		ProfessionalID:  1,
		ServiceID:       2,
		BookingDate:     time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:       "11:00",
		DurationMinutes: 60,
		Status:          "pending",
		ClientName:      "Maria Silva",
		ServiceName:     "Corte Feminino",
		ServicePrice:    80,
	}}
	h := NewHandler(uc, nopLogger{})

	rw := postBooking(t, h, validBody())
	require.Equal(t, http.StatusCreated, rw.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2025-10-20", resp.BookingDate)
	assert.Equal(t, "11:00", resp.StartTime)

	// Дата и время распарсены в модель use case
	require.NotNil(t, uc.got)
	assert.Equal(t, time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), uc.got.BookingDate)
}

func TestHandle_SlotConflict(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: createBooking.ErrSlotNotAvailable}, nopLogger{})

	rw := postBooking(t, h, validBody())
	assert.Equal(t, http.StatusConflict, rw.Code)
}

func TestHandle_NotFound(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: createBooking.ErrProfessionalNotFound}, nopLogger{})
	rw := postBooking(t, h, validBody())
	assert.Equal(t, http.StatusNotFound, rw.Code)

	h = NewHandler(&fakeUseCase{err: createBooking.ErrServiceNotFound}, nopLogger{})
	rw = postBooking(t, h, validBody())
	assert.Equal(t, http.StatusNotFound, rw.Code)
}

func TestHandle_BadRequest(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: createBooking.ErrInvalidInput}, nopLogger{})

	// Некорректная дата отлавливается до вызова use case
	body := validBody()
	body.BookingDate = "20-10-2025"
	rw := postBooking(t, h, body)
	assert.Equal(t, http.StatusBadRequest, rw.Code)

	// Ошибки валидации use case тоже 400
	rw = postBooking(t, h, validBody())
	assert.Equal(t, http.StatusBadRequest, rw.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{broken")))
	rw := httptest.NewRecorder()
	h.Handle(rw, req)

	assert.Equal(t, http.StatusBadRequest, rw.Code)
}
