package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	bookingRepo "github.com/m04kA/IS-SalonBookingService/internal/infra/storage/booking"
	"github.com/m04kA/IS-SalonBookingService/internal/service/bookings/models"
	"github.com/m04kA/IS-SalonBookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	byID       map[int64]*domain.Booking
	byClient   map[string][]*domain.Booking
	updateErr  error
	lastStatus domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) GetByClientID(_ context.Context, clientID string, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.byClient[clientID], nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, booking := range f.byID {
		if booking.ProfessionalID == filter.ProfessionalID {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	booking, ok := f.byID[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	booking.Status = status
	f.lastStatus = status
	return nil
}

type fakeBlockedSlotRepo struct {
	blocks []*domain.BlockedSlot
}

func (f *fakeBlockedSlotRepo) GetByProfessionalAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.BlockedSlot, error) {
	return f.blocks, nil
}

type fakeNotifier struct {
	statusChanges []domain.BookingStatus
}

func (f *fakeNotifier) NotifyStatusChanged(_ context.Context, _ *domain.Booking, status domain.BookingStatus) {
	f.statusChanges = append(f.statusChanges, status)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(bookings map[int64]*domain.Booking) (*Service, *fakeBookingRepo, *fakeNotifier) {
	repo := &fakeBookingRepo{byID: bookings, byClient: map[string][]*domain.Booking{}}
	notifier := &fakeNotifier{}
	svc := NewService(repo, &fakeBlockedSlotRepo{}, notifier, nopLogger{})
	return svc, repo, notifier
}

func pendingBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		ProfessionalID:  1,
		ServiceID:       2,
		BookingDate:     time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:       "11:00",
		DurationMinutes: 60,
		Status:          domain.StatusPending,
		ClientID:        "client-42",
		ClientName:      "Maria Silva",
	}
}

func TestUpdateStatus_ValidTransitions(t *testing.T) {
	tests := []struct {
		name string
		from domain.BookingStatus
		to   string
	}{
		{"pending to confirmed", domain.StatusPending, "confirmed"},
		{"pending to cancelled", domain.StatusPending, "cancelled"},
		{"confirmed to completed", domain.StatusConfirmed, "completed"},
		{"confirmed to cancelled", domain.StatusConfirmed, "cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := pendingBooking(1)
			booking.Status = tt.from
			svc, repo, notifier := newService(map[int64]*domain.Booking{1: booking})

			resp, err := svc.UpdateStatus(context.Background(), 1, tt.to)
			require.NoError(t, err)

			assert.Equal(t, tt.to, resp.Status)
			assert.Equal(t, domain.BookingStatus(tt.to), repo.lastStatus)
			require.Len(t, notifier.statusChanges, 1)
			assert.Equal(t, domain.BookingStatus(tt.to), notifier.statusChanges[0])
		})
	}
}

func TestUpdateStatus_TerminalStatesRejected(t *testing.T) {
	for _, terminal := range []domain.BookingStatus{domain.StatusCancelled, domain.StatusCompleted} {
		t.Run(string(terminal), func(t *testing.T) {
			booking := pendingBooking(1)
			booking.Status = terminal
			svc, _, notifier := newService(map[int64]*domain.Booking{1: booking})

			_, err := svc.UpdateStatus(context.Background(), 1, "confirmed")
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Empty(t, notifier.statusChanges)
		})
	}
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	svc, _, _ := newService(map[int64]*domain.Booking{1: pendingBooking(1)})

	// pending -> completed минуя confirmed запрещен
	_, err := svc.UpdateStatus(context.Background(), 1, "completed")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc, _, _ := newService(map[int64]*domain.Booking{1: pendingBooking(1)})

	_, err := svc.UpdateStatus(context.Background(), 1, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _, _ := newService(map[int64]*domain.Booking{})

	_, err := svc.UpdateStatus(context.Background(), 99, "confirmed")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_CancelledSetsTimestamp(t *testing.T) {
	svc, _, _ := newService(map[int64]*domain.Booking{1: pendingBooking(1)})

	resp, err := svc.UpdateStatus(context.Background(), 1, "cancelled")
	require.NoError(t, err)
	assert.NotNil(t, resp.CancelledAt)
}

func TestGetByID(t *testing.T) {
	svc, _, _ := newService(map[int64]*domain.Booking{1: pendingBooking(1)})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Maria Silva", resp.ClientName)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetClientBookings(t *testing.T) {
	svc, repo, _ := newService(map[int64]*domain.Booking{})
	repo.byClient["client-42"] = []*domain.Booking{pendingBooking(1), pendingBooking(2)}

	resp, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{ClientID: "client-42"})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	// Некорректный статус отклоняется до обращения к репозиторию
	bad := "archived"
	_, err = svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{ClientID: "client-42", Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetAgenda(t *testing.T) {
	booking := pendingBooking(1)
	cancelled := pendingBooking(2)
	cancelled.Status = domain.StatusCancelled
	cancelled.CancelledAt = ptr.Ptr(time.Now())

	svc, _, _ := newService(map[int64]*domain.Booking{1: booking, 2: cancelled})

	agenda, err := svc.GetAgenda(context.Background(), 1, time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Панель администратора видит бронирования всех статусов
	assert.Len(t, agenda.Bookings, 2)

	_, err = svc.GetAgenda(context.Background(), 0, time.Now())
	assert.ErrorIs(t, err, ErrInvalidInput)
}
