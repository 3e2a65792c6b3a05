package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	professionalstore "github.com/m04kA/IS-SalonBookingService/internal/infra/storage/professional"
	"github.com/m04kA/IS-SalonBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeBlockedSlotRepo struct {
	blocks []*domain.BlockedSlot
}

func (f *fakeBlockedSlotRepo) GetByProfessionalAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.BlockedSlot, error) {
	return f.blocks, nil
}

type fakeProfessionalRepo struct {
	professional *domain.Professional
	err          error
}

func (f *fakeProfessionalRepo) GetByID(_ context.Context, _ int64) (*domain.Professional, error) {
	return f.professional, f.err
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return f.service, f.err
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(bookings []*domain.Booking, blocks []*domain.BlockedSlot) *UseCase {
	return NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeBlockedSlotRepo{blocks: blocks},
		&fakeProfessionalRepo{professional: &domain.Professional{
			ID:       1,
			IsActive: true,
			WorkingHours: domain.WeekSchedule{
				"monday": {Start: "10:00", End: "17:00", Active: true},
			},
		}},
		&fakeServiceRepo{service: &domain.Service{
			ID:              2,
			Name:            "Manicure",
			DurationMinutes: 60,
			IsActive:        true,
		}},
		fixedTime{now: time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
}

func request(date time.Time) *Request {
	return &Request{ProfessionalID: 1, ServiceID: 2, Date: date}
}

func slotByTime(slots []Slot, start types.TimeString) *Slot {
	for i := range slots {
		if slots[i].StartTime == start {
			return &slots[i]
		}
	}
	return nil
}

func TestExecute_ReturnsFullGrid(t *testing.T) {
	uc := newUseCase(nil, nil)

	resp, err := uc.Execute(context.Background(), request(time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	assert.Equal(t, 60, resp.DurationMinutes)
	require.Len(t, resp.Slots, 13)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("16:00"), resp.Slots[len(resp.Slots)-1].StartTime)
}

func TestExecute_MarksBookedSlotsUnavailable(t *testing.T) {
	uc := newUseCase([]*domain.Booking{
		{Status: domain.StatusConfirmed, StartTime: "12:00", DurationMinutes: 60},
	}, nil)

	resp, err := uc.Execute(context.Background(), request(time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	// Занятый слот показывается, но помечен недоступным
	assert.False(t, slotByTime(resp.Slots, "12:00").Available)
	assert.False(t, slotByTime(resp.Slots, "11:30").Available)
	assert.True(t, slotByTime(resp.Slots, "13:00").Available)
}

func TestExecute_ClosedDayReturnsEmptyList(t *testing.T) {
	uc := newUseCase(nil, nil)

	// Вторник отсутствует в расписании - пустой список, не ошибка
	resp, err := uc.Execute(context.Background(), request(time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PastDateReturnsEmptyList(t *testing.T) {
	uc := newUseCase(nil, nil)

	resp, err := uc.Execute(context.Background(), request(time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InactiveProfessional(t *testing.T) {
	uc := newUseCase(nil, nil)
	uc.professionals = &fakeProfessionalRepo{professional: &domain.Professional{ID: 1, IsActive: false}}

	_, err := uc.Execute(context.Background(), request(time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)))
	assert.ErrorIs(t, err, ErrProfessionalNotFound)

	uc.professionals = &fakeProfessionalRepo{err: professionalstore.ErrProfessionalNotFound}
	_, err = uc.Execute(context.Background(), request(time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)))
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(nil, nil)

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 0, ServiceID: 2, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
