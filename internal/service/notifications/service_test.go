package notifications

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	"github.com/m04kA/IS-SalonBookingService/internal/integrations/mailer"
)

type fakeNotificationRepo struct {
	mu      sync.Mutex
	created []*domain.Notification
	err     error
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, n)
	return n, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []mailer.BookingMailParams
	err  error
	done chan struct{}
}

func (f *fakeMailer) SendBookingConfirmation(_ context.Context, params mailer.BookingMailParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done != nil {
		defer close(f.done)
	}
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, params)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:             1,
		ProfessionalID: 7,
		BookingDate:    time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:      "11:00",
		ClientID:       "client-42",
		ClientName:     "Maria Silva",
		ClientEmail:    "maria@example.com",
		ClientPhone:    "+351 912 345 678",
		ServiceName:    "Corte Feminino",
	}
}

func TestNotifyBookingRequested(t *testing.T) {
	repo := &fakeNotificationRepo{}
	mail := &fakeMailer{done: make(chan struct{})}
	svc := NewService(repo, mail, nopLogger{})

	svc.NotifyBookingRequested(context.Background(), testBooking())

	// Внутреннее уведомление адресовано профессионалу
	require.Len(t, repo.created, 1)
	assert.Equal(t, "prof-7", repo.created[0].UserID)
	assert.Equal(t, domain.NotificationInfo, repo.created[0].Type)

	// Письмо уходит асинхронно
	select {
	case <-mail.done:
	case <-time.After(time.Second):
		t.Fatal("mail was not dispatched")
	}

	mail.mu.Lock()
	defer mail.mu.Unlock()
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "Maria Silva", mail.sent[0].ClientName)
	assert.Equal(t, "20/10/2025", mail.sent[0].BookingDate)
}

func TestNotifyBookingRequested_FailuresAreSwallowed(t *testing.T) {
	repo := &fakeNotificationRepo{err: errors.New("db down")}
	mail := &fakeMailer{err: mailer.ErrDispatch, done: make(chan struct{})}
	svc := NewService(repo, mail, nopLogger{})

	// Сбои уведомлений не должны влиять на вызывающий код
	svc.NotifyBookingRequested(context.Background(), testBooking())

	select {
	case <-mail.done:
	case <-time.After(time.Second):
		t.Fatal("mail dispatch was not attempted")
	}
}

func TestNotifyStatusChanged(t *testing.T) {
	tests := []struct {
		status   domain.BookingStatus
		wantType domain.NotificationType
	}{
		{domain.StatusConfirmed, domain.NotificationSuccess},
		{domain.StatusCancelled, domain.NotificationError},
		{domain.StatusCompleted, domain.NotificationSuccess},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			repo := &fakeNotificationRepo{}
			svc := NewService(repo, &fakeMailer{}, nopLogger{})

			svc.NotifyStatusChanged(context.Background(), testBooking(), tt.status)

			require.Len(t, repo.created, 1)
			assert.Equal(t, "client-42", repo.created[0].UserID)
			assert.Equal(t, tt.wantType, repo.created[0].Type)
		})
	}
}

func TestNotifyStatusChanged_SkipsGuestsAndPending(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, &fakeMailer{}, nopLogger{})

	// Гостевое бронирование без client_id - некому отправлять
	guest := testBooking()
	guest.ClientID = ""
	svc.NotifyStatusChanged(context.Background(), guest, domain.StatusConfirmed)

	// pending не является сменой статуса для клиента
	svc.NotifyStatusChanged(context.Background(), testBooking(), domain.StatusPending)

	assert.Empty(t, repo.created)
}
