// Package notifications best-effort рассылка побочных уведомлений
// о бронированиях. Ни один метод пакета не возвращает ошибку:
// сбой уведомления логируется и проглатывается, успех бронирования
// никогда не зависит от доставки.
package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	"github.com/m04kA/IS-SalonBookingService/internal/integrations/mailer"
)

// Таймаут фоновой отправки письма, не связан с временем жизни HTTP запроса
const mailDispatchTimeout = 15 * time.Second

// Тексты уведомлений - пользовательский контент сайта салона
const (
	titleNewRequest = "Novo Pedido de Agendamento"

	titleConfirmed = "Agendamento Confirmado! ✅"
	titleCancelled = "Agendamento Cancelado ❌"
	titleCompleted = "Serviço Concluído ✨"

	msgCompleted = "Obrigado pela visita! Deixe a sua avaliação no site."
)

// Service сервис рассылки уведомлений
type Service struct {
	notificationRepo NotificationRepository
	mailer           MailerClient
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(notificationRepo NotificationRepository, mailerClient MailerClient, logger Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		mailer:           mailerClient,
		logger:           logger,
	}
}

// NotifyBookingRequested отправляет уведомления о новой заявке:
// внутреннее - профессионалу, письмо-подтверждение - клиенту.
// Вызывается после фиксации бронирования, вне транзакции.
func (s *Service) NotifyBookingRequested(ctx context.Context, booking *domain.Booking) {
	s.createNotification(ctx, &domain.Notification{
		UserID: professionalRecipient(booking.ProfessionalID),
		Type:   domain.NotificationInfo,
		Title:  titleNewRequest,
		Message: fmt.Sprintf("%s - %s - %s às %s.",
			booking.ClientName, booking.ServiceName,
			booking.BookingDate.Format("02/01"), booking.StartTime),
	})

	// Письмо уходит в фоне: латентность почтового API не должна
	// задерживать ответ клиенту
	params := mailer.BookingMailParams{
		ClientName:  booking.ClientName,
		ClientPhone: booking.ClientPhone,
		ClientEmail: booking.ClientEmail,
		ServiceName: booking.ServiceName,
		BookingDate: booking.BookingDate.Format("02/01/2006"),
		BookingTime: booking.StartTime.String(),
	}
	if booking.Notes != nil {
		params.Notes = *booking.Notes
	}

	go func() {
		mailCtx, cancel := context.WithTimeout(context.Background(), mailDispatchTimeout)
		defer cancel()

		if err := s.mailer.SendBookingConfirmation(mailCtx, params); err != nil {
			if errors.Is(err, mailer.ErrDisabled) {
				s.logger.Info("Notifications: mailer disabled, skipping confirmation for booking id=%d", booking.ID)
				return
			}
			s.logger.Error("Notifications: failed to send confirmation mail for booking id=%d: %v", booking.ID, err)
		}
	}()
}

// NotifyStatusChanged отправляет клиенту уведомление о смене статуса
// его бронирования (подтверждено / отменено / завершено)
func (s *Service) NotifyStatusChanged(ctx context.Context, booking *domain.Booking, status domain.BookingStatus) {
	if booking.ClientID == "" {
		return
	}

	var (
		title   string
		message string
		kind    domain.NotificationType
	)

	dateVisual := booking.BookingDate.Format("02/01/2006")

	switch status {
	case domain.StatusConfirmed:
		title = titleConfirmed
		message = fmt.Sprintf("O seu agendamento de %s para %s às %s foi confirmado.",
			booking.ServiceName, dateVisual, booking.StartTime)
		kind = domain.NotificationSuccess
	case domain.StatusCancelled:
		title = titleCancelled
		message = fmt.Sprintf("O seu agendamento de %s para %s foi cancelado ou recusado.",
			booking.ServiceName, dateVisual)
		kind = domain.NotificationError
	case domain.StatusCompleted:
		title = titleCompleted
		message = msgCompleted
		kind = domain.NotificationSuccess
	default:
		return
	}

	s.createNotification(ctx, &domain.Notification{
		UserID:  booking.ClientID,
		Type:    kind,
		Title:   title,
		Message: message,
	})
}

func (s *Service) createNotification(ctx context.Context, n *domain.Notification) {
	if _, err := s.notificationRepo.Create(ctx, n); err != nil {
		s.logger.Error("Notifications: failed to create notification for user=%s: %v", n.UserID, err)
		return
	}
	s.logger.Info("Notifications: created %q for user=%s", n.Title, n.UserID)
}

// professionalRecipient адрес внутреннего уведомления профессионала
func professionalRecipient(professionalID int64) string {
	return fmt.Sprintf("prof-%d", professionalID)
}
