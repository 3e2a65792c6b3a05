package domain

import "time"

// NotificationType категория внутреннего уведомления
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)

// Notification внутреннее уведомление ("колокольчик" в интерфейсе).
// Создается как побочный эффект бронирования и смены статуса,
// адресат - профессионал или клиент.
type Notification struct {
	ID        int64
	UserID    string
	Type      NotificationType
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
}
