package bookings

import "errors"

var (
	// ErrBookingNotFound - бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidInput - некорректные входные данные
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidStatus - неизвестный статус бронирования
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition - недопустимый переход статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInternal - внутренняя ошибка
	ErrInternal = errors.New("service: internal error")
)
