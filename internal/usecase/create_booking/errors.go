package create_booking

import "errors"

var (
	// ErrProfessionalNotFound - профессионал не найден или неактивен
	ErrProfessionalNotFound = errors.New("create_booking: professional not found")

	// ErrServiceNotFound - услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrSlotNotAvailable - запрошенный слот занят или недоступен
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput - некорректные входные данные
	ErrInvalidInput = errors.New("create_booking: invalid input")

	// ErrInternal - внутренняя ошибка
	ErrInternal = errors.New("create_booking: internal error")
)
