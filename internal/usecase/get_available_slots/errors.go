package get_available_slots

import "errors"

var (
	// ErrProfessionalNotFound - профессионал не найден или неактивен
	ErrProfessionalNotFound = errors.New("get_available_slots: professional not found")

	// ErrServiceNotFound - услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidInput - некорректные входные данные
	ErrInvalidInput = errors.New("get_available_slots: invalid input")

	// ErrInternal - внутренняя ошибка
	ErrInternal = errors.New("get_available_slots: internal error")
)
