package workinghours

import "errors"

var (
	// ErrProfessionalNotFound - профессионал не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrInvalidInput - некорректные входные данные
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal - внутренняя ошибка
	ErrInternal = errors.New("service: internal error")
)
