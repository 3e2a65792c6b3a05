package blockedslots

import "errors"

var (
	// ErrInvalidInput - некорректные входные данные
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal - внутренняя ошибка
	ErrInternal = errors.New("service: internal error")
)
