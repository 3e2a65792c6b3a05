package mailer

import "errors"

var (
	// ErrDisabled возвращается, когда отправка почты выключена в конфигурации
	ErrDisabled = errors.New("mailer client: disabled by configuration")

	// ErrDispatch возвращается при ошибке отправки письма
	ErrDispatch = errors.New("mailer client: dispatch failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")
)
