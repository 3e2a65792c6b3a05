// Package mailer клиент исходящей почты поверх EmailJS-совместимого REST API.
// Используется исключительно в best-effort режиме: вызывающая сторона
// логирует ошибку и продолжает работу.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент отправки писем
type Client struct {
	baseURL    string
	serviceID  string
	templateID string
	publicKey  string
	enabled    bool
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(baseURL, serviceID, templateID, publicKey string, enabled bool, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		enabled:    enabled,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingConfirmation отправляет клиенту письмо-подтверждение заявки
func (c *Client) SendBookingConfirmation(ctx context.Context, params BookingMailParams) error {
	if !c.enabled {
		return ErrDisabled
	}

	if params.Notes == "" {
		params.Notes = "Sem observações"
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      c.serviceID,
		TemplateID:     c.templateID,
		UserID:         c.publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("%w: marshal request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/api/v1.0/email/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrDispatch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrDispatch, resp.StatusCode, string(respBody))
	}

	c.log.Info("Mailer: confirmation sent to %s (service=%s, date=%s %s)",
		params.ClientEmail, params.ServiceName, params.BookingDate, params.BookingTime)
	return nil
}
