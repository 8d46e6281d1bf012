package notifier

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

// Client клиент webhook-канала уведомлений.
// Канал потребляется, а не определяется сервисом: сюда уходят события о
// созданных бронированиях, отображение пользователю - забота получателя.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента канала уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет уведомление в канал
func (c *Client) Send(ctx context.Context, notification *Notification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrInternal, err)
	}

	url := c.baseURL + "/notifications"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	return nil
}

// SendWithGracefulDegradation отправляет уведомление с graceful degradation.
// При недоступности канала возвращает ErrServiceDegraded: бронирование уже
// создано, терять его из-за упавшего канала уведомлений нельзя.
func (c *Client) SendWithGracefulDegradation(ctx context.Context, notification *Notification) error {
	if err := c.Send(ctx, notification); err != nil {
		c.log.Error("Notifier unavailable, applying graceful degradation for appointment_id=%s: %v",
			notification.AppointmentID, err)
		return fmt.Errorf("%w: appointment_id=%s, error=%v", ErrServiceDegraded, notification.AppointmentID, err)
	}

	c.log.Info("Notification sent: severity=%s, appointment_id=%s", notification.Severity, notification.AppointmentID)
	return nil
}
