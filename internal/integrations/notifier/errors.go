package notifier

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе канала уведомлений
	ErrInvalidResponse = errors.New("notifier client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Недоступность канала уведомлений никогда не должна ломать бронирование.
	ErrServiceDegraded = errors.New("notifier unavailable: graceful degradation applied")
)
