package book_appointment

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrMissingSessionDate возвращается при отправке формы без даты сессии.
	// По построению потока бронирования состояние недостижимо, но проверка
	// обязана оставаться: add не должен вызываться без даты.
	ErrMissingSessionDate = errors.New("book_appointment: session date is missing")

	// ErrInvalidSessionDate возвращается, когда дата не входит в две
	// открытые для записи даты сессий
	ErrInvalidSessionDate = errors.New("book_appointment: date is not a bookable session date")

	// ErrInvalidTimeSlot возвращается, когда лейбл слота отсутствует в каталоге
	ErrInvalidTimeSlot = errors.New("book_appointment: time slot is not in the catalog")

	// ErrValidation возвращается при ошибках валидации полей формы
	ErrValidation = errors.New("book_appointment: invalid form data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)

// ValidationError ошибка валидации формы с сообщениями по полям.
// Разворачивается в ErrValidation для проверки через errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("%v: fields [%s]", ErrValidation, strings.Join(keys, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
