package memory

import "errors"

var (
	// ErrNilAppointment возвращается при попытке сохранить nil запись
	ErrNilAppointment = errors.New("appointment.memory: appointment is nil")
)
