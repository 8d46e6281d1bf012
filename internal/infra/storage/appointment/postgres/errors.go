package postgres

import "errors"

var (
	// ErrNilAppointment возвращается при попытке сохранить nil запись
	ErrNilAppointment = errors.New("appointment.postgres: appointment is nil")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.postgres: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.postgres: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.postgres: failed to scan row")
)
