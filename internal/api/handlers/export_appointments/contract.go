package export_appointments

import "context"

type AppointmentService interface {
	ExportCSV(ctx context.Context) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
