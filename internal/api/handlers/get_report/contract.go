package get_report

import (
	"context"

	"github.com/m04kA/RTC-AppointmentService/internal/service/appointments/models"
)

type AppointmentService interface {
	Report(ctx context.Context) (*models.ReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
