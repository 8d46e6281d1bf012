package appointments

import (
	"context"
	"time"

	"github.com/m04kA/RTC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context) ([]*domain.Appointment, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	ConfirmedCountForDate(ctx context.Context, date time.Time) (int, error)
	WaitlistForDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	Clear(ctx context.Context) error
}

// MetricsCollector интерфейс для метрик удалений
type MetricsCollector interface {
	IncAppointmentsDeleted(count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
