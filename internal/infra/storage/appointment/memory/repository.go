package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/RTC-AppointmentService/internal/domain"
)

// Repository in-memory хранилище записей на консультации.
// Единственный владелец коллекции: все операции чтения возвращают копии,
// чтобы вызывающий код не мог изменить внутреннее состояние.
//
// Доступ защищён мьютексом: в отличие от браузерного однопоточного варианта
// HTTP-сервер обслуживает запросы конкурентно, поэтому граница взаимного
// исключения обязана быть явной.
type Repository struct {
	mu           sync.RWMutex
	appointments []*domain.Appointment
	nextID       int64
	now          func() time.Time
}

// NewRepository создает пустое хранилище. Счётчик идентификаторов начинается
// с 1 и растёт на каждый Create независимо от удалений.
func NewRepository() *Repository {
	return &Repository{
		nextID: 1,
		now:    time.Now,
	}
}

// NewRepositoryWithClock создает хранилище с внешними часами (для тестов)
func NewRepositoryWithClock(now func() time.Time) *Repository {
	r := NewRepository()
	r.now = now
	return r
}

// Create сохраняет новую запись: присваивает следующий id вида apt-<n>,
// проставляет CreatedAt и возвращает копию сохранённой записи.
// Переданная структура не изменяется.
func (r *Repository) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if appointment == nil {
		return nil, ErrNilAppointment
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *appointment
	stored.ID = fmt.Sprintf("%s%d", domain.AppointmentIDPrefix, r.nextID)
	stored.CreatedAt = r.now()
	r.nextID++

	r.appointments = append(r.appointments, &stored)

	result := stored
	return &result, nil
}

// List возвращает копии всех записей в порядке вставки
func (r *Repository) List(_ context.Context) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyAppointments(r.appointments), nil
}

// ListByDate возвращает записи, чья дата сессии совпадает с date по
// календарному дню (время суток игнорируется)
func (r *Repository) ListByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.Appointment
	for _, apt := range r.appointments {
		if domain.SameSessionDate(apt.SessionDate, date) {
			matched = append(matched, apt)
		}
	}
	return copyAppointments(matched), nil
}

// ConfirmedCountForDate возвращает количество подтверждённых записей на дату
func (r *Repository) ConfirmedCountForDate(_ context.Context, date time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, apt := range r.appointments {
		if domain.SameSessionDate(apt.SessionDate, date) && apt.IsConfirmed() {
			count++
		}
	}
	return count, nil
}

// WaitlistForDate возвращает записи листа ожидания на дату в порядке вставки
func (r *Repository) WaitlistForDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.Appointment
	for _, apt := range r.appointments {
		if domain.SameSessionDate(apt.SessionDate, date) && apt.IsWaitlisted() {
			matched = append(matched, apt)
		}
	}
	return copyAppointments(matched), nil
}

// GetByID возвращает запись по id или (nil, nil), если её нет
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, apt := range r.appointments {
		if apt.ID == id {
			result := *apt
			return &result, nil
		}
	}
	return nil, nil
}

// DeleteByID удаляет запись по id. Возвращает true, если удаление произошло.
// Каскадных эффектов нет: статусы остальных записей не пересчитываются,
// записи из листа ожидания не продвигаются.
func (r *Repository) DeleteByID(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, apt := range r.appointments {
		if apt.ID == id {
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Clear удаляет все записи и сбрасывает счётчик идентификаторов к 1
func (r *Repository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.appointments = nil
	r.nextID = 1
	return nil
}

func copyAppointments(src []*domain.Appointment) []*domain.Appointment {
	result := make([]*domain.Appointment, len(src))
	for i, apt := range src {
		copied := *apt
		result[i] = &copied
	}
	return result
}
