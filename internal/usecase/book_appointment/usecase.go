package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RTC-AppointmentService/internal/domain"
	"github.com/m04kA/RTC-AppointmentService/internal/integrations/notifier"
)

// UseCase use case бронирования консультации.
// Воспроизводит пошаговый поток виджета: выбор расписания → форма → запись.
// Решение confirmed/waitlist принимается внутри сериализуемой границы
// (мьютекс для memory, serializable транзакция для postgres), чтобы
// конкурентные бронирования не превышали вместимость сессии.
type UseCase struct {
	repo           AppointmentRepository
	txManager      TransactionManager
	notifierClient NotifierClient
	metrics        MetricsCollector
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case.
// notifierClient и metrics опциональны (nil допустим).
func NewUseCase(
	repo AppointmentRepository,
	txManager TransactionManager,
	notifierClient NotifierClient,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:           repo,
		txManager:      txManager,
		notifierClient: notifierClient,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: date=%s, slot=%q, company=%q",
		req.SessionDate.Format(domain.DateFormat), req.TimeSlot, req.CompanyName)

	// 1. Прогоняем переход выбора расписания через машину состояний потока.
	// Отсутствующая дата или пустой слот - нарушение предусловия, а не
	// ошибка валидации формы.
	flow := domain.NewBookingFlow()
	if err := flow.SelectSchedule(req.SessionDate, req.TimeSlot); err != nil {
		uc.logger.Warn("BookAppointment: schedule selection rejected: %v", err)
		return nil, ErrMissingSessionDate
	}

	// 2. Валидация полей формы. При ошибке поток остаётся на шаге формы,
	// никаких побочных эффектов не происходит.
	if err := validateForm(req); err != nil {
		uc.logger.Warn("BookAppointment: form validation failed: %v", err)
		return nil, err
	}

	// 3. Серверная проверка расписания: дата должна быть одной из двух
	// открытых суббот, слот - из каталога. В виджете эти состояния были
	// структурно недостижимы, на сервере им доверять нельзя.
	now := uc.timeProvider.Now()
	if !domain.IsBookableSessionDate(req.SessionDate, now) {
		uc.logger.Warn("BookAppointment: date %s is not a bookable session date",
			req.SessionDate.Format(domain.DateFormat))
		return nil, ErrInvalidSessionDate
	}
	if !domain.IsCatalogSlot(req.TimeSlot) {
		uc.logger.Warn("BookAppointment: time slot %q is not in the catalog", req.TimeSlot)
		return nil, ErrInvalidTimeSlot
	}

	// 4. Считаем подтверждённые, решаем статус и вставляем запись атомарно
	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		confirmedCount, err := uc.repo.ConfirmedCountForDate(txCtx, req.SessionDate)
		if err != nil {
			uc.logger.Error("BookAppointment: failed to count confirmed appointments: %v", err)
			return fmt.Errorf("%w: failed to count confirmed appointments: %v", ErrInternal, err)
		}

		// Статус - чистая функция от числа уже подтверждённых на момент
		// создания; задним числом не пересматривается
		status := domain.DecideStatus(confirmedCount)
		uc.logger.Info("BookAppointment: %d/%d confirmed for %s, new booking status=%s",
			confirmedCount, domain.SessionCapacity, req.SessionDate.Format(domain.DateFormat), status)

		created, err := uc.repo.Create(txCtx, &domain.Appointment{
			SessionDate:     req.SessionDate,
			TimeSlot:        req.TimeSlot,
			ClientName:      req.ClientName,
			CompanyName:     req.CompanyName,
			Email:           req.Email,
			Phone:           req.Phone,
			BusinessFocus:   req.BusinessFocus,
			ConsultancyNeed: req.ConsultancyNeed,
			Status:          status,
		})
		if err != nil {
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 5. Завершаем поток созданной записью
	if err := flow.Complete(result.ID); err != nil {
		// Запись уже создана; ошибка перехода не должна её терять
		uc.logger.Error("BookAppointment: flow completion failed for id=%s: %v", result.ID, err)
	}

	uc.logger.Info("BookAppointment: successfully created appointment id=%s status=%s", result.ID, result.Status)

	if uc.metrics != nil {
		uc.metrics.IncAppointmentCreated(string(result.Status))
	}

	uc.notify(ctx, result)

	return &Response{
		ID:              result.ID,
		SessionDate:     result.SessionDate,
		TimeSlot:        result.TimeSlot,
		ClientName:      result.ClientName,
		CompanyName:     result.CompanyName,
		Email:           result.Email,
		Phone:           result.Phone,
		BusinessFocus:   result.BusinessFocus,
		ConsultancyNeed: result.ConsultancyNeed,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
	}, nil
}

// notify отправляет уведомление о созданной записи.
// Канал уведомлений опционален, его недоступность бронирование не ломает.
func (uc *UseCase) notify(ctx context.Context, appointment *domain.Appointment) {
	if uc.notifierClient == nil {
		return
	}

	notification := &notifier.Notification{
		Message:       "Appointment confirmed!",
		Severity:      notifier.SeveritySuccess,
		AppointmentID: appointment.ID,
		SessionDate:   appointment.SessionDate.Format(domain.DateFormat),
		TimeSlot:      appointment.TimeSlot,
		Status:        string(appointment.Status),
	}
	if appointment.IsWaitlisted() {
		notification.Severity = notifier.SeverityInfo
		notification.Message = "Added to waitlist"
	}

	if err := uc.notifierClient.SendWithGracefulDegradation(ctx, notification); err != nil {
		if !errors.Is(err, notifier.ErrServiceDegraded) {
			uc.logger.Error("BookAppointment: unexpected notifier error for id=%s: %v", appointment.ID, err)
		}
	}
}
