package get_schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/RTC-AppointmentService/internal/domain"
)

// UseCase use case получения доступного расписания: две ближайшие даты
// сессий с занятостью и фиксированный каталог слотов
type UseCase struct {
	repo         AppointmentRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает расписание для бронирования
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	first, second := domain.NextTwoSessionDates(now)

	sessions := make([]Session, 0, domain.SessionDatesCount)
	for _, date := range []time.Time{first, second} {
		session, err := uc.sessionInfo(ctx, date)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	catalog := domain.TimeSlotCatalog()
	slots := make([]Slot, len(catalog))
	for i, slot := range catalog {
		slots[i] = Slot{
			ID:        slot.ID,
			Label:     slot.Label,
			Available: slot.Available,
		}
	}

	uc.logger.Info("GetSchedule: sessions=%s,%s confirmed=%d,%d",
		first.Format(domain.DateFormat), second.Format(domain.DateFormat),
		sessions[0].ConfirmedCount, sessions[1].ConfirmedCount)

	return &Response{
		Sessions: sessions,
		Slots:    slots,
	}, nil
}

func (uc *UseCase) sessionInfo(ctx context.Context, date time.Time) (Session, error) {
	confirmed, err := uc.repo.ConfirmedCountForDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to count confirmed for %s: %v",
			date.Format(domain.DateFormat), err)
		return Session{}, fmt.Errorf("%w: failed to count confirmed appointments: %v", ErrInternal, err)
	}

	waitlist, err := uc.repo.WaitlistForDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to get waitlist for %s: %v",
			date.Format(domain.DateFormat), err)
		return Session{}, fmt.Errorf("%w: failed to get waitlist: %v", ErrInternal, err)
	}

	spotsLeft := domain.SessionCapacity - confirmed
	if spotsLeft < 0 {
		spotsLeft = 0
	}

	return Session{
		Date:           date,
		ConfirmedCount: confirmed,
		Capacity:       domain.SessionCapacity,
		SpotsLeft:      spotsLeft,
		WaitlistCount:  len(waitlist),
	}, nil
}
