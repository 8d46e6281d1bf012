package domain

import (
	"errors"
	"time"
)

// FlowState represents the step of the three-step booking flow
type FlowState string

const (
	FlowSelectingSchedule FlowState = "selecting_schedule"
	FlowFillingDetails    FlowState = "filling_details"
	FlowCompleted         FlowState = "completed"
)

var (
	// ErrFlowMissingSchedule возвращается при попытке перейти к заполнению
	// формы без выбранной даты или слота
	ErrFlowMissingSchedule = errors.New("booking flow: session date and time slot are required")

	// ErrFlowInvalidTransition возвращается при недопустимом переходе между шагами
	ErrFlowInvalidTransition = errors.New("booking flow: invalid state transition")
)

// BookingFlow моделирует пошаговый процесс записи: выбор даты и слота →
// заполнение контактной формы → подтверждение. Явного состояния "отменено"
// нет: возврат назад сбрасывает выбранные дату и слот без сохранения
// черновика.
type BookingFlow struct {
	state       FlowState
	sessionDate time.Time
	timeSlot    string
	resultID    string
}

// NewBookingFlow returns a flow positioned at the schedule-selection step
func NewBookingFlow() *BookingFlow {
	return &BookingFlow{state: FlowSelectingSchedule}
}

// State returns the current flow state
func (f *BookingFlow) State() FlowState {
	return f.state
}

// PendingSchedule returns the selected session date and time slot
func (f *BookingFlow) PendingSchedule() (time.Time, string) {
	return f.sessionDate, f.timeSlot
}

// ResultID returns the id of the appointment produced by a completed flow
func (f *BookingFlow) ResultID() string {
	return f.resultID
}

// SelectSchedule переводит поток из выбора расписания к заполнению формы.
// Требует ненулевую дату сессии и непустой лейбл слота.
func (f *BookingFlow) SelectSchedule(sessionDate time.Time, timeSlot string) error {
	if f.state != FlowSelectingSchedule {
		return ErrFlowInvalidTransition
	}
	if sessionDate.IsZero() || timeSlot == "" {
		return ErrFlowMissingSchedule
	}

	f.sessionDate = sessionDate
	f.timeSlot = timeSlot
	f.state = FlowFillingDetails
	return nil
}

// Back возвращает поток к выбору расписания, отбрасывая выбранные дату и слот
func (f *BookingFlow) Back() error {
	if f.state != FlowFillingDetails {
		return ErrFlowInvalidTransition
	}

	f.sessionDate = time.Time{}
	f.timeSlot = ""
	f.state = FlowSelectingSchedule
	return nil
}

// Complete завершает поток с id созданной записи.
// Защитная проверка даты сессии: по построению потока отсутствующая дата
// недостижима, но состояние обязано оставаться неповреждённым и в этом случае.
func (f *BookingFlow) Complete(appointmentID string) error {
	if f.state != FlowFillingDetails {
		return ErrFlowInvalidTransition
	}
	if f.sessionDate.IsZero() {
		return ErrFlowMissingSchedule
	}

	f.resultID = appointmentID
	f.state = FlowCompleted
	return nil
}

// BookAnother сбрасывает завершённый поток к начальному шагу
func (f *BookingFlow) BookAnother() error {
	if f.state != FlowCompleted {
		return ErrFlowInvalidTransition
	}

	f.sessionDate = time.Time{}
	f.timeSlot = ""
	f.resultID = ""
	f.state = FlowSelectingSchedule
	return nil
}
