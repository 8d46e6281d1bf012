package get_schedule

import (
	"github.com/m04kA/RTC-AppointmentService/internal/domain"
	getSchedule "github.com/m04kA/RTC-AppointmentService/internal/usecase/get_schedule"
)

// SessionResponse HTTP модель одной даты сессии
type SessionResponse struct {
	Date           string `json:"date"` // "2025-10-18"
	ConfirmedCount int    `json:"confirmedCount"`
	Capacity       int    `json:"capacity"`
	SpotsLeft      int    `json:"spotsLeft"`
	WaitlistCount  int    `json:"waitlistCount"`
}

// SlotResponse HTTP модель слота каталога
type SlotResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// ScheduleResponse HTTP модель расписания
type ScheduleResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Slots    []SlotResponse    `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	sessions := make([]SessionResponse, len(resp.Sessions))
	for i, session := range resp.Sessions {
		sessions[i] = SessionResponse{
			Date:           session.Date.Format(domain.DateFormat),
			ConfirmedCount: session.ConfirmedCount,
			Capacity:       session.Capacity,
			SpotsLeft:      session.SpotsLeft,
			WaitlistCount:  session.WaitlistCount,
		}
	}

	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			ID:        slot.ID,
			Label:     slot.Label,
			Available: slot.Available,
		}
	}

	return &ScheduleResponse{
		Sessions: sessions,
		Slots:    slots,
	}
}
