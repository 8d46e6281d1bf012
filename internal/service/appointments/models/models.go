package models

import (
	"time"

	"github.com/m04kA/RTC-AppointmentService/internal/domain"
)

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              string  `json:"id"`
	SessionDate     string  `json:"sessionDate"` // "2025-10-18"
	TimeSlot        string  `json:"timeSlot"`    // "09:00 AM"
	ClientName      string  `json:"clientName"`
	CompanyName     string  `json:"companyName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	BusinessFocus   string  `json:"businessFocus"`
	ConsultancyNeed *string `json:"consultancyNeed,omitempty"`
	Status          string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// IndustryCount количество записей по отрасли
type IndustryCount struct {
	Industry string `json:"industry"`
	Count    int    `json:"count"`
}

// SessionReport сводка по одной дате сессии
type SessionReport struct {
	Date           string `json:"date"` // "2025-10-18"
	ConfirmedCount int    `json:"confirmedCount"`
	Capacity       int    `json:"capacity"`
	WaitlistCount  int    `json:"waitlistCount"`
}

// ReportResponse сводный отчёт по записям
type ReportResponse struct {
	Total         int             `json:"total"`
	Confirmed     int             `json:"confirmed"`
	Waitlist      int             `json:"waitlist"`
	TopIndustries []IndustryCount `json:"topIndustries"`
	Sessions      []SessionReport `json:"sessions"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		SessionDate:     a.SessionDate.Format(domain.DateFormat),
		TimeSlot:        a.TimeSlot,
		ClientName:      a.ClientName,
		CompanyName:     a.CompanyName,
		Email:           a.Email,
		Phone:           a.Phone,
		BusinessFocus:   a.BusinessFocus,
		ConsultancyNeed: a.ConsultancyNeed,
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appointment := range appointments {
		if dto := FromDomainAppointment(appointment); dto != nil {
			resp.Appointments = append(resp.Appointments, *dto)
		}
	}

	return resp
}
