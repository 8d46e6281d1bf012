package create_appointment

import (
	"time"

	"github.com/m04kA/RTC-AppointmentService/internal/domain"
	bookAppointment "github.com/m04kA/RTC-AppointmentService/internal/usecase/book_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	SessionDate     string  `json:"sessionDate"` // "2025-10-18"
	TimeSlot        string  `json:"timeSlot"`    // "09:00 AM"
	ClientName      string  `json:"clientName"`
	CompanyName     string  `json:"companyName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	BusinessFocus   string  `json:"businessFocus"`
	ConsultancyNeed *string `json:"consultancyNeed,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string  `json:"id"`
	SessionDate     string  `json:"sessionDate"`
	TimeSlot        string  `json:"timeSlot"`
	ClientName      string  `json:"clientName"`
	CompanyName     string  `json:"companyName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	BusinessFocus   string  `json:"businessFocus"`
	ConsultancyNeed *string `json:"consultancyNeed,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустая дата передается нулевым значением: use case вернет ErrMissingSessionDate
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*bookAppointment.Request, error) {
	var sessionDate time.Time
	if r.SessionDate != "" {
		parsed, err := time.Parse(domain.DateFormat, r.SessionDate)
		if err != nil {
			return nil, err
		}
		sessionDate = parsed
	}

	return &bookAppointment.Request{
		SessionDate:     sessionDate,
		TimeSlot:        r.TimeSlot,
		ClientName:      r.ClientName,
		CompanyName:     r.CompanyName,
		Email:           r.Email,
		Phone:           r.Phone,
		BusinessFocus:   r.BusinessFocus,
		ConsultancyNeed: r.ConsultancyNeed,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		SessionDate:     resp.SessionDate.Format(domain.DateFormat),
		TimeSlot:        resp.TimeSlot,
		ClientName:      resp.ClientName,
		CompanyName:     resp.CompanyName,
		Email:           resp.Email,
		Phone:           resp.Phone,
		BusinessFocus:   resp.BusinessFocus,
		ConsultancyNeed: resp.ConsultancyNeed,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
