package book_appointment

import (
	"regexp"
	"strings"

	"github.com/m04kA/RTC-AppointmentService/internal/domain"
)

// emailPattern простой паттерн из формы бронирования: одна @ и хотя бы одна
// точка в доменной части, без пробелов
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form field keys
const (
	fieldClientName      = "clientName"
	fieldCompanyName     = "companyName"
	fieldEmail           = "email"
	fieldPhone           = "phone"
	fieldBusinessFocus   = "businessFocus"
	fieldConsultancyNeed = "consultancyNeed"
)

// validateForm валидирует контактные поля формы.
// Возвращает nil либо *ValidationError с сообщением на каждое невалидное поле.
func validateForm(req *Request) error {
	fields := make(map[string]string)

	if strings.TrimSpace(req.ClientName) == "" {
		fields[fieldClientName] = "Name is required"
	} else if len(req.ClientName) > domain.MaxContactFieldLength {
		fields[fieldClientName] = "Name is too long"
	}

	if strings.TrimSpace(req.CompanyName) == "" {
		fields[fieldCompanyName] = "Company name is required"
	} else if len(req.CompanyName) > domain.MaxContactFieldLength {
		fields[fieldCompanyName] = "Company name is too long"
	}

	if strings.TrimSpace(req.Email) == "" {
		fields[fieldEmail] = "Email is required"
	} else if !emailPattern.MatchString(req.Email) {
		fields[fieldEmail] = "Invalid email format"
	}

	if strings.TrimSpace(req.Phone) == "" {
		fields[fieldPhone] = "Phone number is required"
	}

	if strings.TrimSpace(req.BusinessFocus) == "" {
		fields[fieldBusinessFocus] = "Business focus is required"
	} else if len(req.BusinessFocus) > domain.MaxContactFieldLength {
		fields[fieldBusinessFocus] = "Business focus is too long"
	}

	if req.ConsultancyNeed != nil && len(*req.ConsultancyNeed) > domain.MaxConsultancyNeedLength {
		fields[fieldConsultancyNeed] = "Description is too long"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
