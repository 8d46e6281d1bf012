package book_appointment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RTC-AppointmentService/internal/domain"
	"github.com/m04kA/RTC-AppointmentService/pkg/ptr"
)

func TestEmailPattern(t *testing.T) {
	valid := []string{
		"john@example.com",
		"john.doe+tag@sub.example.co",
		"a@b.cd",
	}
	invalid := []string{
		"john@example",     // нет точки в доменной части
		"john example.com", // пробел вместо @
		"john@@example.com",
		"john@exa mple.com",
		"@example.com",
		"john@",
		"",
	}

	for _, email := range valid {
		assert.True(t, emailPattern.MatchString(email), email)
	}
	for _, email := range invalid {
		assert.False(t, emailPattern.MatchString(email), email)
	}
}

func TestValidateForm_FieldLengthLimits(t *testing.T) {
	req := &Request{
		ClientName:      strings.Repeat("a", domain.MaxContactFieldLength+1),
		CompanyName:     "Roe Consulting",
		Email:           "jane@roe.example",
		Phone:           "+1 555 0100",
		BusinessFocus:   "Retail",
		ConsultancyNeed: ptr.Ptr(strings.Repeat("b", domain.MaxConsultancyNeedLength+1)),
	}

	err := validateForm(req)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Name is too long", validationErr.Fields["clientName"])
	assert.Equal(t, "Description is too long", validationErr.Fields["consultancyNeed"])
	assert.NotContains(t, validationErr.Fields, "companyName")
}
