package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookAppointment "github.com/m04kA/RTC-AppointmentService/internal/usecase/book_appointment"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockUseCase struct {
	resp *bookAppointment.Response
	err  error

	gotReq *bookAppointment.Request
}

func (m *mockUseCase) Execute(_ context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error) {
	m.gotReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func doRequest(t *testing.T, uc *mockUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	uc := &mockUseCase{
		resp: &bookAppointment.Response{
			ID:            "apt-1",
			SessionDate:   time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC),
			TimeSlot:      "09:00 AM",
			ClientName:    "Jane Roe",
			CompanyName:   "Roe Consulting",
			Email:         "jane@roe.example",
			Phone:         "+1 555 0100",
			BusinessFocus: "Retail",
			Status:        "confirmed",
			CreatedAt:     time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC),
		},
	}

	body := `{
		"sessionDate": "2025-10-18",
		"timeSlot": "09:00 AM",
		"clientName": "Jane Roe",
		"companyName": "Roe Consulting",
		"email": "jane@roe.example",
		"phone": "+1 555 0100",
		"businessFocus": "Retail"
	}`

	rec := doRequest(t, uc, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "apt-1", resp.ID)
	assert.Equal(t, "2025-10-18", resp.SessionDate)
	assert.Equal(t, "confirmed", resp.Status)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC), uc.gotReq.SessionDate)
	assert.Equal(t, "09:00 AM", uc.gotReq.TimeSlot)
}

func TestHandler_InvalidBody(t *testing.T) {
	rec := doRequest(t, &mockUseCase{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_InvalidDateFormat(t *testing.T) {
	rec := doRequest(t, &mockUseCase{}, `{"sessionDate": "18/10/2025", "timeSlot": "09:00 AM"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_MissingSessionDate(t *testing.T) {
	uc := &mockUseCase{err: bookAppointment.ErrMissingSessionDate}
	rec := doRequest(t, uc, `{"timeSlot": ""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "select a date and time slot")
}

func TestHandler_ValidationErrorFields(t *testing.T) {
	uc := &mockUseCase{err: &bookAppointment.ValidationError{
		Fields: map[string]string{
			"email":      "Invalid email format",
			"clientName": "Name is required",
		},
	}}

	rec := doRequest(t, uc, `{"sessionDate": "2025-10-18", "timeSlot": "09:00 AM", "email": "nope"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "form validation failed", resp.Message)
	assert.Equal(t, "Invalid email format", resp.Fields["email"])
	assert.Equal(t, "Name is required", resp.Fields["clientName"])
}

func TestHandler_InternalError(t *testing.T) {
	uc := &mockUseCase{err: bookAppointment.ErrInternal}
	rec := doRequest(t, uc, `{"sessionDate": "2025-10-18", "timeSlot": "09:00 AM"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
