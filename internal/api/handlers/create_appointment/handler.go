package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/RTC-AppointmentService/internal/api/handlers"
	bookAppointment "github.com/m04kA/RTC-AppointmentService/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateFormat  = "invalid session date format, expected YYYY-MM-DD"
	msgMissingSessionDate = "please select a date and time slot"
	msgInvalidSessionDate = "selected date is not an available session date"
	msgInvalidTimeSlot    = "selected time slot is not available"
	msgValidationFailed   = "form validation failed"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse session date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Ошибки валидации формы возвращаем с картой полей
		var validationErr *bookAppointment.ValidationError
		if errors.As(err, &validationErr) {
			h.logger.Warn("POST /appointments - Validation failed: %v", validationErr)
			handlers.RespondValidationError(w, msgValidationFailed, validationErr.Fields)
			return
		}

		switch {
		case errors.Is(err, bookAppointment.ErrMissingSessionDate):
			h.logger.Warn("POST /appointments - Missing session date or time slot")
			handlers.RespondBadRequest(w, msgMissingSessionDate)

		case errors.Is(err, bookAppointment.ErrInvalidSessionDate):
			h.logger.Warn("POST /appointments - Invalid session date: %s", req.SessionDate)
			handlers.RespondBadRequest(w, msgInvalidSessionDate)

		case errors.Is(err, bookAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: %s", req.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created: id=%s, status=%s, date=%s, slot=%s",
		result.ID, result.Status, req.SessionDate, req.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
