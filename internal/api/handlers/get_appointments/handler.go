package get_appointments

import (
	"net/http"
	"time"

	"github.com/m04kA/RTC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/RTC-AppointmentService/internal/domain"
	"github.com/m04kA/RTC-AppointmentService/internal/service/appointments/models"
)

const (
	msgInvalidDate = "invalid date filter, expected YYYY-MM-DD"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		result *models.AppointmentListResponse
		err    error
	)

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, parseErr := time.Parse(domain.DateFormat, dateStr)
		if parseErr != nil {
			h.logger.Warn("GET /admin/appointments - Invalid date filter: %s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		result, err = h.service.ListByDate(r.Context(), date)
	} else {
		result, err = h.service.List(r.Context())
	}

	if err != nil {
		h.logger.Error("GET /admin/appointments - Failed to list appointments: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/appointments - Listed %d appointments", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
