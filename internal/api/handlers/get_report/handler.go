package get_report

import (
	"net/http"

	"github.com/m04kA/RTC-AppointmentService/internal/api/handlers"
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

// Handle GET /api/v1/admin/report
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Report(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/report - Failed to build report: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/report - Report built: total=%d, confirmed=%d, waitlist=%d",
		report.Total, report.Confirmed, report.Waitlist)
	handlers.RespondJSON(w, http.StatusOK, report)
}
