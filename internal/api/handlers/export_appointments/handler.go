package export_appointments

import (
	"net/http"

	"github.com/m04kA/RTC-AppointmentService/internal/api/handlers"
)

const exportFilename = "appointments.csv"

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

// Handle GET /api/v1/admin/appointments/export
// Отдает CSV выгрузку как attachment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.ExportCSV(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/appointments/export - Failed to export: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("GET /admin/appointments/export - Failed to write response: error=%v", err)
		return
	}

	h.logger.Info("GET /admin/appointments/export - Exported %d bytes", len(data))
}
