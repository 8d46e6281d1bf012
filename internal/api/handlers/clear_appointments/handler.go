package clear_appointments

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

// Handle DELETE /api/v1/admin/appointments
// Удаляет все записи и сбрасывает счетчик идентификаторов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context()); err != nil {
		h.logger.Error("DELETE /admin/appointments - Failed to clear appointments: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/appointments - All appointments cleared")
	handlers.RespondNoContent(w)
}
