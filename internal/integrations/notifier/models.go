package notifier

// Severity уровень уведомления
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityError   Severity = "error"
)

// Notification модель уведомления, отправляемого в канал уведомлений
type Notification struct {
	Severity      Severity `json:"severity"`
	Message       string   `json:"message"`
	AppointmentID string   `json:"appointmentId,omitempty"`
	SessionDate   string   `json:"sessionDate,omitempty"` // YYYY-MM-DD
	TimeSlot      string   `json:"timeSlot,omitempty"`
	Status        string   `json:"status,omitempty"`
}
