package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusWaitlist  AppointmentStatus = "waitlist"
)

// Appointment represents a consultancy session booking
type Appointment struct {
	ID          string
	SessionDate time.Time
	TimeSlot    string

	// Contact/profile fields
	ClientName    string
	CompanyName   string
	Email         string
	Phone         string
	BusinessFocus string

	// Optional free-text description of the consultancy need
	ConsultancyNeed *string

	Status    AppointmentStatus
	CreatedAt time.Time
}

// IsConfirmed returns true if the appointment counts against session capacity
func (a *Appointment) IsConfirmed() bool {
	return a.Status == StatusConfirmed
}

// IsWaitlisted returns true if the appointment is on the waitlist
func (a *Appointment) IsWaitlisted() bool {
	return a.Status == StatusWaitlist
}

// DecideStatus returns the status for a new booking given the number of
// already-confirmed appointments for the same session date. The count is
// taken before the new record is inserted: the 20th booking sees 19 and is
// admitted, the 21st sees 20 and goes to the waitlist. The status is decided
// once at creation and never re-evaluated afterwards; deleting a confirmed
// appointment does not promote anyone from the waitlist.
func DecideStatus(confirmedCount int) AppointmentStatus {
	if confirmedCount < SessionCapacity {
		return StatusConfirmed
	}
	return StatusWaitlist
}

// SameSessionDate reports whether two timestamps fall on the same calendar
// date. Appointments are grouped by date only, time-of-day is ignored.
func SameSessionDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
