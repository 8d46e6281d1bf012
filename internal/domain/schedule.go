package domain

import (
	"strconv"
	"time"
)

// TimeSlot represents one entry of the fixed time-of-day catalog
type TimeSlot struct {
	ID        string
	Label     string
	Available bool
}

// slotLabels фиксированный каталог из 16 получасовых слотов с обеденным
// перерывом 12:30–14:00. Каталог одинаков для обеих дат сессий и не
// уменьшается по мере записи.
var slotLabels = []string{
	"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM",
	"11:00 AM", "11:30 AM", "12:00 PM", "12:30 PM",
	"02:00 PM", "02:30 PM", "03:00 PM", "03:30 PM",
	"04:00 PM", "04:30 PM", "05:00 PM", "05:30 PM",
}

// NextTwoSessionDates returns the two currently bookable session dates: the
// next upcoming Saturday (strictly in the future — if now is a Saturday the
// result is seven days ahead, never today) and the Saturday after it. The
// returned dates are truncated to midnight in now's location.
func NextTwoSessionDates(now time.Time) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	days := (int(time.Saturday) - int(today.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}

	first := today.AddDate(0, 0, days)
	second := first.AddDate(0, 0, 7)
	return first, second
}

// IsBookableSessionDate reports whether date matches one of the two session
// dates currently open for booking.
func IsBookableSessionDate(date, now time.Time) bool {
	first, second := NextTwoSessionDates(now)
	return SameSessionDate(date, first) || SameSessionDate(date, second)
}

// TimeSlotCatalog returns the fixed 16-entry slot catalog in listed order.
// The catalog is stateless: every call returns a fresh copy with every slot
// marked available regardless of existing bookings.
func TimeSlotCatalog() []TimeSlot {
	slots := make([]TimeSlot, len(slotLabels))
	for i, label := range slotLabels {
		slots[i] = TimeSlot{
			ID:        "slot-" + strconv.Itoa(i),
			Label:     label,
			Available: true,
		}
	}
	return slots
}

// IsCatalogSlot reports whether label is one of the catalog time labels.
func IsCatalogSlot(label string) bool {
	for _, l := range slotLabels {
		if l == label {
			return true
		}
	}
	return false
}
