package get_schedule

import "time"

// Session информация об одной дате сессии
type Session struct {
	Date           time.Time // Дата сессии (суббота)
	ConfirmedCount int       // Подтверждённые записи
	Capacity       int       // Вместимость сессии (20)
	SpotsLeft      int       // Оставшиеся подтверждаемые места (не меньше 0)
	WaitlistCount  int       // Длина листа ожидания
}

// Slot один слот каталога
type Slot struct {
	ID        string // Стабильный идентификатор (slot-<i>)
	Label     string // Лейбл времени (например, "09:00 AM")
	Available bool   // Каталог статичен: всегда true
}

// Response расписание, доступное для бронирования
type Response struct {
	Sessions []Session // Ровно две ближайшие субботы
	Slots    []Slot    // Фиксированный каталог из 16 слотов
}
