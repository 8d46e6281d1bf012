package book_appointment

import "time"

// Request модель запроса на бронирование консультации
type Request struct {
	SessionDate time.Time // Дата сессии (одна из двух ближайших суббот)
	TimeSlot    string    // Лейбл слота из каталога (например, "09:00 AM")

	ClientName      string  // Имя клиента
	CompanyName     string  // Название компании
	Email           string  // Email
	Phone           string  // Телефон
	BusinessFocus   string  // Отрасль/фокус бизнеса
	ConsultancyNeed *string // Описание запроса (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID          string    // ID созданной записи (apt-<n>)
	SessionDate time.Time // Дата сессии
	TimeSlot    string    // Лейбл слота

	ClientName      string
	CompanyName     string
	Email           string
	Phone           string
	BusinessFocus   string
	ConsultancyNeed *string

	Status    string    // confirmed | waitlist
	CreatedAt time.Time // Время создания
}
