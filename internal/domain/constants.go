package domain

// Capacity policy constants
const (
	// SessionCapacity максимум подтверждённых записей на одну сессию.
	// Намеренно не привязан к размеру каталога слотов (16): несколько
	// клиентов могут разделять один и тот же временной лейбл.
	SessionCapacity = 20

	// SessionDatesCount количество одновременно открытых для записи дат
	SessionDatesCount = 2
)

// Appointment id constants
const (
	AppointmentIDPrefix = "apt-"
)

// Business validation constants
const (
	MaxConsultancyNeedLength = 2000
	MaxContactFieldLength    = 200
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
