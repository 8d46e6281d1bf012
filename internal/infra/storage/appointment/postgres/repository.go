package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/RTC-AppointmentService/internal/domain"
	"github.com/m04kA/RTC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/RTC-AppointmentService/pkg/txmanager"
)

var appointmentColumns = []string{
	"id",
	"session_date",
	"time_slot",
	"client_name",
	"company_name",
	"email",
	"phone",
	"business_focus",
	"consultancy_need",
	"status",
	"created_at",
}

// Repository PostgreSQL-репозиторий записей на консультации.
//
// Публичные идентификаторы вида apt-<n> отображаются на bigserial первичный
// ключ таблицы. TRUNCATE ... RESTART IDENTITY при полной очистке сбрасывает
// счётчик так же, как это делает in-memory хранилище.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись и возвращает её с присвоенным id и created_at.
// При вызове внутри транзакции (txmanager) использует её.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if appointment == nil {
		return nil, ErrNilAppointment
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"session_date",
			"time_slot",
			"client_name",
			"company_name",
			"email",
			"phone",
			"business_focus",
			"consultancy_need",
			"status",
		).
		Values(
			appointment.SessionDate.Format(domain.DateFormat),
			appointment.TimeSlot,
			appointment.ClientName,
			appointment.CompanyName,
			appointment.Email,
			appointment.Phone,
			appointment.BusinessFocus,
			appointment.ConsultancyNeed,
			appointment.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var (
		rowID     int64
		createdAt time.Time
	)
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rowID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	stored := *appointment
	stored.ID = formatAppointmentID(rowID)
	stored.CreatedAt = createdAt
	return &stored, nil
}

// List возвращает все записи в порядке вставки (по возрастанию id)
func (r *Repository) List(ctx context.Context) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryAppointments(ctx, executor, query, args)
}

// ListByDate возвращает записи на указанную календарную дату в порядке вставки
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"session_date": date.Format(domain.DateFormat)}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryAppointments(ctx, executor, query, args)
}

// ConfirmedCountForDate возвращает количество подтверждённых записей на дату
func (r *Repository) ConfirmedCountForDate(ctx context.Context, date time.Time) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{
			"session_date": date.Format(domain.DateFormat),
			"status":       domain.StatusConfirmed,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ConfirmedCountForDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: ConfirmedCountForDate - execute select: %v", ErrExecQuery, err)
	}
	return count, nil
}

// WaitlistForDate возвращает записи листа ожидания на дату в порядке вставки
func (r *Repository) WaitlistForDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{
			"session_date": date.Format(domain.DateFormat),
			"status":       domain.StatusWaitlist,
		}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: WaitlistForDate - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryAppointments(ctx, executor, query, args)
}

// GetByID возвращает запись по публичному id или (nil, nil), если её нет
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	rowID, ok := parseAppointmentID(id)
	if !ok {
		return nil, nil
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": rowID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointments, err := r.queryAppointments(ctx, executor, query, args)
	if err != nil {
		return nil, err
	}
	if len(appointments) == 0 {
		return nil, nil
	}
	return appointments[0], nil
}

// DeleteByID удаляет запись по публичному id.
// Возвращает true, если удаление произошло. id с чужим префиксом трактуется
// как отсутствующая запись, а не как ошибка.
func (r *Repository) DeleteByID(ctx context.Context, id string) (bool, error) {
	rowID, ok := parseAppointmentID(id)
	if !ok {
		return false, nil
	}

	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": rowID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: DeleteByID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: DeleteByID - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: DeleteByID - rows affected: %v", ErrExecQuery, err)
	}
	return affected > 0, nil
}

// Clear удаляет все записи и сбрасывает счётчик идентификаторов
func (r *Repository) Clear(ctx context.Context) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, "TRUNCATE appointments RESTART IDENTITY"); err != nil {
		return fmt.Errorf("%w: Clear - execute truncate: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) queryAppointments(ctx context.Context, executor DBExecutor, query string, args []interface{}) ([]*domain.Appointment, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var appointments []*domain.Appointment
	for rows.Next() {
		apt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, apt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrScanRow, err)
	}
	return appointments, nil
}

func scanAppointment(rows *sql.Rows) (*domain.Appointment, error) {
	var (
		apt             domain.Appointment
		rowID           int64
		consultancyNeed sql.NullString
	)

	err := rows.Scan(
		&rowID,
		&apt.SessionDate,
		&apt.TimeSlot,
		&apt.ClientName,
		&apt.CompanyName,
		&apt.Email,
		&apt.Phone,
		&apt.BusinessFocus,
		&consultancyNeed,
		&apt.Status,
		&apt.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}

	apt.ID = formatAppointmentID(rowID)
	if consultancyNeed.Valid {
		apt.ConsultancyNeed = &consultancyNeed.String
	}
	return &apt, nil
}

func formatAppointmentID(rowID int64) string {
	return fmt.Sprintf("%s%d", domain.AppointmentIDPrefix, rowID)
}

func parseAppointmentID(id string) (int64, bool) {
	raw, found := strings.CutPrefix(id, domain.AppointmentIDPrefix)
	if !found {
		return 0, false
	}
	rowID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || rowID <= 0 {
		return 0, false
	}
	return rowID, true
}
