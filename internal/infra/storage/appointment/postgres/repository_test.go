package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RTC-AppointmentService/internal/domain"
	"github.com/m04kA/RTC-AppointmentService/pkg/ptr"
)

var sessionDate = time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		appointment *domain.Appointment
		mock        func(mock sqlmock.Sqlmock)
		wantID      string
		wantErr     error
	}{
		{
			name: "success",
			appointment: &domain.Appointment{
				SessionDate:     sessionDate,
				TimeSlot:        "09:00 AM",
				ClientName:      "John Doe",
				CompanyName:     "Acme Inc.",
				Email:           "john@example.com",
				Phone:           "+1 555 000 0001",
				BusinessFocus:   "E-commerce",
				ConsultancyNeed: ptr.Ptr("checkout performance"),
				Status:          domain.StatusConfirmed,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO appointments`).
					WithArgs(
						"2025-10-18",
						"09:00 AM",
						"John Doe",
						"Acme Inc.",
						"john@example.com",
						"+1 555 000 0001",
						"E-commerce",
						"checkout performance",
						"confirmed",
					).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), createdAt))
			},
			wantID: "apt-1",
		},
		{
			name: "db error",
			appointment: &domain.Appointment{
				SessionDate:   sessionDate,
				TimeSlot:      "09:00 AM",
				ClientName:    "Jane Doe",
				CompanyName:   "Beta LLC",
				Email:         "jane@example.com",
				Phone:         "+1 555 000 0002",
				BusinessFocus: "SaaS",
				Status:        domain.StatusWaitlist,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO appointments`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: ErrExecQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)

			repo := NewRepository(db)
			created, err := repo.Create(ctx, tt.appointment)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, created.ID)
			assert.Equal(t, createdAt, created.CreatedAt)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateNil(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	_, err = repo.Create(context.Background(), nil)
	require.ErrorIs(t, err, ErrNilAppointment)
}

func TestRepository_ConfirmedCountForDate(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM appointments`).
		WithArgs("2025-10-18", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(19))

	repo := NewRepository(db)
	count, err := repo.ConfirmedCountForDate(ctx, sessionDate)
	require.NoError(t, err)
	assert.Equal(t, 19, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByDate(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(appointmentColumns).
		AddRow(int64(1), sessionDate, "09:00 AM", "John Doe", "Acme Inc.",
			"john@example.com", "+1 555 000 0001", "E-commerce", nil, "confirmed", createdAt).
		AddRow(int64(3), sessionDate, "09:00 AM", "Jane Doe", "Beta LLC",
			"jane@example.com", "+1 555 000 0002", "SaaS", "growth plan", "waitlist", createdAt)

	mock.ExpectQuery(`SELECT .+ FROM appointments WHERE session_date = \$1 ORDER BY id ASC`).
		WithArgs("2025-10-18").
		WillReturnRows(rows)

	repo := NewRepository(db)
	appointments, err := repo.ListByDate(ctx, sessionDate)
	require.NoError(t, err)
	require.Len(t, appointments, 2)

	assert.Equal(t, "apt-1", appointments[0].ID)
	assert.Nil(t, appointments[0].ConsultancyNeed)
	assert.Equal(t, "apt-3", appointments[1].ID)
	require.NotNil(t, appointments[1].ConsultancyNeed)
	assert.Equal(t, "growth plan", *appointments[1].ConsultancyNeed)
	assert.Equal(t, domain.StatusWaitlist, appointments[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		id          string
		mock        func(mock sqlmock.Sqlmock)
		wantDeleted bool
	}{
		{
			name: "deleted",
			id:   "apt-2",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM appointments WHERE id = \$1`).
					WithArgs(int64(2)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantDeleted: true,
		},
		{
			name: "not found",
			id:   "apt-999",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM appointments WHERE id = \$1`).
					WithArgs(int64(999)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantDeleted: false,
		},
		{
			// id без префикса apt- трактуется как отсутствующая запись
			name:        "malformed id",
			id:          "booking-1",
			mock:        func(mock sqlmock.Sqlmock) {},
			wantDeleted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)

			repo := NewRepository(db)
			deleted, err := repo.DeleteByID(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeleted, deleted)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Clear(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`TRUNCATE appointments RESTART IDENTITY`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRepository(db)
	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParseAppointmentID(t *testing.T) {
	tests := []struct {
		id     string
		wantID int64
		wantOK bool
	}{
		{"apt-1", 1, true},
		{"apt-42", 42, true},
		{"apt-0", 0, false},
		{"apt--1", 0, false},
		{"apt-abc", 0, false},
		{"1", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		gotID, gotOK := parseAppointmentID(tt.id)
		assert.Equal(t, tt.wantOK, gotOK, tt.id)
		assert.Equal(t, tt.wantID, gotID, tt.id)
	}
}
