package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RTC-AppointmentService/internal/domain"
	"github.com/m04kA/RTC-AppointmentService/pkg/ptr"
)

var (
	testNow     = time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC) // Wednesday
	testSession = time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)  // next Saturday
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockMetrics struct {
	deleted int
}

func (m *mockMetrics) IncAppointmentsDeleted(count int) { m.deleted += count }

type mockRepository struct {
	appointments []*domain.Appointment
	listErr      error
	deleteErr    error

	deletedIDs []string
	cleared    bool
}

func (m *mockRepository) List(context.Context) ([]*domain.Appointment, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.appointments, nil
}

func (m *mockRepository) ListByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*domain.Appointment
	for _, a := range m.appointments {
		if domain.SameSessionDate(a.SessionDate, date) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockRepository) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	for _, a := range m.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockRepository) ConfirmedCountForDate(_ context.Context, date time.Time) (int, error) {
	count := 0
	for _, a := range m.appointments {
		if a.IsConfirmed() && domain.SameSessionDate(a.SessionDate, date) {
			count++
		}
	}
	return count, nil
}

func (m *mockRepository) WaitlistForDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, a := range m.appointments {
		if a.IsWaitlisted() && domain.SameSessionDate(a.SessionDate, date) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockRepository) DeleteByID(_ context.Context, id string) (bool, error) {
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	for i, a := range m.appointments {
		if a.ID == id {
			m.appointments = append(m.appointments[:i], m.appointments[i+1:]...)
			m.deletedIDs = append(m.deletedIDs, id)
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepository) Clear(context.Context) error {
	m.appointments = nil
	m.cleared = true
	return nil
}

func testAppointment(id string, focus string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:            id,
		SessionDate:   testSession,
		TimeSlot:      "09:00 AM",
		ClientName:    "Jane Roe",
		CompanyName:   "Roe Consulting",
		Email:         "jane@roe.example",
		Phone:         "+1 555 0100",
		BusinessFocus: focus,
		Status:        status,
		CreatedAt:     testNow,
	}
}

func newTestService(repo *mockRepository, metrics *mockMetrics) *Service {
	svc := NewService(repo, metrics, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: testNow}
	return svc
}

func TestService_List(t *testing.T) {
	repo := &mockRepository{appointments: []*domain.Appointment{
		testAppointment("apt-1", "Retail", domain.StatusConfirmed),
		testAppointment("apt-2", "Finance", domain.StatusWaitlist),
	}}
	svc := newTestService(repo, nil)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 2)
	assert.Equal(t, "apt-1", resp.Appointments[0].ID)
	assert.Equal(t, "2025-10-18", resp.Appointments[0].SessionDate)
	assert.Equal(t, "waitlist", resp.Appointments[1].Status)
}

func TestService_List_Empty(t *testing.T) {
	svc := newTestService(&mockRepository{}, nil)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.Appointments)
	assert.Empty(t, resp.Appointments)
}

func TestService_GetByID(t *testing.T) {
	repo := &mockRepository{appointments: []*domain.Appointment{
		testAppointment("apt-1", "Retail", domain.StatusConfirmed),
	}}
	svc := newTestService(repo, nil)

	resp, err := svc.GetByID(context.Background(), "apt-1")
	require.NoError(t, err)
	assert.Equal(t, "apt-1", resp.ID)

	_, err = svc.GetByID(context.Background(), "apt-99")
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := &mockRepository{appointments: []*domain.Appointment{
		testAppointment("apt-1", "Retail", domain.StatusConfirmed),
	}}
	metrics := &mockMetrics{}
	svc := newTestService(repo, metrics)

	require.NoError(t, svc.Delete(context.Background(), "apt-1"))
	assert.Equal(t, []string{"apt-1"}, repo.deletedIDs)
	assert.Equal(t, 1, metrics.deleted)

	err := svc.Delete(context.Background(), "apt-1")
	require.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Equal(t, 1, metrics.deleted)
}

func TestService_Clear(t *testing.T) {
	repo := &mockRepository{appointments: []*domain.Appointment{
		testAppointment("apt-1", "Retail", domain.StatusConfirmed),
		testAppointment("apt-2", "Finance", domain.StatusWaitlist),
		testAppointment("apt-3", "Retail", domain.StatusConfirmed),
	}}
	metrics := &mockMetrics{}
	svc := newTestService(repo, metrics)

	require.NoError(t, svc.Clear(context.Background()))
	assert.True(t, repo.cleared)
	assert.Equal(t, 3, metrics.deleted)
}

func TestService_Report(t *testing.T) {
	nextSession := testSession.AddDate(0, 0, 7)
	appointments := []*domain.Appointment{
		testAppointment("apt-1", "Technology", domain.StatusConfirmed),
		testAppointment("apt-2", "Technology", domain.StatusConfirmed),
		testAppointment("apt-3", "Finance", domain.StatusConfirmed),
		testAppointment("apt-4", "Healthcare", domain.StatusWaitlist),
		testAppointment("apt-5", "Technology", domain.StatusConfirmed),
		testAppointment("apt-6", "Finance", domain.StatusWaitlist),
	}
	appointments[3].SessionDate = nextSession
	repo := &mockRepository{appointments: appointments}
	svc := newTestService(repo, nil)

	report, err := svc.Report(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, report.Total)
	assert.Equal(t, 4, report.Confirmed)
	assert.Equal(t, 2, report.Waitlist)

	// Равные счетчики сохраняют порядок первого появления
	require.Len(t, report.TopIndustries, 3)
	assert.Equal(t, "Technology", report.TopIndustries[0].Industry)
	assert.Equal(t, 3, report.TopIndustries[0].Count)
	assert.Equal(t, "Finance", report.TopIndustries[1].Industry)
	assert.Equal(t, 2, report.TopIndustries[1].Count)
	assert.Equal(t, "Healthcare", report.TopIndustries[2].Industry)
	assert.Equal(t, 1, report.TopIndustries[2].Count)

	require.Len(t, report.Sessions, 2)
	assert.Equal(t, "2025-10-18", report.Sessions[0].Date)
	assert.Equal(t, 4, report.Sessions[0].ConfirmedCount)
	assert.Equal(t, domain.SessionCapacity, report.Sessions[0].Capacity)
	assert.Equal(t, 1, report.Sessions[0].WaitlistCount)
	assert.Equal(t, "2025-10-25", report.Sessions[1].Date)
	assert.Equal(t, 0, report.Sessions[1].ConfirmedCount)
	assert.Equal(t, 1, report.Sessions[1].WaitlistCount)
}

func TestService_Report_TopFiveLimit(t *testing.T) {
	focuses := []string{"A", "B", "C", "D", "E", "F"}
	var appointments []*domain.Appointment
	for _, focus := range focuses {
		appointments = append(appointments, testAppointment("apt-"+focus, focus, domain.StatusConfirmed))
	}
	repo := &mockRepository{appointments: appointments}
	svc := newTestService(repo, nil)

	report, err := svc.Report(context.Background())
	require.NoError(t, err)

	require.Len(t, report.TopIndustries, 5)
	assert.Equal(t, "A", report.TopIndustries[0].Industry)
	assert.Equal(t, "E", report.TopIndustries[4].Industry)
}

func TestService_ExportCSV(t *testing.T) {
	first := testAppointment("apt-1", "Retail, Commerce", domain.StatusConfirmed)
	first.CompanyName = `Acme "Widgets", Inc.`
	second := testAppointment("apt-2", "Finance", domain.StatusWaitlist)
	second.ConsultancyNeed = ptr.Ptr("growth strategy")
	repo := &mockRepository{appointments: []*domain.Appointment{first, second}}
	svc := newTestService(repo, nil)

	data, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)

	expected := "ID,Date,Time,Name,Company,Email,Phone,Business Focus,Status\n" +
		"apt-1,2025-10-18,09:00 AM,Jane Roe,\"Acme \"\"Widgets\"\", Inc.\",jane@roe.example,+1 555 0100,\"Retail, Commerce\",confirmed\n" +
		"apt-2,2025-10-18,09:00 AM,Jane Roe,Roe Consulting,jane@roe.example,+1 555 0100,Finance,waitlist\n"
	assert.Equal(t, expected, string(data))
}

func TestService_ExportCSV_Empty(t *testing.T) {
	svc := newTestService(&mockRepository{}, nil)

	data, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ID,Date,Time,Name,Company,Email,Phone,Business Focus,Status\n", string(data))
}

func TestService_RepositoryErrors(t *testing.T) {
	repo := &mockRepository{listErr: errors.New("storage down")}
	svc := newTestService(repo, nil)

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, ErrInternal)

	_, err = svc.Report(context.Background())
	require.ErrorIs(t, err, ErrInternal)

	_, err = svc.ExportCSV(context.Background())
	require.ErrorIs(t, err, ErrInternal)

	repo = &mockRepository{deleteErr: errors.New("storage down")}
	svc = newTestService(repo, nil)
	require.ErrorIs(t, svc.Delete(context.Background(), "apt-1"), ErrInternal)
}
