package appointments

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/RTC-AppointmentService/internal/domain"
	"github.com/m04kA/RTC-AppointmentService/internal/service/appointments/models"
)

// topIndustriesLimit сколько отраслей попадает в отчёт
const topIndustriesLimit = 5

// csvHeader колонки выгрузки, порядок фиксирован
var csvHeader = []string{"ID", "Date", "Time", "Name", "Company", "Email", "Phone", "Business Focus", "Status"}

// Service административный сервис для работы с записями
type Service struct {
	repo         AppointmentRepository
	metrics      MetricsCollector
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo AppointmentRepository, metrics MetricsCollector, logger Logger) *Service {
	return &Service{
		repo:         repo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List возвращает все записи в порядке создания
func (s *Service) List(ctx context.Context) (*models.AppointmentListResponse, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// ListByDate возвращает записи на конкретную дату сессии
func (s *Service) ListByDate(ctx context.Context, date time.Time) (*models.AppointmentListResponse, error) {
	appointments, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: fetched %d appointments for date=%s", len(appointments), date.Format(domain.DateFormat))
	return models.FromDomainAppointmentList(appointments), nil
}

// GetByID возвращает запись по идентификатору
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	if appointment == nil {
		s.logger.Warn("GetByID: appointment id=%s not found", id)
		return nil, ErrAppointmentNotFound
	}

	return models.FromDomainAppointment(appointment), nil
}

// Delete удаляет одну запись по идентификатору
// Удаление не продвигает записи из листа ожидания
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	if !deleted {
		s.logger.Warn("Delete: appointment id=%s not found", id)
		return ErrAppointmentNotFound
	}

	if s.metrics != nil {
		s.metrics.IncAppointmentsDeleted(1)
	}

	s.logger.Info("Delete: deleted appointment id=%s", id)
	return nil
}

// Clear удаляет все записи и сбрасывает счетчик идентификаторов
func (s *Service) Clear(ctx context.Context) error {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Clear: failed to count appointments: %v", err)
		return fmt.Errorf("%w: Clear - repository error: %v", ErrInternal, err)
	}

	if err := s.repo.Clear(ctx); err != nil {
		s.logger.Error("Clear: repository error: %v", err)
		return fmt.Errorf("%w: Clear - repository error: %v", ErrInternal, err)
	}

	if s.metrics != nil {
		s.metrics.IncAppointmentsDeleted(len(appointments))
	}

	s.logger.Info("Clear: removed %d appointments", len(appointments))
	return nil
}

// Report собирает сводный отчёт: общие счётчики, топ отраслей
// и занятость двух текущих дат сессий
func (s *Service) Report(ctx context.Context) (*models.ReportResponse, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Report: repository error: %v", err)
		return nil, fmt.Errorf("%w: Report - repository error: %v", ErrInternal, err)
	}

	report := &models.ReportResponse{
		Total:         len(appointments),
		TopIndustries: topIndustries(appointments),
		Sessions:      make([]models.SessionReport, 0, domain.SessionDatesCount),
	}
	for _, appointment := range appointments {
		if appointment.IsConfirmed() {
			report.Confirmed++
		} else {
			report.Waitlist++
		}
	}

	first, second := domain.NextTwoSessionDates(s.timeProvider.Now())
	for _, date := range []time.Time{first, second} {
		confirmed, err := s.repo.ConfirmedCountForDate(ctx, date)
		if err != nil {
			s.logger.Error("Report: failed to count confirmed for %s: %v", date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: Report - repository error: %v", ErrInternal, err)
		}
		waitlisted, err := s.repo.WaitlistForDate(ctx, date)
		if err != nil {
			s.logger.Error("Report: failed to get waitlist for %s: %v", date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: Report - repository error: %v", ErrInternal, err)
		}

		report.Sessions = append(report.Sessions, models.SessionReport{
			Date:           date.Format(domain.DateFormat),
			ConfirmedCount: confirmed,
			Capacity:       domain.SessionCapacity,
			WaitlistCount:  len(waitlisted),
		})
	}

	s.logger.Info("Report: total=%d confirmed=%d waitlist=%d", report.Total, report.Confirmed, report.Waitlist)
	return report, nil
}

// ExportCSV выгружает все записи в CSV в порядке создания
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ExportCSV: repository error: %v", err)
		return nil, fmt.Errorf("%w: ExportCSV - repository error: %v", ErrInternal, err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("%w: ExportCSV - failed to write header: %v", ErrInternal, err)
	}
	for _, appointment := range appointments {
		record := []string{
			appointment.ID,
			appointment.SessionDate.Format(domain.DateFormat),
			appointment.TimeSlot,
			appointment.ClientName,
			appointment.CompanyName,
			appointment.Email,
			appointment.Phone,
			appointment.BusinessFocus,
			string(appointment.Status),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("%w: ExportCSV - failed to write record: %v", ErrInternal, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("%w: ExportCSV - writer error: %v", ErrInternal, err)
	}

	s.logger.Info("ExportCSV: exported %d appointments", len(appointments))
	return buf.Bytes(), nil
}

// topIndustries считает записи по точному значению businessFocus
// и возвращает топ-5; при равенстве счетчиков порядок первого появления
func topIndustries(appointments []*domain.Appointment) []models.IndustryCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, appointment := range appointments {
		if _, seen := counts[appointment.BusinessFocus]; !seen {
			order = append(order, appointment.BusinessFocus)
		}
		counts[appointment.BusinessFocus]++
	}

	industries := make([]models.IndustryCount, 0, len(order))
	for _, industry := range order {
		industries = append(industries, models.IndustryCount{
			Industry: industry,
			Count:    counts[industry],
		})
	}

	sort.SliceStable(industries, func(i, j int) bool {
		return industries[i].Count > industries[j].Count
	})

	if len(industries) > topIndustriesLimit {
		industries = industries[:topIndustriesLimit]
	}
	return industries
}
