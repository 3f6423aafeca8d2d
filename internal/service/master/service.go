package master

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/pulsehr/pulse-backend-go/internal/domain/announcement"
	"github.com/pulsehr/pulse-backend-go/internal/domain/holiday"
	"github.com/pulsehr/pulse-backend-go/internal/pkg/database"
)

// MasterService manages company-wide reference data: the holiday
// calendar and the announcement feed.
type MasterService interface {
	CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error)
	ListHolidays(ctx context.Context, year int) ([]holiday.HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error

	CreateAnnouncement(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.AnnouncementResponse, error)
	ListAnnouncements(ctx context.Context, limit int) ([]announcement.AnnouncementResponse, error)
	UpdateAnnouncement(ctx context.Context, req announcement.UpdateAnnouncementRequest) (announcement.AnnouncementResponse, error)
	DeleteAnnouncement(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	db *database.DB
	holiday.HolidayRepository
	announcement.AnnouncementRepository
}

func toHolidayResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		IsRecurring: h.IsRecurring,
	}
}

func toAnnouncementResponse(a announcement.Announcement) announcement.AnnouncementResponse {
	return announcement.AnnouncementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Body:        a.Body,
		PublishedAt: a.PublishedAt.Format(time.RFC3339),
		AuthorName:  a.AuthorName,
	}
}

func (m *masterServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	existing, err := m.HolidayRepository.GetByDate(ctx, date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to check holiday date: %w", err)
	}
	if existing != nil {
		return holiday.HolidayResponse{}, holiday.ErrHolidayExists
	}

	created, err := m.HolidayRepository.Create(ctx, holiday.Holiday{
		Name:        req.Name,
		Date:        date,
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return toHolidayResponse(created), nil
}

func (m *masterServiceImpl) ListHolidays(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	var holidays []holiday.Holiday
	var err error

	if year > 0 {
		holidays, err = m.HolidayRepository.ListForYear(ctx, year)
	} else {
		holidays, err = m.HolidayRepository.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, toHolidayResponse(h))
	}

	return responses, nil
}

func (m *masterServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	if err := m.HolidayRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

func (m *masterServiceImpl) CreateAnnouncement(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return announcement.AnnouncementResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	created, err := m.AnnouncementRepository.Create(ctx, announcement.Announcement{
		Title:       req.Title,
		Body:        req.Body,
		PublishedAt: time.Now().UTC(),
		CreatedBy:   employeeID,
	})
	if err != nil {
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	return toAnnouncementResponse(created), nil
}

func (m *masterServiceImpl) ListAnnouncements(ctx context.Context, limit int) ([]announcement.AnnouncementResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	announcements, err := m.AnnouncementRepository.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	responses := make([]announcement.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		responses = append(responses, toAnnouncementResponse(a))
	}

	return responses, nil
}

func (m *masterServiceImpl) UpdateAnnouncement(ctx context.Context, req announcement.UpdateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	existing, err := m.AnnouncementRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return announcement.AnnouncementResponse{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to get announcement: %w", err)
	}

	if req.Title != nil && *req.Title != "" {
		existing.Title = *req.Title
	}
	if req.Body != nil && *req.Body != "" {
		existing.Body = *req.Body
	}

	if err := m.AnnouncementRepository.Update(ctx, existing); err != nil {
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to update announcement: %w", err)
	}

	return toAnnouncementResponse(existing), nil
}

func (m *masterServiceImpl) DeleteAnnouncement(ctx context.Context, id string) error {
	if err := m.AnnouncementRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return announcement.ErrAnnouncementNotFound
		}
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return nil
}

func NewMasterService(
	db *database.DB,
	holidayRepo holiday.HolidayRepository,
	announcementRepo announcement.AnnouncementRepository,
) MasterService {
	return &masterServiceImpl{
		db:                     db,
		HolidayRepository:      holidayRepo,
		AnnouncementRepository: announcementRepo,
	}
}
