package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pulsehr/pulse-backend-go/internal/domain/announcement"
	"github.com/pulsehr/pulse-backend-go/internal/pkg/database"
)

type announcementRepository struct {
	db *database.DB
}

// Create implements announcement.AnnouncementRepository.
func (r *announcementRepository) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcements (title, body, published_at, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.Title, a.Body, a.PublishedAt, a.CreatedBy).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	return a, nil
}

// GetByID implements announcement.AnnouncementRepository.
func (r *announcementRepository) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.title, a.body, a.published_at, a.created_by, a.created_at, a.updated_at, e.full_name
		FROM announcements a
		JOIN employees e ON e.id = a.created_by
		WHERE a.id = $1
	`

	var a announcement.Announcement
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.Body, &a.PublishedAt, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt, &a.AuthorName,
	)
	if err != nil {
		return announcement.Announcement{}, err
	}

	return a, nil
}

// List implements announcement.AnnouncementRepository. Newest first.
func (r *announcementRepository) List(ctx context.Context, limit int) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.title, a.body, a.published_at, a.created_by, a.created_at, a.updated_at, e.full_name
		FROM announcements a
		JOIN employees e ON e.id = a.created_by
		ORDER BY a.published_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	var announcements []announcement.Announcement
	for rows.Next() {
		var a announcement.Announcement
		err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.PublishedAt, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt, &a.AuthorName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate announcements: %w", err)
	}

	return announcements, nil
}

// Update implements announcement.AnnouncementRepository.
func (r *announcementRepository) Update(ctx context.Context, a announcement.Announcement) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE announcements SET title = $1, body = $2, updated_at = NOW() WHERE id = $3`

	tag, err := q.Exec(ctx, query, a.Title, a.Body, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}

	return nil
}

// Delete implements announcement.AnnouncementRepository.
func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepository{db: db}
}
