package announcement

import (
	"github.com/pulsehr/pulse-backend-go/internal/pkg/validator"
)

type CreateAnnouncementRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAnnouncementRequest struct {
	ID    string  `json:"-"`
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

type AnnouncementResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Body        string  `json:"body"`
	PublishedAt string  `json:"published_at"`
	AuthorName  *string `json:"author_name,omitempty"`
}
