package employee

import (
	"time"
)

type Employee struct {
	ID                   string
	FullName             string
	Email                string
	PasswordHash         string
	Position             *string
	PhoneNumber          *string
	AvatarURL            *string
	StandardShiftStart   string // "HH:MM"
	StandardShiftEnd     string // "HH:MM"
	StandardHoursPerDay  float64
	JoinDate             time.Time
	IsAdmin              bool
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeactivatedAt        *time.Time
}
