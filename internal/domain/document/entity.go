package document

import (
	"time"
)

// PolicyDocument is a company policy file stored in object storage.
type PolicyDocument struct {
	ID         string
	Title      string
	FilePath   string
	FileURL    string
	SizeBytes  int64
	UploadedBy string
	CreatedAt  time.Time
}
