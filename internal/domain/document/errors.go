package document

import "errors"

var (
	ErrDocumentNotFound = errors.New("policy document not found")
	ErrInvalidFileType  = errors.New("invalid file type: only pdf, doc, docx allowed")
	ErrFileTooLarge     = errors.New("file size must not exceed 20MB")
)
