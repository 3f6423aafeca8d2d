package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pulsehr/pulse-backend-go/internal/domain/document"
	"github.com/pulsehr/pulse-backend-go/internal/domain/employee"
	"github.com/pulsehr/pulse-backend-go/internal/pkg/storage"
)

const maxDocumentSizeBytes = 20 << 20

type FileService interface {
	// Policy documents
	UploadPolicyDocument(ctx context.Context, title string, file io.Reader, filename string, sizeBytes int64) (document.PolicyDocumentResponse, error)
	ListPolicyDocuments(ctx context.Context) ([]document.PolicyDocumentResponse, error)
	DeletePolicyDocument(ctx context.Context, id string) error

	// Avatar uploads
	UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)
}

type fileServiceImpl struct {
	storage      storage.FileStorage
	documentRepo document.PolicyDocumentRepository
	employeeRepo employee.EmployeeRepository
}

var documentContentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

func toDocumentResponse(doc document.PolicyDocument) document.PolicyDocumentResponse {
	return document.PolicyDocumentResponse{
		ID:         doc.ID,
		Title:      doc.Title,
		FileURL:    doc.FileURL,
		SizeBytes:  doc.SizeBytes,
		UploadedBy: doc.UploadedBy,
		CreatedAt:  doc.CreatedAt.Format(time.RFC3339),
	}
}

// UploadPolicyDocument implements FileService. Only pdf, doc and docx
// files up to 20MB are accepted.
func (f *fileServiceImpl) UploadPolicyDocument(ctx context.Context, title string, file io.Reader, filename string, sizeBytes int64) (document.PolicyDocumentResponse, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := documentContentTypes[ext]
	if !ok {
		return document.PolicyDocumentResponse{}, document.ErrInvalidFileType
	}

	if sizeBytes > maxDocumentSizeBytes {
		return document.PolicyDocumentResponse{}, document.ErrFileTooLarge
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return document.PolicyDocumentResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	uploadedBy, ok := claims["employee_id"].(string)
	if !ok || uploadedBy == "" {
		return document.PolicyDocumentResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	path := fmt.Sprintf("documents/policy/%s%s", uuid.New().String(), ext)

	storedPath, err := f.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return document.PolicyDocumentResponse{}, fmt.Errorf("failed to upload policy document: %w", err)
	}

	fileURL, err := f.storage.GetURL(ctx, storedPath)
	if err != nil {
		return document.PolicyDocumentResponse{}, fmt.Errorf("failed to get document URL: %w", err)
	}

	created, err := f.documentRepo.Create(ctx, document.PolicyDocument{
		Title:      title,
		FilePath:   storedPath,
		FileURL:    fileURL,
		SizeBytes:  sizeBytes,
		UploadedBy: uploadedBy,
	})
	if err != nil {
		return document.PolicyDocumentResponse{}, fmt.Errorf("failed to create policy document: %w", err)
	}

	return toDocumentResponse(created), nil
}

// ListPolicyDocuments implements FileService.
func (f *fileServiceImpl) ListPolicyDocuments(ctx context.Context) ([]document.PolicyDocumentResponse, error) {
	documents, err := f.documentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list policy documents: %w", err)
	}

	responses := make([]document.PolicyDocumentResponse, 0, len(documents))
	for _, doc := range documents {
		responses = append(responses, toDocumentResponse(doc))
	}

	return responses, nil
}

// DeletePolicyDocument implements FileService. The stored file goes
// first; a dangling row is worse than a dangling file.
func (f *fileServiceImpl) DeletePolicyDocument(ctx context.Context, id string) error {
	doc, err := f.documentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.ErrDocumentNotFound
		}
		return fmt.Errorf("failed to get policy document: %w", err)
	}

	if err := f.storage.Delete(ctx, doc.FilePath); err != nil {
		return fmt.Errorf("failed to delete stored file: %w", err)
	}

	if err := f.documentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete policy document: %w", err)
	}

	return nil
}

// UploadAvatar implements FileService and returns the new avatar URL.
func (f *fileServiceImpl) UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return "", document.ErrInvalidFileType
	}

	emp, err := f.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("avatars/%s/%s%s", employeeID, uuid.New().String(), ext)

	storedPath, err := f.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	fileURL, err := f.storage.GetURL(ctx, storedPath)
	if err != nil {
		return "", fmt.Errorf("failed to get avatar URL: %w", err)
	}

	emp.AvatarURL = &fileURL
	if err := f.employeeRepo.Update(ctx, emp); err != nil {
		return "", fmt.Errorf("failed to update employee avatar: %w", err)
	}

	return fileURL, nil
}

func NewFileService(
	fileStorage storage.FileStorage,
	documentRepo document.PolicyDocumentRepository,
	employeeRepo employee.EmployeeRepository,
) FileService {
	return &fileServiceImpl{
		storage:      fileStorage,
		documentRepo: documentRepo,
		employeeRepo: employeeRepo,
	}
}
