package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pulsehr/pulse-backend-go/internal/domain/document"
	"github.com/pulsehr/pulse-backend-go/internal/pkg/database"
)

type policyDocumentRepository struct {
	db *database.DB
}

// Create implements document.PolicyDocumentRepository.
func (r *policyDocumentRepository) Create(ctx context.Context, doc document.PolicyDocument) (document.PolicyDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO policy_documents (title, file_path, file_url, size_bytes, uploaded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, doc.Title, doc.FilePath, doc.FileURL, doc.SizeBytes, doc.UploadedBy).
		Scan(&doc.ID, &doc.CreatedAt)
	if err != nil {
		return document.PolicyDocument{}, fmt.Errorf("failed to create policy document: %w", err)
	}

	return doc, nil
}

// GetByID implements document.PolicyDocumentRepository.
func (r *policyDocumentRepository) GetByID(ctx context.Context, id string) (document.PolicyDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, file_path, file_url, size_bytes, uploaded_by, created_at
		FROM policy_documents
		WHERE id = $1
	`

	var doc document.PolicyDocument
	err := q.QueryRow(ctx, query, id).Scan(
		&doc.ID, &doc.Title, &doc.FilePath, &doc.FileURL, &doc.SizeBytes, &doc.UploadedBy, &doc.CreatedAt,
	)
	if err != nil {
		return document.PolicyDocument{}, err
	}

	return doc, nil
}

// List implements document.PolicyDocumentRepository.
func (r *policyDocumentRepository) List(ctx context.Context) ([]document.PolicyDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, file_path, file_url, size_bytes, uploaded_by, created_at
		FROM policy_documents
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list policy documents: %w", err)
	}
	defer rows.Close()

	var documents []document.PolicyDocument
	for rows.Next() {
		var doc document.PolicyDocument
		err := rows.Scan(&doc.ID, &doc.Title, &doc.FilePath, &doc.FileURL, &doc.SizeBytes, &doc.UploadedBy, &doc.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan policy document: %w", err)
		}
		documents = append(documents, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate policy documents: %w", err)
	}

	return documents, nil
}

// Delete implements document.PolicyDocumentRepository.
func (r *policyDocumentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM policy_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete policy document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func NewPolicyDocumentRepository(db *database.DB) document.PolicyDocumentRepository {
	return &policyDocumentRepository{db: db}
}
