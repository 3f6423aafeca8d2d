package document

import (
	"context"
)

type PolicyDocumentRepository interface {
	Create(ctx context.Context, doc PolicyDocument) (PolicyDocument, error)
	GetByID(ctx context.Context, id string) (PolicyDocument, error)
	List(ctx context.Context) ([]PolicyDocument, error)
	Delete(ctx context.Context, id string) error
}
