package repositories

import (
	"context"

	"github.com/google/uuid"
	"loanflow.backend/internal/domain/entities"
)

// DocumentRepository manages borrower KYC uploads. Upsert is keyed on
// (ownerID, docType): the latest upload is authoritative.
type DocumentRepository interface {
	Upsert(ctx context.Context, doc *entities.UploadedDocument) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.UploadedDocument, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.UploadedDocument, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubmissionRepository stores immutable document submissions.
type SubmissionRepository interface {
	Create(ctx context.Context, sub *entities.DocumentSubmission) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.DocumentSubmission, error)
}
