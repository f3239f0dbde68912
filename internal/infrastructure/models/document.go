package models

import (
	"time"

	"github.com/google/uuid"
)

// UploadedDocument is the gorm model backing entities.UploadedDocument.
// The composite unique index enforces latest-wins per (owner, docType).
type UploadedDocument struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_owner_doctype"`
	DocType    string    `gorm:"not null;uniqueIndex:idx_owner_doctype"`
	FileName   string
	StorageRef string `gorm:"not null"`
	UploadedAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides the table name
func (UploadedDocument) TableName() string {
	return "uploaded_documents"
}

// DocumentSubmission is the gorm model backing entities.DocumentSubmission.
// DocumentIDs is stored as a JSON array; rows are insert-only.
type DocumentSubmission struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID             uuid.UUID `gorm:"type:uuid;not null;index"`
	Category            string    `gorm:"not null"`
	AddressProofVariant string    `gorm:"not null"`
	DocumentIDs         string    `gorm:"not null"`
	SubmittedAt         time.Time
	CreatedAt           time.Time
}

// TableName overrides the table name
func (DocumentSubmission) TableName() string {
	return "document_submissions"
}
