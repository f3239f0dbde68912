package entities

import (
	"time"

	"github.com/google/uuid"
)

// DocumentCategory names a loan-application checklist
type DocumentCategory string

const (
	CategoryEmployeeBuilderPurchase DocumentCategory = "employee-builder-purchase"
	CategoryBusinessBuilderResale   DocumentCategory = "business-builder-resale"
)

// UploadedDocument represents one borrower KYC document in storage.
// Uniqueness is (OwnerID, DocType): a later upload of the same type
// supersedes the earlier row, it never duplicates it.
type UploadedDocument struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"ownerId"`
	DocType    string    `json:"docType"`
	FileName   string    `json:"fileName"`
	StorageRef string    `json:"storageRef"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// DocumentSubmission is the immutable record created once a borrower's
// uploaded set satisfies the category checklist. Re-submission creates
// a new record rather than editing the old one.
type DocumentSubmission struct {
	ID                  uuid.UUID        `json:"id"`
	OwnerID             uuid.UUID        `json:"ownerId"`
	Category            DocumentCategory `json:"category"`
	AddressProofVariant string           `json:"addressProofVariant"`
	DocumentIDs         []uuid.UUID      `json:"documentIds"`
	SubmittedAt         time.Time        `json:"submittedAt"`
}
