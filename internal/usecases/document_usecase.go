package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"loanflow.backend/internal/domain/entities"
	"loanflow.backend/internal/domain/errors"
	domainRepos "loanflow.backend/internal/domain/repositories"
	"loanflow.backend/pkg/logger"
	"loanflow.backend/pkg/utils"
)

// DocumentUsecase handles borrower KYC uploads and the gated
// checklist submission.
type DocumentUsecase struct {
	docRepo   domainRepos.DocumentRepository
	subRepo   domainRepos.SubmissionRepository
	storage   DocumentStorage
	checklist *ChecklistValidator
}

func NewDocumentUsecase(
	docRepo domainRepos.DocumentRepository,
	subRepo domainRepos.SubmissionRepository,
	storage DocumentStorage,
	checklist *ChecklistValidator,
) *DocumentUsecase {
	return &DocumentUsecase{
		docRepo:   docRepo,
		subRepo:   subRepo,
		storage:   storage,
		checklist: checklist,
	}
}

type UploadDocumentInput struct {
	OwnerID  uuid.UUID
	DocType  string
	FileName string
	Data     []byte
}

// Upload stores the file first and records the row second, so a
// storage failure leaves no dangling "uploaded" state. A repeat upload
// of the same doc type supersedes the earlier row.
func (uc *DocumentUsecase) Upload(ctx context.Context, input UploadDocumentInput) (*entities.UploadedDocument, error) {
	if input.DocType == "" || len(input.Data) == 0 {
		return nil, errors.BadRequest("docType and file content are required")
	}

	ref, err := uc.storage.Put(ctx, input.OwnerID, input.DocType, input.Data)
	if err != nil {
		logger.Error(ctx, "document storage write failed",
			zap.String("ownerId", input.OwnerID.String()),
			zap.String("docType", input.DocType),
			zap.Error(err))
		return nil, errors.ErrStorageWriteFailed
	}

	doc := &entities.UploadedDocument{
		ID:         utils.GenerateUUIDv7(),
		OwnerID:    input.OwnerID,
		DocType:    input.DocType,
		FileName:   input.FileName,
		StorageRef: ref,
		UploadedAt: time.Now(),
	}
	if err := uc.docRepo.Upsert(ctx, doc); err != nil {
		return nil, errors.InternalError(err)
	}
	return doc, nil
}

// List returns the owner's current uploads with resolvable view URLs.
func (uc *DocumentUsecase) List(ctx context.Context, ownerID uuid.UUID) ([]*entities.UploadedDocument, error) {
	return uc.docRepo.ListByOwner(ctx, ownerID)
}

// ViewURL resolves a stored document to a viewable URL.
func (uc *DocumentUsecase) ViewURL(ctx context.Context, id uuid.UUID) (string, error) {
	doc, err := uc.docRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return uc.storage.URL(doc.StorageRef), nil
}

// Delete removes a document row and its stored bytes. A storage delete
// failure after the row is gone is logged but not surfaced; the row is
// the source of truth for completeness.
func (uc *DocumentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := uc.docRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.docRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := uc.storage.Delete(ctx, doc.StorageRef); err != nil {
		logger.Warn(ctx, "stored document cleanup failed",
			zap.String("storageRef", doc.StorageRef),
			zap.Error(err))
	}
	return nil
}

// ChecklistStatus reports what is still missing for a category given
// the owner's current uploads.
type ChecklistStatus struct {
	Category  entities.DocumentCategory `json:"category"`
	Required  []string                  `json:"required"`
	Missing   []string                  `json:"missing"`
	CanSubmit bool                      `json:"canSubmit"`
}

func (uc *DocumentUsecase) Status(ctx context.Context, ownerID uuid.UUID, category entities.DocumentCategory, variantChosen bool) (*ChecklistStatus, error) {
	required, err := uc.checklist.RequiredDocs(category)
	if err != nil {
		return nil, err
	}

	docs, err := uc.docRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	uploaded := docTypes(docs)

	missing, err := uc.checklist.Missing(category, uploaded)
	if err != nil {
		return nil, err
	}

	return &ChecklistStatus{
		Category:  category,
		Required:  required,
		Missing:   missing,
		CanSubmit: len(missing) == 0 && variantChosen,
	}, nil
}

type SubmitDocumentsInput struct {
	OwnerID             uuid.UUID
	Category            entities.DocumentCategory
	AddressProofVariant string
}

// Submit creates an immutable DocumentSubmission once the checklist is
// satisfied. Completeness is reevaluated from current rows at call
// time; an incomplete set fails with the missing doc types attached.
func (uc *DocumentUsecase) Submit(ctx context.Context, input SubmitDocumentsInput) (*entities.DocumentSubmission, error) {
	docs, err := uc.docRepo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	missing, err := uc.checklist.Missing(input.Category, docTypes(docs))
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 || input.AddressProofVariant == "" {
		if input.AddressProofVariant == "" {
			missing = append(missing, "addressProofVariant")
		}
		return nil, &errors.IncompleteDocumentSetError{Missing: missing}
	}

	ids := make([]uuid.UUID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}

	sub := &entities.DocumentSubmission{
		ID:                  utils.GenerateUUIDv7(),
		OwnerID:             input.OwnerID,
		Category:            input.Category,
		AddressProofVariant: input.AddressProofVariant,
		DocumentIDs:         ids,
		SubmittedAt:         time.Now(),
	}
	if err := uc.subRepo.Create(ctx, sub); err != nil {
		return nil, errors.InternalError(err)
	}

	logger.Info(ctx, "document set submitted",
		zap.String("ownerId", input.OwnerID.String()),
		zap.String("category", string(input.Category)),
		zap.Int("documents", len(ids)))
	return sub, nil
}

// Submissions lists the owner's past submissions, latest first.
func (uc *DocumentUsecase) Submissions(ctx context.Context, ownerID uuid.UUID) ([]*entities.DocumentSubmission, error) {
	return uc.subRepo.ListByOwner(ctx, ownerID)
}

func docTypes(docs []*entities.UploadedDocument) []string {
	types := make([]string, 0, len(docs))
	for _, d := range docs {
		types = append(types, d.DocType)
	}
	return types
}
