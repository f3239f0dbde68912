package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"loanflow.backend/internal/domain/entities"
	domainerrors "loanflow.backend/internal/domain/errors"
	"loanflow.backend/internal/infrastructure/models"
)

// DocumentRepositoryImpl implements DocumentRepository
type DocumentRepositoryImpl struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepositoryImpl {
	return &DocumentRepositoryImpl{db: db}
}

// Upsert inserts the upload or, when a row for (owner, docType) already
// exists, replaces it. Latest write wins by uploaded_at.
func (r *DocumentRepositoryImpl) Upsert(ctx context.Context, doc *entities.UploadedDocument) error {
	now := time.Now()
	m := &models.UploadedDocument{
		ID:         doc.ID,
		OwnerID:    doc.OwnerID,
		DocType:    doc.DocType,
		FileName:   doc.FileName,
		StorageRef: doc.StorageRef,
		UploadedAt: doc.UploadedAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_id"}, {Name: "doc_type"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"id", "file_name", "storage_ref", "uploaded_at", "updated_at",
		}),
	}).Create(m).Error
}

func (r *DocumentRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.UploadedDocument, error) {
	var m models.UploadedDocument
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *DocumentRepositoryImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.UploadedDocument, error) {
	var ms []models.UploadedDocument
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("uploaded_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	docs := make([]*entities.UploadedDocument, 0, len(ms))
	for _, m := range ms {
		model := m
		docs = append(docs, r.toEntity(&model))
	}
	return docs, nil
}

func (r *DocumentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.UploadedDocument{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *DocumentRepositoryImpl) toEntity(m *models.UploadedDocument) *entities.UploadedDocument {
	return &entities.UploadedDocument{
		ID:         m.ID,
		OwnerID:    m.OwnerID,
		DocType:    m.DocType,
		FileName:   m.FileName,
		StorageRef: m.StorageRef,
		UploadedAt: m.UploadedAt,
	}
}

// SubmissionRepositoryImpl implements SubmissionRepository
type SubmissionRepositoryImpl struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepositoryImpl {
	return &SubmissionRepositoryImpl{db: db}
}

func (r *SubmissionRepositoryImpl) Create(ctx context.Context, sub *entities.DocumentSubmission) error {
	idsJSON, err := json.Marshal(sub.DocumentIDs)
	if err != nil {
		return err
	}

	m := &models.DocumentSubmission{
		ID:                  sub.ID,
		OwnerID:             sub.OwnerID,
		Category:            string(sub.Category),
		AddressProofVariant: sub.AddressProofVariant,
		DocumentIDs:         string(idsJSON),
		SubmittedAt:         sub.SubmittedAt,
		CreatedAt:           time.Now(),
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *SubmissionRepositoryImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.DocumentSubmission, error) {
	var ms []models.DocumentSubmission
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("submitted_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	subs := make([]*entities.DocumentSubmission, 0, len(ms))
	for _, m := range ms {
		var ids []uuid.UUID
		if err := json.Unmarshal([]byte(m.DocumentIDs), &ids); err != nil {
			return nil, err
		}
		subs = append(subs, &entities.DocumentSubmission{
			ID:                  m.ID,
			OwnerID:             m.OwnerID,
			Category:            entities.DocumentCategory(m.Category),
			AddressProofVariant: m.AddressProofVariant,
			DocumentIDs:         ids,
			SubmittedAt:         m.SubmittedAt,
		})
	}
	return subs, nil
}
