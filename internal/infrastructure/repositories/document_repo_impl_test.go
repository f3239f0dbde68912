package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"loanflow.backend/internal/domain/entities"
	domainerrors "loanflow.backend/internal/domain/errors"
)

func TestDocumentRepository_Upsert_LatestWins(t *testing.T) {
	db := newTestDB(t)
	createUploadedDocumentTable(t, db)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	first := &entities.UploadedDocument{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		DocType:    "passport",
		FileName:   "passport-v1.pdf",
		StorageRef: "refs/passport-v1",
		UploadedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Upsert(ctx, first))

	second := &entities.UploadedDocument{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		DocType:    "passport",
		FileName:   "passport-v2.pdf",
		StorageRef: "refs/passport-v2",
		UploadedAt: time.Now(),
	}
	require.NoError(t, repo.Upsert(ctx, second))

	docs, err := repo.ListByOwner(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, docs, 1, "second upload must supersede, not duplicate")
	assert.Equal(t, second.ID, docs[0].ID)
	assert.Equal(t, "passport-v2.pdf", docs[0].FileName)
	assert.Equal(t, "refs/passport-v2", docs[0].StorageRef)
}

func TestDocumentRepository_Upsert_DistinctDocTypesCoexist(t *testing.T) {
	db := newTestDB(t)
	createUploadedDocumentTable(t, db)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	for i, dt := range []string{"passport", "panCard", "form16"} {
		require.NoError(t, repo.Upsert(ctx, &entities.UploadedDocument{
			ID:         uuid.New(),
			OwnerID:    ownerID,
			DocType:    dt,
			StorageRef: "refs/" + dt,
			UploadedAt: time.Now().Add(time.Duration(i) * time.Minute),
		}))
	}

	docs, err := repo.ListByOwner(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "passport", docs[0].DocType, "listing is ordered by upload time")
	assert.Equal(t, "form16", docs[2].DocType)
}

func TestDocumentRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	createUploadedDocumentTable(t, db)
	repo := NewDocumentRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDocumentRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	createUploadedDocumentTable(t, db)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	doc := &entities.UploadedDocument{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		DocType:    "passport",
		StorageRef: "refs/passport",
		UploadedAt: time.Now(),
	}
	require.NoError(t, repo.Upsert(ctx, doc))
	require.NoError(t, repo.Delete(ctx, doc.ID))

	assert.ErrorIs(t, repo.Delete(ctx, doc.ID), domainerrors.ErrNotFound)
}

func TestSubmissionRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	createDocumentSubmissionTable(t, db)
	repo := NewSubmissionRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	older := &entities.DocumentSubmission{
		ID:                  uuid.New(),
		OwnerID:             ownerID,
		Category:            entities.CategoryEmployeeBuilderPurchase,
		AddressProofVariant: "lightBill",
		DocumentIDs:         ids,
		SubmittedAt:         time.Now().Add(-time.Hour),
	}
	newer := &entities.DocumentSubmission{
		ID:                  uuid.New(),
		OwnerID:             ownerID,
		Category:            entities.CategoryBusinessBuilderResale,
		AddressProofVariant: "rationCard",
		DocumentIDs:         ids[:1],
		SubmittedAt:         time.Now(),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	subs, err := repo.ListByOwner(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, newer.ID, subs[0].ID, "latest first")
	assert.Equal(t, ids, subs[1].DocumentIDs, "document ids survive the round trip in order")
	assert.Equal(t, entities.CategoryEmployeeBuilderPurchase, subs[1].Category)
}
