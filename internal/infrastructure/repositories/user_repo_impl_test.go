package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"loanflow.backend/internal/domain/entities"
	domainerrors "loanflow.backend/internal/domain/errors"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{
		ID:           uuid.New(),
		Email:        "coordinator@loanflow.local",
		Name:         "Asha Mehta",
		Role:         entities.RoleCoordinator,
		PasswordHash: "$2a$12$hash",
	}
	require.NoError(t, repo.Create(ctx, user))

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)
	assert.Equal(t, entities.RoleCoordinator, byID.Role)

	byEmail, err := repo.GetByEmail(ctx, "coordinator@loanflow.local")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@loanflow.local")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &entities.User{ID: uuid.New(), Email: "dup@loanflow.local", Name: "A", Role: entities.RoleCustomer, PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, first))

	second := &entities.User{ID: uuid.New(), Email: "dup@loanflow.local", Name: "B", Role: entities.RoleCustomer, PasswordHash: "h"}
	assert.Error(t, repo.Create(ctx, second))
}
