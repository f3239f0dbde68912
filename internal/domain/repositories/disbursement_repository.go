package repositories

import (
	"context"

	"loanflow.backend/internal/domain/entities"
)

// CaseFilter narrows a listing by substring match over lead name, lead
// id and bank name. Zero value matches everything.
type CaseFilter struct {
	Query string
}

// DisbursementRepository owns the pending collection of disbursement
// cases and the completed-record collection. A lead id exists in at
// most one of the two; the move between them happens inside a
// UnitOfWork transaction (see usecases).
type DisbursementRepository interface {
	CreatePending(ctx context.Context, c *entities.DisbursementCase) error
	GetPending(ctx context.Context, leadID string) (*entities.DisbursementCase, error)
	UpdatePending(ctx context.Context, c *entities.DisbursementCase) error
	DeletePending(ctx context.Context, leadID string) error
	ListPending(ctx context.Context, filter CaseFilter) ([]*entities.DisbursementCase, error)

	CreateCompleted(ctx context.Context, rec *entities.CompletedDisbursement) error
	GetCompleted(ctx context.Context, leadID string) (*entities.CompletedDisbursement, error)
	ListCompleted(ctx context.Context, filter CaseFilter) ([]*entities.CompletedDisbursement, error)

	// ListAppointmentsOn returns pending cases whose appointment date
	// falls on the given calendar day (reminder digest).
	ListAppointmentsOn(ctx context.Context, day string) ([]*entities.DisbursementCase, error)
}
