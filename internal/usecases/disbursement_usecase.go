package usecases

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"loanflow.backend/internal/domain/entities"
	"loanflow.backend/internal/domain/errors"
	domainRepos "loanflow.backend/internal/domain/repositories"
	"loanflow.backend/pkg/logger"
)

// DisbursementUsecase owns the mutable readiness state of every
// pending disbursement case and enforces the one-way pending→completed
// transition. One coordinator drives one case at a time; there is no
// optimistic versioning at this layer.
type DisbursementUsecase struct {
	repo         domainRepos.DisbursementRepository
	uow          domainRepos.UnitOfWork
	verification VerificationFlow
	notifier     CompletionNotifier
	validate     *validator.Validate
}

func NewDisbursementUsecase(
	repo domainRepos.DisbursementRepository,
	uow domainRepos.UnitOfWork,
	verification VerificationFlow,
	notifier CompletionNotifier,
) *DisbursementUsecase {
	return &DisbursementUsecase{
		repo:         repo,
		uow:          uow,
		verification: verification,
		notifier:     notifier,
		validate:     validator.New(),
	}
}

// CreateCaseInput is the intake payload. Requested amount is immutable
// after intake and drives the dual-reviewer verification threshold.
type CreateCaseInput struct {
	LeadID           string                    `validate:"required"`
	LeadName         string                    `validate:"required"`
	SalesExecutive   string                    `validate:"required"`
	BankName         string                    `validate:"required"`
	DisbursementType entities.DisbursementType `validate:"required,oneof=New Part"`
	RequestedAmount  int64                     `validate:"required,gt=0"`
}

// CreateCase registers a new pending case. A lead id that already
// exists in either collection is rejected.
func (uc *DisbursementUsecase) CreateCase(ctx context.Context, input CreateCaseInput) (*entities.DisbursementCase, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, errors.BadRequest(err.Error())
	}

	if _, err := uc.repo.GetPending(ctx, input.LeadID); err == nil {
		return nil, errors.Conflict("lead already has a pending case")
	}
	if _, err := uc.repo.GetCompleted(ctx, input.LeadID); err == nil {
		return nil, errors.Conflict("lead already has a completed disbursement")
	}

	c := &entities.DisbursementCase{
		LeadID:           input.LeadID,
		LeadName:         input.LeadName,
		SalesExecutive:   input.SalesExecutive,
		BankName:         input.BankName,
		DisbursementType: input.DisbursementType,
		RequestedAmount:  input.RequestedAmount,
		PendingDocs:      []string{},
	}
	if err := uc.repo.CreatePending(ctx, c); err != nil {
		return nil, errors.InternalError(err)
	}

	logger.Info(ctx, "disbursement case created",
		zap.String("leadId", c.LeadID),
		zap.Int64("requestedAmount", c.RequestedAmount))
	return uc.repo.GetPending(ctx, c.LeadID)
}

// GetCase returns one pending case.
func (uc *DisbursementUsecase) GetCase(ctx context.Context, leadID string) (*entities.DisbursementCase, error) {
	return uc.repo.GetPending(ctx, leadID)
}

// ToggleFlag sets one named boolean on one case. Flags carry no
// cross-field invariants; the single side effect is that flipping
// verificationInitiate on signals the external verification flow.
// Flipping it back off resets it without touching other flags.
func (uc *DisbursementUsecase) ToggleFlag(ctx context.Context, leadID string, flag entities.ReadinessFlag, value bool) (*entities.DisbursementCase, error) {
	if !entities.ValidReadinessFlag(flag) {
		return nil, errors.ErrUnknownReadinessFlag
	}

	c, err := uc.repo.GetPending(ctx, leadID)
	if err != nil {
		return nil, err
	}

	setFlag(c, flag, value)
	if err := uc.repo.UpdatePending(ctx, c); err != nil {
		return nil, err
	}

	if flag == entities.FlagVerificationInitiate && value {
		// Fire-and-forget: the tracker never blocks on the flow, and a
		// failure to signal must not roll the toggle back.
		if err := uc.verification.Initiate(ctx, c.LeadID, c.RequestedAmount); err != nil {
			logger.Warn(ctx, "verification flow signal failed",
				zap.String("leadId", c.LeadID),
				zap.Error(err))
		}
	}

	return c, nil
}

// SetPendingDocs replaces the bank-side outstanding-document list. An
// empty list is a valid terminal state ("resolved").
func (uc *DisbursementUsecase) SetPendingDocs(ctx context.Context, leadID string, docs []string) (*entities.DisbursementCase, error) {
	c, err := uc.repo.GetPending(ctx, leadID)
	if err != nil {
		return nil, err
	}

	deduped := make([]string, 0, len(docs))
	seen := make(map[string]struct{}, len(docs))
	for _, d := range docs {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		deduped = append(deduped, d)
	}

	c.PendingDocs = deduped
	if err := uc.repo.UpdatePending(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetScheduleField sets one of the independent case dates.
func (uc *DisbursementUsecase) SetScheduleField(ctx context.Context, leadID string, field entities.ScheduleField, date time.Time) (*entities.DisbursementCase, error) {
	c, err := uc.repo.GetPending(ctx, leadID)
	if err != nil {
		return nil, err
	}

	switch field {
	case entities.FieldPostSanctionDate:
		c.PostSanctionDate = null.TimeFrom(date)
	case entities.FieldAppointmentDate:
		c.AppointmentDate = null.TimeFrom(date)
	case entities.FieldDocumentationDate:
		c.DocumentationDate = null.TimeFrom(date)
	default:
		return nil, errors.ErrUnknownScheduleField
	}

	if err := uc.repo.UpdatePending(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetAppointmentTime books one of the fixed appointment slots.
func (uc *DisbursementUsecase) SetAppointmentTime(ctx context.Context, leadID string, slot string) (*entities.DisbursementCase, error) {
	if !entities.ValidAppointmentSlot(slot) {
		return nil, errors.ErrInvalidAppointmentSlot
	}

	c, err := uc.repo.GetPending(ctx, leadID)
	if err != nil {
		return nil, err
	}

	c.AppointmentTime = null.StringFrom(slot)
	if err := uc.repo.UpdatePending(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetMonetaryField sets one of the operator-entered free-text amounts.
// No numeric validation happens here; if any is wanted it belongs to a
// collaborator consulted before finalize.
func (uc *DisbursementUsecase) SetMonetaryField(ctx context.Context, leadID string, field entities.MonetaryField, value string) (*entities.DisbursementCase, error) {
	c, err := uc.repo.GetPending(ctx, leadID)
	if err != nil {
		return nil, err
	}

	switch field {
	case entities.FieldSanctionAmt:
		c.SanctionAmt = null.StringFrom(value)
	case entities.FieldDisbursementDone:
		c.DisbursementDone = null.StringFrom(value)
	case entities.FieldUTR:
		c.UTR = null.StringFrom(value)
	default:
		return nil, errors.ErrUnknownMonetaryField
	}

	if err := uc.repo.UpdatePending(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Finalize is the single irreversible transition: the case leaves the
// pending collection and a narrowed completed record is created, both
// inside one transaction. The readiness flags are discarded, so the
// caller must have echoed every field back to the operator and
// obtained explicit acknowledgement before calling this; no automated
// completeness gate blocks it.
func (uc *DisbursementUsecase) Finalize(ctx context.Context, leadID string) (*entities.CompletedDisbursement, error) {
	var rec *entities.CompletedDisbursement

	err := uc.uow.Do(ctx, func(txCtx context.Context) error {
		c, err := uc.repo.GetPending(txCtx, leadID)
		if err != nil {
			return err
		}

		rec = &entities.CompletedDisbursement{
			LeadID:         c.LeadID,
			LeadName:       c.LeadName,
			SalesExecutive: c.SalesExecutive,
			BankName:       c.BankName,
			Status:         entities.CompletedStatus,
			PaymentAmount:  c.DisbursementDone,
			UTR:            c.UTR,
			CompletedAt:    time.Now(),
		}

		if err := uc.repo.DeletePending(txCtx, leadID); err != nil {
			return err
		}
		return uc.repo.CreateCompleted(txCtx, rec)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "disbursement case finalized", zap.String("leadId", leadID))

	if uc.notifier != nil {
		if err := uc.notifier.DisbursementCompleted(ctx, rec.LeadID, rec.LeadName, rec.PaymentAmount.String); err != nil {
			logger.Warn(ctx, "completion notification failed",
				zap.String("leadId", rec.LeadID),
				zap.Error(err))
		}
	}
	return rec, nil
}

// ListPending filters the pending collection by substring over lead
// name, lead id and bank name. Results reflect the latest toggles.
func (uc *DisbursementUsecase) ListPending(ctx context.Context, query string) ([]*entities.DisbursementCase, error) {
	return uc.repo.ListPending(ctx, domainRepos.CaseFilter{Query: query})
}

// ListCompleted filters the completed collection the same way.
func (uc *DisbursementUsecase) ListCompleted(ctx context.Context, query string) ([]*entities.CompletedDisbursement, error) {
	return uc.repo.ListCompleted(ctx, domainRepos.CaseFilter{Query: query})
}

func setFlag(c *entities.DisbursementCase, f entities.ReadinessFlag, v bool) {
	switch f {
	case entities.FlagHardCopy:
		c.HardCopy = v
	case entities.FlagVerificationInitiate:
		c.VerificationInitiate = v
	case entities.FlagScan:
		c.Scan = v
	case entities.FlagRaas:
		c.Raas = v
	case entities.FlagRlms:
		c.Rlms = v
	case entities.FlagCod:
		c.Cod = v
	case entities.FlagPoAssigned:
		c.PoAssigned = v
	case entities.FlagIncome:
		c.Income = v
	case entities.FlagLnt:
		c.Lnt = v
	case entities.FlagAppointmentFixed:
		c.AppointmentFixed = v
	case entities.FlagDocumentation:
		c.Documentation = v
	}
}
