package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"loanflow.backend/internal/domain/entities"
	domainerrors "loanflow.backend/internal/domain/errors"
	domainRepos "loanflow.backend/internal/domain/repositories"
	"loanflow.backend/internal/infrastructure/models"
)

// DisbursementRepositoryImpl implements DisbursementRepository
type DisbursementRepositoryImpl struct {
	db *gorm.DB
}

func NewDisbursementRepository(db *gorm.DB) *DisbursementRepositoryImpl {
	return &DisbursementRepositoryImpl{db: db}
}

func (r *DisbursementRepositoryImpl) CreatePending(ctx context.Context, c *entities.DisbursementCase) error {
	m, err := r.toPendingModel(c)
	if err != nil {
		return err
	}
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *DisbursementRepositoryImpl) GetPending(ctx context.Context, leadID string) (*entities.DisbursementCase, error) {
	var m models.PendingDisbursement
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("lead_id = ?", leadID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCaseNotFound
		}
		return nil, err
	}
	return r.toPendingEntity(&m)
}

func (r *DisbursementRepositoryImpl) UpdatePending(ctx context.Context, c *entities.DisbursementCase) error {
	m, err := r.toPendingModel(c)
	if err != nil {
		return err
	}
	m.UpdatedAt = time.Now()

	res := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.PendingDisbursement{}).
		Where("lead_id = ?", c.LeadID).
		Select("*").
		Omit("lead_id", "created_at").
		Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrCaseNotFound
	}
	return nil
}

func (r *DisbursementRepositoryImpl) DeletePending(ctx context.Context, leadID string) error {
	res := GetDB(ctx, r.db).WithContext(ctx).Where("lead_id = ?", leadID).Delete(&models.PendingDisbursement{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrCaseNotFound
	}
	return nil
}

func (r *DisbursementRepositoryImpl) ListPending(ctx context.Context, filter domainRepos.CaseFilter) ([]*entities.DisbursementCase, error) {
	q := GetDB(ctx, r.db).WithContext(ctx).Model(&models.PendingDisbursement{})
	q = applyCaseFilter(q, filter)

	var ms []models.PendingDisbursement
	if err := q.Order("created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	cases := make([]*entities.DisbursementCase, 0, len(ms))
	for _, m := range ms {
		model := m
		c, err := r.toPendingEntity(&model)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func (r *DisbursementRepositoryImpl) CreateCompleted(ctx context.Context, rec *entities.CompletedDisbursement) error {
	m := &models.CompletedDisbursement{
		LeadID:         rec.LeadID,
		LeadName:       rec.LeadName,
		SalesExecutive: rec.SalesExecutive,
		BankName:       rec.BankName,
		Status:         rec.Status,
		PaymentAmount:  rec.PaymentAmount.Ptr(),
		Utr:            rec.UTR.Ptr(),
		CompletedAt:    rec.CompletedAt,
		CreatedAt:      time.Now(),
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func (r *DisbursementRepositoryImpl) GetCompleted(ctx context.Context, leadID string) (*entities.CompletedDisbursement, error) {
	var m models.CompletedDisbursement
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("lead_id = ?", leadID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCaseNotFound
		}
		return nil, err
	}
	return r.toCompletedEntity(&m), nil
}

func (r *DisbursementRepositoryImpl) ListCompleted(ctx context.Context, filter domainRepos.CaseFilter) ([]*entities.CompletedDisbursement, error) {
	q := GetDB(ctx, r.db).WithContext(ctx).Model(&models.CompletedDisbursement{})
	q = applyCaseFilter(q, filter)

	var ms []models.CompletedDisbursement
	if err := q.Order("completed_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	recs := make([]*entities.CompletedDisbursement, 0, len(ms))
	for _, m := range ms {
		model := m
		recs = append(recs, r.toCompletedEntity(&model))
	}
	return recs, nil
}

// ListAppointmentsOn matches on the calendar day (YYYY-MM-DD) of the
// appointment date.
func (r *DisbursementRepositoryImpl) ListAppointmentsOn(ctx context.Context, day string) ([]*entities.DisbursementCase, error) {
	start, err := time.Parse("2006-01-02", day)
	if err != nil {
		return nil, err
	}
	end := start.AddDate(0, 0, 1)

	var ms []models.PendingDisbursement
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("appointment_date >= ? AND appointment_date < ?", start, end).
		Order("appointment_time ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	cases := make([]*entities.DisbursementCase, 0, len(ms))
	for _, m := range ms {
		model := m
		c, err := r.toPendingEntity(&model)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func applyCaseFilter(q *gorm.DB, filter domainRepos.CaseFilter) *gorm.DB {
	if filter.Query == "" {
		return q
	}
	like := "%" + filter.Query + "%"
	return q.Where("lead_name LIKE ? OR lead_id LIKE ? OR bank_name LIKE ?", like, like, like)
}

func (r *DisbursementRepositoryImpl) toPendingModel(c *entities.DisbursementCase) (*models.PendingDisbursement, error) {
	docsJSON, err := json.Marshal(c.PendingDocs)
	if err != nil {
		return nil, err
	}

	return &models.PendingDisbursement{
		LeadID:           c.LeadID,
		LeadName:         c.LeadName,
		SalesExecutive:   c.SalesExecutive,
		BankName:         c.BankName,
		DisbursementType: string(c.DisbursementType),
		RequestedAmount:  c.RequestedAmount,

		HardCopy:             c.HardCopy,
		VerificationInitiate: c.VerificationInitiate,
		Scan:                 c.Scan,
		Raas:                 c.Raas,
		Rlms:                 c.Rlms,
		Cod:                  c.Cod,
		PoAssigned:           c.PoAssigned,
		Income:               c.Income,
		Lnt:                  c.Lnt,
		AppointmentFixed:     c.AppointmentFixed,
		Documentation:        c.Documentation,

		PendingDocs: string(docsJSON),

		PostSanctionDate:  c.PostSanctionDate.Ptr(),
		AppointmentDate:   c.AppointmentDate.Ptr(),
		AppointmentTime:   c.AppointmentTime.Ptr(),
		DocumentationDate: c.DocumentationDate.Ptr(),

		SanctionAmt:      c.SanctionAmt.Ptr(),
		DisbursementDone: c.DisbursementDone.Ptr(),
		Utr:              c.UTR.Ptr(),
	}, nil
}

func (r *DisbursementRepositoryImpl) toPendingEntity(m *models.PendingDisbursement) (*entities.DisbursementCase, error) {
	var docs []string
	if m.PendingDocs != "" {
		if err := json.Unmarshal([]byte(m.PendingDocs), &docs); err != nil {
			return nil, err
		}
	}

	return &entities.DisbursementCase{
		LeadID:           m.LeadID,
		LeadName:         m.LeadName,
		SalesExecutive:   m.SalesExecutive,
		BankName:         m.BankName,
		DisbursementType: entities.DisbursementType(m.DisbursementType),
		RequestedAmount:  m.RequestedAmount,

		HardCopy:             m.HardCopy,
		VerificationInitiate: m.VerificationInitiate,
		Scan:                 m.Scan,
		Raas:                 m.Raas,
		Rlms:                 m.Rlms,
		Cod:                  m.Cod,
		PoAssigned:           m.PoAssigned,
		Income:               m.Income,
		Lnt:                  m.Lnt,
		AppointmentFixed:     m.AppointmentFixed,
		Documentation:        m.Documentation,

		PendingDocs: docs,

		PostSanctionDate:  null.TimeFromPtr(m.PostSanctionDate),
		AppointmentDate:   null.TimeFromPtr(m.AppointmentDate),
		AppointmentTime:   null.StringFromPtr(m.AppointmentTime),
		DocumentationDate: null.TimeFromPtr(m.DocumentationDate),

		SanctionAmt:      null.StringFromPtr(m.SanctionAmt),
		DisbursementDone: null.StringFromPtr(m.DisbursementDone),
		UTR:              null.StringFromPtr(m.Utr),

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func (r *DisbursementRepositoryImpl) toCompletedEntity(m *models.CompletedDisbursement) *entities.CompletedDisbursement {
	return &entities.CompletedDisbursement{
		LeadID:         m.LeadID,
		LeadName:       m.LeadName,
		SalesExecutive: m.SalesExecutive,
		BankName:       m.BankName,
		Status:         m.Status,
		PaymentAmount:  null.StringFromPtr(m.PaymentAmount),
		UTR:            null.StringFromPtr(m.Utr),
		CompletedAt:    m.CompletedAt,
	}
}
