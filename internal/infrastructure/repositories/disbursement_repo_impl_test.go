package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"loanflow.backend/internal/domain/entities"
	domainerrors "loanflow.backend/internal/domain/errors"
	domainRepos "loanflow.backend/internal/domain/repositories"
)

func seedCase(t *testing.T, repo *DisbursementRepositoryImpl, leadID, leadName, bankName string) {
	t.Helper()
	require.NoError(t, repo.CreatePending(context.Background(), &entities.DisbursementCase{
		LeadID:           leadID,
		LeadName:         leadName,
		SalesExecutive:   "R. Iyer",
		BankName:         bankName,
		DisbursementType: entities.DisbursementNew,
		RequestedAmount:  4500000,
		PendingDocs:      []string{},
	}))
}

func TestDisbursementRepository_PendingRoundTrip(t *testing.T) {
	db := newTestDB(t)
	createDisbursementTables(t, db)
	repo := NewDisbursementRepository(db)
	ctx := context.Background()

	appt := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	c := &entities.DisbursementCase{
		LeadID:           "LD-1001",
		LeadName:         "Asha Mehta",
		SalesExecutive:   "R. Iyer",
		BankName:         "HDFC",
		DisbursementType: entities.DisbursementPart,
		RequestedAmount:  12500000,
		Scan:             true,
		Rlms:             true,
		PendingDocs:      []string{"ROV", "Legal", "26AS"},
		AppointmentDate:  null.TimeFrom(appt),
		AppointmentTime:  null.StringFrom("11:30 AM"),
		SanctionAmt:      null.StringFrom("1,25,00,000"),
	}
	require.NoError(t, repo.CreatePending(ctx, c))

	got, err := repo.GetPending(ctx, "LD-1001")
	require.NoError(t, err)
	assert.Equal(t, entities.DisbursementPart, got.DisbursementType)
	assert.Equal(t, int64(12500000), got.RequestedAmount)
	assert.True(t, got.Scan)
	assert.True(t, got.Rlms)
	assert.False(t, got.HardCopy)
	assert.Equal(t, []string{"ROV", "Legal", "26AS"}, got.PendingDocs, "pending docs keep their order")
	assert.Equal(t, "11:30 AM", got.AppointmentTime.String)
	assert.Equal(t, "1,25,00,000", got.SanctionAmt.String)
	assert.False(t, got.UTR.Valid)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestDisbursementRepository_GetPending_NotFound(t *testing.T) {
	db := newTestDB(t)
	createDisbursementTables(t, db)
	repo := NewDisbursementRepository(db)

	_, err := repo.GetPending(context.Background(), "LD-404")
	assert.ErrorIs(t, err, domainerrors.ErrCaseNotFound)
}

func TestDisbursementRepository_UpdatePending(t *testing.T) {
	db := newTestDB(t)
	createDisbursementTables(t, db)
	repo := NewDisbursementRepository(db)
	ctx := context.Background()

	seedCase(t, repo, "LD-1001", "Asha Mehta", "HDFC")

	c, err := repo.GetPending(ctx, "LD-1001")
	require.NoError(t, err)
	c.HardCopy = true
	c.PendingDocs = []string{"Technical"}
	c.UTR = null.StringFrom("UTR987")
	require.NoError(t, repo.UpdatePending(ctx, c))

	got, err := repo.GetPending(ctx, "LD-1001")
	require.NoError(t, err)
	assert.True(t, got.HardCopy)
	assert.Equal(t, []string{"Technical"}, got.PendingDocs)
	assert.Equal(t, "UTR987", got.UTR.String)

	// Clearing an optional back to null must stick.
	got.UTR = null.String{}
	require.NoError(t, repo.UpdatePending(ctx, got))
	again, err := repo.GetPending(ctx, "LD-1001")
	require.NoError(t, err)
	assert.False(t, again.UTR.Valid)

	missing := &entities.DisbursementCase{LeadID: "LD-404", PendingDocs: []string{}}
	assert.ErrorIs(t, repo.UpdatePending(ctx, missing), domainerrors.ErrCaseNotFound)
}

func TestDisbursementRepository_DeletePending(t *testing.T) {
	db := newTestDB(t)
	createDisbursementTables(t, db)
	repo := NewDisbursementRepository(db)
	ctx := context.Background()

	seedCase(t, repo, "LD-1001", "Asha Mehta", "HDFC")
	require.NoError(t, repo.DeletePending(ctx, "LD-1001"))
	assert.ErrorIs(t, repo.DeletePending(ctx, "LD-1001"), domainerrors.ErrCaseNotFound)
}

func TestDisbursementRepository_ListPending_Filter(t *testing.T) {
	db := newTestDB(t)
	createDisbursementTables(t, db)
	repo := NewDisbursementRepository(db)
	ctx := context.Background()

	seedCase(t, repo, "LD-1001", "Asha Mehta", "HDFC")
	seedCase(t, repo, "LD-1002", "Vikram Shah", "ICICI")
	seedCase(t, repo, "LD-2001", "Meera Pillai", "Axis")

	all, err := repo.ListPending(ctx, domainRepos.CaseFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byName, err := repo.ListPending(ctx, domainRepos.CaseFilter{Query: "Vikram"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "LD-1002", byName[0].LeadID)

	byLeadID, err := repo.ListPending(ctx, domainRepos.CaseFilter{Query: "LD-100"})
	require.NoError(t, err)
	assert.Len(t, byLeadID, 2)

	byBank, err := repo.ListPending(ctx, domainRepos.CaseFilter{Query: "Axis"})
	require.NoError(t, err)
	require.Len(t, byBank, 1)
	assert.Equal(t, "LD-2001", byBank[0].LeadID)

	none, err := repo.ListPending(ctx, domainRepos.CaseFilter{Query: "Kotak"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDisbursementRepository_CompletedRoundTrip(t *testing.T) {
	db := newTestDB(t)
	createDisbursementTables(t, db)
	repo := NewDisbursementRepository(db)
	ctx := context.Background()

	rec := &entities.CompletedDisbursement{
		LeadID:         "LD-1001",
		LeadName:       "Asha Mehta",
		SalesExecutive: "R. Iyer",
		BankName:       "HDFC",
		Status:         entities.CompletedStatus,
		PaymentAmount:  null.StringFrom("44,50,000"),
		UTR:            null.StringFrom("UTR123456"),
		CompletedAt:    time.Now(),
	}
	require.NoError(t, repo.CreateCompleted(ctx, rec))

	got, err := repo.GetCompleted(ctx, "LD-1001")
	require.NoError(t, err)
	assert.Equal(t, entities.CompletedStatus, got.Status)
	assert.Equal(t, "44,50,000", got.PaymentAmount.String)
	assert.Equal(t, "UTR123456", got.UTR.String)

	_, err = repo.GetCompleted(ctx, "LD-404")
	assert.ErrorIs(t, err, domainerrors.ErrCaseNotFound)
}

func TestDisbursementRepository_ListCompleted_FilterAndOrder(t *testing.T) {
	db := newTestDB(t)
	createDisbursementTables(t, db)
	repo := NewDisbursementRepository(db)
	ctx := context.Background()

	now := time.Now()
	for i, lead := range []struct{ id, name, bank string }{
		{"LD-1001", "Asha Mehta", "HDFC"},
		{"LD-1002", "Vikram Shah", "ICICI"},
	} {
		require.NoError(t, repo.CreateCompleted(ctx, &entities.CompletedDisbursement{
			LeadID:      lead.id,
			LeadName:    lead.name,
			BankName:    lead.bank,
			Status:      entities.CompletedStatus,
			CompletedAt: now.Add(time.Duration(i) * time.Minute),
		}))
	}

	recs, err := repo.ListCompleted(ctx, domainRepos.CaseFilter{})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "LD-1002", recs[0].LeadID, "latest completion first")

	filtered, err := repo.ListCompleted(ctx, domainRepos.CaseFilter{Query: "HDFC"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "LD-1001", filtered[0].LeadID)
}

func TestDisbursementRepository_ListAppointmentsOn(t *testing.T) {
	db := newTestDB(t)
	createDisbursementTables(t, db)
	repo := NewDisbursementRepository(db)
	ctx := context.Background()

	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		leadID string
		date   null.Time
		slot   null.String
	}{
		{"LD-1001", null.TimeFrom(day), null.StringFrom("02:30 PM")},
		{"LD-1002", null.TimeFrom(day), null.StringFrom("10:00 AM")},
		{"LD-1003", null.TimeFrom(day.AddDate(0, 0, 1)), null.StringFrom("10:00 AM")},
		{"LD-1004", null.Time{}, null.String{}},
	}
	for _, tc := range cases {
		require.NoError(t, repo.CreatePending(ctx, &entities.DisbursementCase{
			LeadID:           tc.leadID,
			LeadName:         "Lead " + tc.leadID,
			DisbursementType: entities.DisbursementNew,
			RequestedAmount:  1000000,
			PendingDocs:      []string{},
			AppointmentDate:  tc.date,
			AppointmentTime:  tc.slot,
		}))
	}

	got, err := repo.ListAppointmentsOn(ctx, "2026-09-14")
	require.NoError(t, err)
	require.Len(t, got, 2)
	leadIDs := []string{got[0].LeadID, got[1].LeadID}
	assert.ElementsMatch(t, []string{"LD-1001", "LD-1002"}, leadIDs)

	_, err = repo.ListAppointmentsOn(ctx, "14-09-2026")
	assert.Error(t, err)
}

func TestUnitOfWork_FinalizeMoveIsAtomic(t *testing.T) {
	db := newTestDB(t)
	createDisbursementTables(t, db)
	repo := NewDisbursementRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	seedCase(t, repo, "LD-1001", "Asha Mehta", "HDFC")

	// A failure after the delete must roll the whole move back.
	boom := errors.New("boom")
	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := repo.DeletePending(txCtx, "LD-1001"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	still, err := repo.GetPending(ctx, "LD-1001")
	require.NoError(t, err)
	assert.Equal(t, "Asha Mehta", still.LeadName)

	// The happy path moves the case in one transaction.
	err = uow.Do(ctx, func(txCtx context.Context) error {
		c, err := repo.GetPending(txCtx, "LD-1001")
		if err != nil {
			return err
		}
		if err := repo.DeletePending(txCtx, c.LeadID); err != nil {
			return err
		}
		return repo.CreateCompleted(txCtx, &entities.CompletedDisbursement{
			LeadID:      c.LeadID,
			LeadName:    c.LeadName,
			BankName:    c.BankName,
			Status:      entities.CompletedStatus,
			CompletedAt: time.Now(),
		})
	})
	require.NoError(t, err)

	_, err = repo.GetPending(ctx, "LD-1001")
	assert.ErrorIs(t, err, domainerrors.ErrCaseNotFound)
	rec, err := repo.GetCompleted(ctx, "LD-1001")
	require.NoError(t, err)
	assert.Equal(t, entities.CompletedStatus, rec.Status)
}
