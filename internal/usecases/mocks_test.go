package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"loanflow.backend/internal/domain/entities"
	domainrepos "loanflow.backend/internal/domain/repositories"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

// Mock DocumentRepository
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Upsert(ctx context.Context, doc *entities.UploadedDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.UploadedDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UploadedDocument), args.Error(1)
}

func (m *MockDocumentRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.UploadedDocument, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UploadedDocument), args.Error(1)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock SubmissionRepository
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, sub *entities.DocumentSubmission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubmissionRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.DocumentSubmission, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.DocumentSubmission), args.Error(1)
}

// Mock DisbursementRepository
type MockDisbursementRepository struct {
	mock.Mock
}

func (m *MockDisbursementRepository) CreatePending(ctx context.Context, c *entities.DisbursementCase) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockDisbursementRepository) GetPending(ctx context.Context, leadID string) (*entities.DisbursementCase, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DisbursementCase), args.Error(1)
}

func (m *MockDisbursementRepository) UpdatePending(ctx context.Context, c *entities.DisbursementCase) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockDisbursementRepository) DeletePending(ctx context.Context, leadID string) error {
	args := m.Called(ctx, leadID)
	return args.Error(0)
}

func (m *MockDisbursementRepository) ListPending(ctx context.Context, filter domainrepos.CaseFilter) ([]*entities.DisbursementCase, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.DisbursementCase), args.Error(1)
}

func (m *MockDisbursementRepository) CreateCompleted(ctx context.Context, rec *entities.CompletedDisbursement) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockDisbursementRepository) GetCompleted(ctx context.Context, leadID string) (*entities.CompletedDisbursement, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CompletedDisbursement), args.Error(1)
}

func (m *MockDisbursementRepository) ListCompleted(ctx context.Context, filter domainrepos.CaseFilter) ([]*entities.CompletedDisbursement, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.CompletedDisbursement), args.Error(1)
}

func (m *MockDisbursementRepository) ListAppointmentsOn(ctx context.Context, day string) ([]*entities.DisbursementCase, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.DisbursementCase), args.Error(1)
}

// Mock DocumentStorage
type MockDocumentStorage struct {
	mock.Mock
}

func (m *MockDocumentStorage) Put(ctx context.Context, ownerID uuid.UUID, docType string, data []byte) (string, error) {
	args := m.Called(ctx, ownerID, docType, data)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentStorage) URL(storageRef string) string {
	args := m.Called(storageRef)
	return args.String(0)
}

func (m *MockDocumentStorage) Delete(ctx context.Context, storageRef string) error {
	args := m.Called(ctx, storageRef)
	return args.Error(0)
}

// Mock VerificationFlow
type MockVerificationFlow struct {
	mock.Mock
}

func (m *MockVerificationFlow) Initiate(ctx context.Context, leadID string, requestedAmount int64) error {
	args := m.Called(ctx, leadID, requestedAmount)
	return args.Error(0)
}

// Mock CompletionNotifier
type MockCompletionNotifier struct {
	mock.Mock
}

func (m *MockCompletionNotifier) DisbursementCompleted(ctx context.Context, leadID, leadName, paymentAmount string) error {
	args := m.Called(ctx, leadID, leadName, paymentAmount)
	return args.Error(0)
}

// Mock ExportSink
type MockExportSink struct {
	mock.Mock
}

func (m *MockExportSink) Write(sheetName string, headers []string, rows [][]string) ([]byte, error) {
	args := m.Called(sheetName, headers, rows)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
