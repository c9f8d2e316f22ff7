package services_test

import (
	"context"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	"github.com/SscSPs/pto_ledger_service/internal/core/ports/events"
	portsrepo "github.com/SscSPs/pto_ledger_service/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock BalanceRepository ---
type MockBalanceRepository struct {
	mock.Mock
}

var _ portsrepo.BalanceRepositoryFacade = (*MockBalanceRepository)(nil)

func (m *MockBalanceRepository) FindCurrentBalance(ctx context.Context, employeeID string) (*domain.BalanceRecord, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceRecord), args.Error(1)
}

func (m *MockBalanceRepository) UpdateBalance(ctx context.Context, recordID string, expected, newBalance decimal.Decimal) (*domain.BalanceRecord, error) {
	args := m.Called(ctx, recordID, expected, newBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceRecord), args.Error(1)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) RecordTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByEmployee(ctx context.Context, employeeID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, employeeID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

// --- Mock PTORequestRepository ---
type MockPTORequestRepository struct {
	mock.Mock
}

var _ portsrepo.PTORequestReader = (*MockPTORequestRepository)(nil)

func (m *MockPTORequestRepository) FindSubmittedRequests(ctx context.Context, requestType *domain.RequestType, limit int) ([]domain.PTORequest, error) {
	args := m.Called(ctx, requestType, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PTORequest), args.Error(1)
}

// --- Mock ApprovalRepository ---
type MockApprovalRepository struct {
	mock.Mock
}

var _ portsrepo.ApprovalRepositoryFacade = (*MockApprovalRepository)(nil)

func (m *MockApprovalRepository) FindDecidedApprovals(ctx context.Context, status *domain.ApprovalStatus, limit int) ([]domain.ApprovalDecision, error) {
	args := m.Called(ctx, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalDecision), args.Error(1)
}

func (m *MockApprovalRepository) SaveApproval(ctx context.Context, approval domain.Approval) (*domain.Approval, error) {
	args := m.Called(ctx, approval)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Approval), args.Error(1)
}

// --- Mock NotificationRepository ---
type MockNotificationRepository struct {
	mock.Mock
}

var _ portsrepo.NotificationWriter = (*MockNotificationRepository)(nil)

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) (*domain.Notification, error) {
	args := m.Called(ctx, notification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

// --- Mock Publisher ---
type MockPublisher struct {
	mock.Mock
}

var _ events.Publisher = (*MockPublisher)(nil)

func (m *MockPublisher) Publish(ctx context.Context, event events.LedgerEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}

// decEq matches a decimal argument by numeric value.
func decEq(value string) interface{} {
	want := decimal.RequireFromString(value)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}
