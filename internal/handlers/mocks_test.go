package handlers_test

import (
	"context"

	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	portssvc "github.com/SscSPs/pto_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/pto_ledger_service/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetCurrentBalance(ctx context.Context, employeeID string) (*domain.BalanceRecord, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceRecord), args.Error(1)
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, employeeID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, employeeID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockLedgerService) ExportTransactions(ctx context.Context, employeeID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) ApplyDeduction(ctx context.Context, req dto.ApplyDeductionRequest) (*domain.LedgerUpdateResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerUpdateResult), args.Error(1)
}

func (m *MockLedgerService) ApplyCredit(ctx context.Context, req dto.ApplyCreditRequest) (*domain.LedgerUpdateResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerUpdateResult), args.Error(1)
}

func (m *MockLedgerService) ApplyAdjustment(ctx context.Context, req dto.ApplyAdjustmentRequest) (*domain.LedgerUpdateResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerUpdateResult), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock PollerService ---
type MockPollerService struct {
	mock.Mock
}

func (m *MockPollerService) ListSubmittedRequests(ctx context.Context, params dto.PollRequestsParams) ([]domain.PTORequest, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PTORequest), args.Error(1)
}

func (m *MockPollerService) ListApprovalDecisions(ctx context.Context, params dto.PollApprovalsParams) ([]domain.ApprovalDecision, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalDecision), args.Error(1)
}

var _ portssvc.ChangePollerSvc = (*MockPollerService)(nil)

// --- Mock ApprovalService ---
type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) CreateApproval(ctx context.Context, req dto.CreateApprovalRequest) (*domain.Approval, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Approval), args.Error(1)
}

var _ portssvc.ApprovalWriterSvc = (*MockApprovalService)(nil)

// --- Mock NotificationService ---
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) CreateNotification(ctx context.Context, req dto.CreateNotificationRequest) (*domain.Notification, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

var _ portssvc.NotificationWriterSvc = (*MockNotificationService)(nil)

// --- Mock HealthService ---
type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) Check(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portssvc.HealthSvc = (*MockHealthService)(nil)
