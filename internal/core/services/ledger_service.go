package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/pto_ledger_service/internal/apperrors"
	"github.com/SscSPs/pto_ledger_service/internal/core/domain"
	"github.com/SscSPs/pto_ledger_service/internal/core/ports/events"
	portsrepo "github.com/SscSPs/pto_ledger_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pto_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/pto_ledger_service/internal/dto"
	"github.com/SscSPs/pto_ledger_service/internal/platform/locking"
	"github.com/SscSPs/pto_ledger_service/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

const (
	DefaultLedgerActor     = "PTO Ledger Automation"
	DefaultConflictRetries = 3
	maxExportTransactions  = 10000
	exportPageSize         = 100
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	balanceRepo     portsrepo.BalanceRepositoryFacade
	txnRepo         portsrepo.TransactionRepositoryFacade
	locker          locking.Locker
	publisher       events.Publisher
	actor           string
	conflictRetries int
	now             func() time.Time
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLocker sets the lock that serialises mutations of one employee's balance
func WithLocker(locker locking.Locker) LedgerServiceOption {
	return func(s *ledgerService) {
		if locker != nil {
			s.locker = locker
		}
	}
}

// WithPublisher sets where ledger events go. Without one, events are not published.
func WithPublisher(publisher events.Publisher) LedgerServiceOption {
	return func(s *ledgerService) {
		s.publisher = publisher
	}
}

// WithActor sets the default Created By attribution
func WithActor(actor string) LedgerServiceOption {
	return func(s *ledgerService) {
		if actor != "" {
			s.actor = actor
		}
	}
}

// WithConflictRetries sets how many times a balance update is attempted when the
// stored balance changed between the read and the conditional write
func WithConflictRetries(attempts int) LedgerServiceOption {
	return func(s *ledgerService) {
		if attempts > 0 {
			s.conflictRetries = attempts
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(balanceRepo portsrepo.BalanceRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		BaseService:     newBaseService(),
		balanceRepo:     balanceRepo,
		txnRepo:         txnRepo,
		locker:          locking.NewLocalLocker(),
		actor:           DefaultLedgerActor,
		conflictRetries: DefaultConflictRetries,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *ledgerService) ApplyDeduction(ctx context.Context, req dto.ApplyDeductionRequest) (*domain.LedgerUpdateResult, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}
	return s.apply(ctx, req.ToMutation())
}

func (s *ledgerService) ApplyCredit(ctx context.Context, req dto.ApplyCreditRequest) (*domain.LedgerUpdateResult, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}
	return s.apply(ctx, req.ToMutation())
}

func (s *ledgerService) ApplyAdjustment(ctx context.Context, req dto.ApplyAdjustmentRequest) (*domain.LedgerUpdateResult, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}
	return s.apply(ctx, req.ToMutation())
}

// apply runs one balance mutation under the employee's lock: lookup, floor, conditional
// write, audit append. The balance write is never rolled back.
func (s *ledgerService) apply(ctx context.Context, m dto.LedgerMutation) (*domain.LedgerUpdateResult, error) {
	delta, err := accounting.SignedDelta(m.TransactionType, m.Days)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if delta.IsZero() {
		return nil, fmt.Errorf("%w: days changed must not be zero", apperrors.ErrValidation)
	}

	lease, err := s.locker.Lock(ctx, locking.BalanceKey(m.EmployeeID))
	if err != nil {
		s.LogError(ctx, err, "Failed to lock employee balance", slog.String("employee_id", m.EmployeeID))
		return nil, err
	}
	defer lease.Unlock()

	balance, before, after, err := s.writeBalance(ctx, lease, m.EmployeeID, delta)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	result := &domain.LedgerUpdateResult{
		EmployeeID:      m.EmployeeID,
		BalanceRecordID: balance.RecordID,
		TransactionType: m.TransactionType,
		PreviousBalance: before,
		DaysChanged:     delta,
		NewBalance:      after,
		RequestID:       m.RequestID,
		UpdateDate:      now,
		Status:          domain.StatusPartial,
	}

	reason := m.Reason
	if reason == "" {
		reason = accounting.DefaultReason(m.TransactionType, m.Days)
	}
	actor := m.Actor
	if actor == "" {
		actor = s.actor
	}

	txn, err := s.txnRepo.RecordTransaction(ctx, domain.Transaction{
		EmployeeID:       m.EmployeeID,
		TransactionType:  m.TransactionType,
		DaysChanged:      delta,
		BalanceBefore:    before,
		BalanceAfter:     after,
		TransactionDate:  time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		RelatedRequestID: m.RequestID,
		Reason:           reason,
		AuditFields:      domain.AuditFields{CreatedBy: actor},
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrPersistence) {
			err = fmt.Errorf("%w: %w", apperrors.ErrPersistence, err)
		}
		s.LogError(ctx, err, "Balance updated but audit transaction was not recorded",
			slog.String("employee_id", m.EmployeeID),
			slog.String("balance_record_id", balance.RecordID),
			slog.String("balance_before", before.String()),
			slog.String("balance_after", after.String()),
			slog.String("days_changed", delta.String()))
		s.publish(ctx, events.AuditWriteFailed, result, err)
		return result, fmt.Errorf("%w: balance record %s changed from %s to %s without an audit entry: %w",
			apperrors.ErrPartialWrite, balance.RecordID, before, after, err)
	}

	result.TransactionID = txn.TransactionID
	result.Status = domain.StatusApplied
	s.LogInfo(ctx, "Balance updated",
		slog.String("employee_id", m.EmployeeID),
		slog.String("transaction_type", string(m.TransactionType)),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("balance_before", before.String()),
		slog.String("balance_after", after.String()))
	s.publish(ctx, events.BalanceUpdated, result, nil)
	return result, nil
}

// writeBalance reads the current balance and writes the floored new value conditionally,
// re-reading when another writer got there first. The lease is refreshed before every write
// so a lock that expired during a slow read never guards a write.
func (s *ledgerService) writeBalance(ctx context.Context, lease locking.Lease, employeeID string, delta decimal.Decimal) (*domain.BalanceRecord, decimal.Decimal, decimal.Decimal, error) {
	for attempt := 1; ; attempt++ {
		balance, err := s.balanceRepo.FindCurrentBalance(ctx, employeeID)
		if err != nil {
			return nil, decimal.Zero, decimal.Zero, err
		}

		before := balance.CurrentBalance
		after := accounting.ApplyDelta(before, delta)

		if err := lease.Refresh(ctx); err != nil {
			s.LogError(ctx, err, "Lost balance lock before writing", slog.String("employee_id", employeeID))
			return nil, decimal.Zero, decimal.Zero, err
		}
		_, err = s.balanceRepo.UpdateBalance(ctx, balance.RecordID, before, after)
		if err == nil {
			return balance, before, after, nil
		}
		if errors.Is(err, apperrors.ErrConflict) {
			if attempt < s.conflictRetries {
				s.LogDebug(ctx, "Balance changed concurrently, re-reading",
					slog.String("employee_id", employeeID),
					slog.Int("attempt", attempt))
				continue
			}
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("balance of employee %s kept changing after %d attempts: %w", employeeID, attempt, err)
		}
		if errors.Is(err, apperrors.ErrPersistence) ||
			errors.Is(err, apperrors.ErrStoreUnavailable) ||
			errors.Is(err, apperrors.ErrNotFound) ||
			errors.Is(err, apperrors.ErrValidation) {
			return nil, decimal.Zero, decimal.Zero, err
		}
		return nil, decimal.Zero, decimal.Zero, fmt.Errorf("%w: failed to update balance record %s: %w", apperrors.ErrPersistence, balance.RecordID, err)
	}
}

func (s *ledgerService) publish(ctx context.Context, eventType events.EventType, result *domain.LedgerUpdateResult, cause error) {
	if s.publisher == nil {
		return
	}
	event := events.LedgerEvent{
		Type:       eventType,
		EmployeeID: result.EmployeeID,
		OccurredAt: result.UpdateDate,
		Payload:    dto.ToLedgerUpdateResponse(result),
	}
	if cause != nil {
		event.Error = cause.Error()
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish ledger event",
			slog.String("event_type", string(eventType)),
			slog.String("employee_id", result.EmployeeID))
	}
}

func (s *ledgerService) GetCurrentBalance(ctx context.Context, employeeID string) (*domain.BalanceRecord, error) {
	return s.balanceRepo.FindCurrentBalance(ctx, employeeID)
}

func (s *ledgerService) ListTransactions(ctx context.Context, employeeID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employee ID is required", apperrors.ErrValidation)
	}
	if params.Limit <= 0 {
		params.Limit = 20
	}
	if err := s.Validate(params); err != nil {
		return nil, err
	}

	txns, nextToken, err := s.txnRepo.ListTransactionsByEmployee(ctx, employeeID, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("employee_id", employeeID))
		return nil, err
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

func (s *ledgerService) ExportTransactions(ctx context.Context, employeeID string) ([]domain.Transaction, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employee ID is required", apperrors.ErrValidation)
	}

	all := make([]domain.Transaction, 0)
	var token *string
	for {
		page, next, err := s.txnRepo.ListTransactionsByEmployee(ctx, employeeID, exportPageSize, token)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if next == nil || len(all) >= maxExportTransactions {
			break
		}
		token = next
	}
	if len(all) > maxExportTransactions {
		all = all[:maxExportTransactions]
	}
	return all, nil
}
