package services

import (
	"github.com/SscSPs/pto_ledger_service/internal/core/ports/events"
	portsrepo "github.com/SscSPs/pto_ledger_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pto_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/pto_ledger_service/internal/platform/config"
	"github.com/SscSPs/pto_ledger_service/internal/platform/locking"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, locker locking.Locker, publisher events.Publisher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger: NewLedgerService(
			repos.BalanceRepo,
			repos.TransactionRepo,
			WithLocker(locker),
			WithPublisher(publisher),
			WithActor(cfg.LedgerActor),
			WithConflictRetries(cfg.LedgerConflictRetries),
		),
		Poller:       NewPollerService(repos.RequestRepo, repos.ApprovalRepo),
		Approval:     NewApprovalService(repos.ApprovalRepo),
		Notification: NewNotificationService(repos.NotificationRepo),
		Health:       NewHealthService(repos.Store),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerSvcFacade       = (*ledgerService)(nil)
	_ portssvc.ChangePollerSvc       = (*pollerService)(nil)
	_ portssvc.ApprovalWriterSvc     = (*approvalService)(nil)
	_ portssvc.NotificationWriterSvc = (*notificationService)(nil)
	_ portssvc.HealthSvc             = (*healthService)(nil)
)
