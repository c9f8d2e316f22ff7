package recordstore

import (
	portsrepo "github.com/SscSPs/pto_ledger_service/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every repository on top of one record store.
func NewRepositoryProvider(store portsrepo.RecordStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Store:            store,
		BalanceRepo:      newBalanceRepository(store),
		TransactionRepo:  newTransactionRepository(store),
		RequestRepo:      newPTORequestRepository(store),
		ApprovalRepo:     newApprovalRepository(store),
		NotificationRepo: newNotificationRepository(store),
	}
}
