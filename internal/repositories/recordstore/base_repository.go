package recordstore

import (
	portsrepo "github.com/SscSPs/pto_ledger_service/internal/core/ports/repositories"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Store portsrepo.RecordStore
}
