package store

import "github.com/dicerhq/dicer-admin/internal/logger"

// Storages bundles every repository implementation behind their interfaces
// for injection into the service layer.
type Storages struct {
	AccountRepository AccountRepository
	LedgerRepository  LedgerRepository
}

// NewStorages wires all PostgreSQL-backed repositories onto the shared
// database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, log),
		LedgerRepository:  NewLedgerRepository(db, log),
	}
}
