package repository

import "context"

// TransactionManager runs a unit of work against one database transaction.
// Session transitions and the events they emit are written through it so a
// state change is never persisted without its event row.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewZoneRepository() ZoneRepository
	NewVendorConfigRepository() VendorConfigRepository
	NewSessionRepository() SessionRepository
	NewEventLogRepository() EventLogRepository
	NewDeviceRepository() DeviceRepository
}
