package service

import (
	"context"
	"fmt"

	"github.com/dicerhq/dicer-admin/internal/logger"
	"github.com/dicerhq/dicer-admin/internal/store"
	"github.com/dicerhq/dicer-admin/models"
)

// auditService is the concrete implementation of AuditService. It is a thin
// read-only facade over the usage ledger.
type auditService struct {
	ledgerRepository store.LedgerRepository
	logger           *logger.Logger
}

// NewAuditService constructs an AuditService over the given ledger.
func NewAuditService(ledgerRepository store.LedgerRepository, logger *logger.Logger) AuditService {
	return &auditService{
		ledgerRepository: ledgerRepository,
		logger:           logger,
	}
}

// ListBleUsage returns ledger rows matching the filter, most recently updated
// first.
func (s *auditService) ListBleUsage(ctx context.Context, filter models.BleUsageFilter) ([]models.BleUsage, error) {
	log := logger.FromContext(ctx)

	usages, err := s.ledgerRepository.ListBleUsage(ctx, filter)
	if err != nil {
		log.Err(err).Msg("ble usage listing failed")
		return nil, fmt.Errorf("ble usage listing failed: %w", err)
	}

	return usages, nil
}

// ListLoginHistory returns history entries matching the filter, newest first.
func (s *auditService) ListLoginHistory(ctx context.Context, filter models.LoginHistoryFilter) ([]models.LoginHistory, error) {
	log := logger.FromContext(ctx)

	entries, err := s.ledgerRepository.ListLoginHistory(ctx, filter)
	if err != nil {
		log.Err(err).Msg("login history listing failed")
		return nil, fmt.Errorf("login history listing failed: %w", err)
	}

	return entries, nil
}

// ListDeviceBindings returns one row per registered device across all
// accounts.
func (s *auditService) ListDeviceBindings(ctx context.Context) ([]models.DeviceBinding, error) {
	log := logger.FromContext(ctx)

	bindings, err := s.ledgerRepository.ListDeviceBindings(ctx)
	if err != nil {
		log.Err(err).Msg("device binding listing failed")
		return nil, fmt.Errorf("device binding listing failed: %w", err)
	}

	return bindings, nil
}
