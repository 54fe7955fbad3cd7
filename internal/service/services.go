package service

import (
	"github.com/dicerhq/dicer-admin/internal/config"
	"github.com/dicerhq/dicer-admin/internal/logger"
	"github.com/dicerhq/dicer-admin/internal/store"
)

type Services struct {
	ActivationService ActivationService
	SessionService    SessionService
	AuditService      AuditService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		ActivationService: NewActivationService(storages.AccountRepository, storages.LedgerRepository, logger),
		SessionService:    NewSessionService(storages.AccountRepository, storages.LedgerRepository, cfg.Auth, logger),
		AuditService:      NewAuditService(storages.LedgerRepository, logger),
	}
}
