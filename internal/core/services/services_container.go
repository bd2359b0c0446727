package services

import (
	portsrepo "github.com/SscSPs/transaction_insights_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/transaction_insights_api/internal/core/ports/services"
	"github.com/SscSPs/transaction_insights_api/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(
		repos.UserRepo,
		repos.CustomerRepo,
		WithAdminRegistration(cfg.AllowAdminRegistration),
	)
	container.Token = NewTokenService(cfg)
	container.Spending = NewSpendingService(repos.CustomerRepo, repos.TransactionRepo, repos.SpendingRepo)
	container.Ingestion = NewIngestionService(repos.CustomerRepo, repos.TransactionRepo)

	return container
}
