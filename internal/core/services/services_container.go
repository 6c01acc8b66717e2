package services

import (
	portsrepo "github.com/budzetiranje/budget_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/budzetiranje/budget_tracking_app/internal/core/ports/services"
	"github.com/budzetiranje/budget_tracking_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The authorizer comes first; every resource service depends on it.
	container.Authorizer = NewAuthorizer()

	container.User = NewUserService(repos.UserRepo, repos.ReportingRepo, container.Authorizer, cfg)
	container.Token = NewTokenService(cfg, repos.UserRepo)
	container.Account = NewAccountService(repos.AccountRepo, container.Authorizer)
	container.Category = NewCategoryService(repos.CategoryRepo, container.Authorizer)
	container.Transaction = NewLedgerService(
		repos.TransactionRepo,
		repos.AccountRepo,
		repos.CategoryRepo,
		container.Authorizer,
	)
	container.Reporting = NewReportingService(repos.ReportingRepo, container.Authorizer)

	return container
}
