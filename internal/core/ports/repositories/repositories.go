package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// container. Note there is no raw transaction writer outside the facade: the
// ledger service is the only consumer of TransactionWriter.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	AccountRepo     AccountRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	ReportingRepo   ReportingRepository
}
