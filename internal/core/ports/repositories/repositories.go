package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	HistoryRepo   LoginHistoryRepositoryFacade
	OTPRepo       OTPRepositoryFacade
	ProductRepo   ProductRepositoryFacade
	OrderRepo     OrderRepositoryFacade
	ProfileRepo   ProfileRepositoryFacade
	AnalyticsRepo AnalyticsRepositoryFacade
	CleanupQueue  CleanupQueueRepository
}
