package pgsql

import (
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool DBPool) portsrepo.RepositoryProvider {
	productRepo := &PgxProductRepository{BaseRepository{Pool: dbPool}}

	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		HistoryRepo:   newPgxLoginHistoryRepository(dbPool),
		OTPRepo:       newPgxOTPRepository(dbPool),
		ProductRepo:   productRepo,
		OrderRepo:     newPgxOrderRepository(dbPool),
		ProfileRepo:   newPgxProfileRepository(dbPool, productRepo),
		AnalyticsRepo: newPgxAnalyticsRepository(dbPool),
		CleanupQueue:  newPgxCleanupQueueRepository(dbPool),
	}
}
