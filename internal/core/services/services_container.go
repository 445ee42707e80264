package services

import (
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/platform/config"
	"github.com/vinque/vinque_backend/internal/platform/metrics"
)

// Dependencies are the non-repository collaborators services need.
type Dependencies struct {
	Store    portsrepo.FileStore
	Mailer   portssvc.Mailer
	Attempts portssvc.AttemptLimiter
	Metrics  *metrics.FileMetrics
	Sweeper  Nudger
	// IDTokenValidator overrides Google's ID token validation. Nil uses idtoken.Validate.
	IDTokenValidator IDTokenValidator
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, deps Dependencies) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Every workflow that writes uploads shares one keeper so compensation
	// and sweeper nudges behave the same everywhere.
	files := newFileKeeper(deps.Store, repos.CleanupQueue, deps.Metrics, deps.Sweeper)

	container.Token = NewTokenService(cfg)
	google := NewGoogleOAuthService(cfg, deps.IDTokenValidator)

	container.Registration = NewRegistrationService(repos.AccountRepo, google, files, cfg.MaxPermitBytes)
	container.Auth = NewLoginService(repos.AccountRepo, repos.HistoryRepo, container.Token, google, deps.Attempts)
	container.OTP = NewOTPService(repos.OTPRepo, repos.AccountRepo, repos.HistoryRepo, deps.Mailer, container.Token, deps.Attempts, cfg.OTPTTL)

	container.Product = NewProductService(repos.ProductRepo, repos.ProfileRepo, files, ProductPolicy{
		MaxImageBytes:     cfg.MaxImageBytes,
		AllowImage1Delete: cfg.AllowImage1Delete,
	})
	container.Order = NewOrderService(repos.OrderRepo)
	container.Admin = NewAdminService(repos.AccountRepo, repos.HistoryRepo, repos.OrderRepo, cfg.HistoryRetention)
	container.Profile = NewProfileService(repos.ProfileRepo, files, cfg.MaxImageBytes)
	container.Analytics = NewAnalyticsService(repos.AnalyticsRepo)
	container.Files = NewFileService(deps.Store)

	return container
}
