package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Registration RegistrationSvcFacade
	Auth         AuthSvcFacade
	OTP          OTPSvcFacade
	Token        TokenSvcFacade
	Product      ProductSvcFacade
	Order        OrderSvcFacade
	Admin        AdminSvcFacade
	Profile      ProfileSvcFacade
	Analytics    AnalyticsSvcFacade
	Files        FileSvcFacade
}
