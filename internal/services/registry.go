package services

// ServiceContainer groups the constructed services for handler wiring.
type ServiceContainer struct {
	MerchantService    MerchantService
	TransactionService TransactionService
	AuthService        AuthService
}
