package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	MerchantHandler    *MerchantHandler
	TransactionHandler *TransactionHandler
	WebhookHandler     *WebhookHandler
}
