package services

// ServiceContainer bundles all service facades for injection into the
// handler layer.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Transaction TransactionSvcFacade
	Entry       EntrySvcFacade
	Payment     PaymentSvcFacade
	User        UserSvcFacade
	Token       TokenSvcFacade
}
