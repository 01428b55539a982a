package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service layer.
type RepositoryProvider struct {
	Account     AccountRepository
	Transaction TransactionRepository
	Entry       EntryRepository
	Payment     PaymentRepository
	User        UserRepository
}
