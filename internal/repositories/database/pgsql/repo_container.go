package pgsql

import (
	portsrepo "github.com/yuanzhi/finledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all PostgreSQL repositories over a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	entryRepo := newPgxEntryRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		Account:     accountRepo,
		Transaction: transactionRepo,
		Entry:       entryRepo,
		Payment:     paymentRepo,
		User:        userRepo,
	}
}
