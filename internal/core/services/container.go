package services

import (
	portsrepo "github.com/yuanzhi/finledger/internal/core/ports/repositories"
	portssvc "github.com/yuanzhi/finledger/internal/core/ports/services"
	"github.com/yuanzhi/finledger/pkg/config"
)

// NewServiceContainer wires all services over the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.Account),
		Transaction: NewTransactionService(repos.Transaction),
		Entry:       NewEntryService(repos.Entry, repos.Transaction),
		Payment:     NewPaymentService(repos.Payment),
		User:        NewUserService(repos.User),
		Token:       NewTokenService(cfg),
	}
}
