package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yuanzhi/finledger/internal/core/domain"
)

func TestTransactionStatusTransitions(t *testing.T) {
	assert.True(t, domain.TransactionPending.CanTransitionTo(domain.TransactionPosted))
	assert.True(t, domain.TransactionPosted.CanTransitionTo(domain.TransactionPaid))

	// no skipping or moving backwards
	assert.False(t, domain.TransactionPending.CanTransitionTo(domain.TransactionPaid))
	assert.False(t, domain.TransactionPosted.CanTransitionTo(domain.TransactionPending))
	assert.False(t, domain.TransactionPaid.CanTransitionTo(domain.TransactionPosted))
	assert.False(t, domain.TransactionPaid.CanTransitionTo(domain.TransactionPending))

	// self-transitions are not moves
	assert.False(t, domain.TransactionPending.CanTransitionTo(domain.TransactionPending))
}

func TestEntryStatusTransitions(t *testing.T) {
	assert.True(t, domain.EntryDraft.CanTransitionTo(domain.EntrySubmitted))
	assert.True(t, domain.EntrySubmitted.CanTransitionTo(domain.EntryApproved))
	assert.True(t, domain.EntrySubmitted.CanTransitionTo(domain.EntryRejected))

	// a rejected entry may be resubmitted
	assert.True(t, domain.EntryRejected.CanTransitionTo(domain.EntrySubmitted))

	// approved is terminal
	assert.False(t, domain.EntryApproved.CanTransitionTo(domain.EntrySubmitted))
	assert.False(t, domain.EntryApproved.CanTransitionTo(domain.EntryRejected))

	assert.False(t, domain.EntryDraft.CanTransitionTo(domain.EntryApproved))
	assert.False(t, domain.EntryDraft.CanTransitionTo(domain.EntryRejected))
	assert.False(t, domain.EntryRejected.CanTransitionTo(domain.EntryApproved))
}

func TestPaymentStatusTransitions(t *testing.T) {
	assert.True(t, domain.PaymentPending.CanTransitionTo(domain.PaymentApproved))
	assert.True(t, domain.PaymentPending.CanTransitionTo(domain.PaymentRejected))

	// completion requires prior approval
	assert.True(t, domain.PaymentApproved.CanTransitionTo(domain.PaymentPaid))
	assert.False(t, domain.PaymentPending.CanTransitionTo(domain.PaymentPaid))

	// rejected and paid are terminal
	assert.False(t, domain.PaymentRejected.CanTransitionTo(domain.PaymentApproved))
	assert.False(t, domain.PaymentRejected.CanTransitionTo(domain.PaymentPaid))
	assert.False(t, domain.PaymentPaid.CanTransitionTo(domain.PaymentApproved))
	assert.False(t, domain.PaymentPaid.CanTransitionTo(domain.PaymentPending))
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, domain.TransactionPending.Valid())
	assert.True(t, domain.TransactionPaid.Valid())
	assert.False(t, domain.TransactionStatus("CANCELLED").Valid())

	assert.True(t, domain.EntryDraft.Valid())
	assert.False(t, domain.EntryStatus("ARCHIVED").Valid())
}

func TestRoleValidity(t *testing.T) {
	assert.True(t, domain.RoleAccountant.Valid())
	assert.True(t, domain.RoleManager.Valid())
	assert.True(t, domain.RoleBoss.Valid())
	assert.False(t, domain.Role("ADMIN").Valid())
	assert.False(t, domain.Role("").Valid())
}

func TestAccountCategoryValidity(t *testing.T) {
	for _, c := range []domain.AccountCategory{domain.Asset, domain.Liability, domain.Equity, domain.Revenue, domain.Expense} {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, domain.AccountCategory("CONTRA").Valid())
}
