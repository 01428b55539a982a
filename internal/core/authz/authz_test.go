package authz_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yuanzhi/finledger/internal/apperrors"
	"github.com/yuanzhi/finledger/internal/core/authz"
	"github.com/yuanzhi/finledger/internal/core/domain"
)

func TestAllows(t *testing.T) {
	testCases := []struct {
		name    string
		role    domain.Role
		action  authz.Action
		allowed bool
	}{
		{"manager creates account", domain.RoleManager, authz.ActionCreateAccount, true},
		{"accountant cannot create account", domain.RoleAccountant, authz.ActionCreateAccount, false},
		{"boss cannot create account", domain.RoleBoss, authz.ActionCreateAccount, false},
		{"manager updates account", domain.RoleManager, authz.ActionUpdateAccount, true},
		{"manager deletes account", domain.RoleManager, authz.ActionDeleteAccount, true},
		{"accountant creates transaction", domain.RoleAccountant, authz.ActionCreateTransaction, true},
		{"manager cannot create transaction", domain.RoleManager, authz.ActionCreateTransaction, false},
		{"accountant deletes transaction", domain.RoleAccountant, authz.ActionDeleteTransaction, true},
		{"accountant creates entry", domain.RoleAccountant, authz.ActionCreateEntry, true},
		{"accountant submits entry", domain.RoleAccountant, authz.ActionSubmitEntry, true},
		{"manager cannot submit entry", domain.RoleManager, authz.ActionSubmitEntry, false},
		{"manager reviews entry", domain.RoleManager, authz.ActionReviewEntry, true},
		{"accountant cannot review entry", domain.RoleAccountant, authz.ActionReviewEntry, false},
		{"boss cannot review entry", domain.RoleBoss, authz.ActionReviewEntry, false},
		{"manager approves payment", domain.RoleManager, authz.ActionApprovePayment, true},
		{"boss approves payment", domain.RoleBoss, authz.ActionApprovePayment, true},
		{"accountant cannot approve payment", domain.RoleAccountant, authz.ActionApprovePayment, false},
		{"boss rejects payment", domain.RoleBoss, authz.ActionRejectPayment, true},
		{"boss completes payment", domain.RoleBoss, authz.ActionCompletePayment, true},
		{"manager cannot complete payment", domain.RoleManager, authz.ActionCompletePayment, false},
		{"unknown role denied everywhere", domain.Role("INTERN"), authz.ActionCreateEntry, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, authz.Allows(tc.role, tc.action))
		})
	}
}

func TestAuthorize(t *testing.T) {
	err := authz.Authorize(domain.RoleAccountant, authz.ActionCreateAccount)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))

	var forbiddenErr *apperrors.ForbiddenError
	assert.True(t, errors.As(err, &forbiddenErr))
	assert.Equal(t, string(domain.RoleAccountant), forbiddenErr.Role)
	assert.Equal(t, string(authz.ActionCreateAccount), forbiddenErr.Action)

	assert.NoError(t, authz.Authorize(domain.RoleManager, authz.ActionCreateAccount))
}
