// Package authz is the capability table consulted by every mutating
// operation before it runs. It is a stateless predicate over (role, action);
// identity comes in explicitly with the actor, never from ambient state.
package authz

import (
	"github.com/yuanzhi/finledger/internal/apperrors"
	"github.com/yuanzhi/finledger/internal/core/domain"
)

// Action names a gated operation.
type Action string

const (
	ActionCreateAccount     Action = "account:create"
	ActionUpdateAccount     Action = "account:update"
	ActionDeleteAccount     Action = "account:delete"
	ActionCreateTransaction Action = "transaction:create"
	ActionDeleteTransaction Action = "transaction:delete"
	ActionCreateEntry       Action = "entry:create"
	ActionSubmitEntry       Action = "entry:submit"
	ActionReviewEntry       Action = "entry:review"
	ActionApprovePayment    Action = "payment:approve"
	ActionRejectPayment     Action = "payment:reject"
	ActionCompletePayment   Action = "payment:complete"
)

// permissions maps each gated action to the roles allowed to perform it.
var permissions = map[Action][]domain.Role{
	ActionCreateAccount:     {domain.RoleManager},
	ActionUpdateAccount:     {domain.RoleManager},
	ActionDeleteAccount:     {domain.RoleManager},
	ActionCreateTransaction: {domain.RoleAccountant},
	ActionDeleteTransaction: {domain.RoleAccountant},
	ActionCreateEntry:       {domain.RoleAccountant},
	ActionSubmitEntry:       {domain.RoleAccountant},
	ActionReviewEntry:       {domain.RoleManager},
	ActionApprovePayment:    {domain.RoleManager, domain.RoleBoss},
	ActionRejectPayment:     {domain.RoleManager, domain.RoleBoss},
	ActionCompletePayment:   {domain.RoleBoss},
}

// Allows reports whether role may perform action.
func Allows(role domain.Role, action Action) bool {
	for _, r := range permissions[action] {
		if r == role {
			return true
		}
	}
	return false
}

// Authorize returns a ForbiddenError when role may not perform action.
func Authorize(role domain.Role, action Action) error {
	if !Allows(role, action) {
		return apperrors.NewForbiddenError(string(role), string(action))
	}
	return nil
}
