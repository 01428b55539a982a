package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller's role does not permit the requested action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict indicates that the request conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict with current state")

// ErrUnbalanced indicates that an entry's debits and credits do not balance.
var ErrUnbalanced = errors.New("entry debits and credits do not balance")

// NotFoundError reports a missing entity by type and id.
// It matches ErrNotFound under errors.Is.
type NotFoundError struct {
	EntityType string
	ID         string
}

func NewNotFoundError(entityType, id string) error {
	return &NotFoundError{EntityType: entityType, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.EntityType, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DuplicateCodeError reports an account code collision.
// It matches ErrDuplicate under errors.Is.
type DuplicateCodeError struct {
	Code string
}

func NewDuplicateCodeError(code string) error {
	return &DuplicateCodeError{Code: code}
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("account code %s already exists", e.Code)
}

func (e *DuplicateCodeError) Is(target error) bool { return target == ErrDuplicate }

// HasChildrenError reports an account deletion blocked by child accounts.
// It matches ErrConflict under errors.Is.
type HasChildrenError struct {
	AccountID string
}

func NewHasChildrenError(accountID string) error {
	return &HasChildrenError{AccountID: accountID}
}

func (e *HasChildrenError) Error() string {
	return fmt.Sprintf("account %s has child accounts and cannot be deleted", e.AccountID)
}

func (e *HasChildrenError) Is(target error) bool { return target == ErrConflict }

// UnbalancedEntryError reports the exact debit and credit totals of a
// rejected entry. It matches ErrUnbalanced under errors.Is.
type UnbalancedEntryError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

func NewUnbalancedEntryError(totalDebit, totalCredit decimal.Decimal) error {
	return &UnbalancedEntryError{TotalDebit: totalDebit, TotalCredit: totalCredit}
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("entry is unbalanced: total debit %s, total credit %s",
		e.TotalDebit.String(), e.TotalCredit.String())
}

func (e *UnbalancedEntryError) Is(target error) bool { return target == ErrUnbalanced }

// ForbiddenError reports an authorization denial for a role/action pair.
// It matches ErrForbidden under errors.Is.
type ForbiddenError struct {
	Role   string
	Action string
}

func NewForbiddenError(role, action string) error {
	return &ForbiddenError{Role: role, Action: action}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("role %s is not allowed to %s", e.Role, e.Action)
}

func (e *ForbiddenError) Is(target error) bool { return target == ErrForbidden }

// ValidationError reports malformed input for a single field.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
