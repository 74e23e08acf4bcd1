package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotOwner is returned when the acting user does not currently own the product
	ErrNotOwner = errors.New("user is not the current owner of the product")

	// ErrNotRecipient is returned when someone other than the recipient resolves a transfer
	ErrNotRecipient = errors.New("user is not the recipient of the transfer")

	// ErrFieldNotEditable is returned when an owner mutates an attribute outside its capability set
	ErrFieldNotEditable = errors.New("field is not editable by the current owner")

	// ErrUnknownRecipient is returned when the transfer recipient does not exist
	ErrUnknownRecipient = errors.New("unknown recipient")

	// ErrProductNotFound is returned when a product is not found
	ErrProductNotFound = errors.New("product not found")

	// ErrTransferNotFound is returned when a transfer is not found
	ErrTransferNotFound = errors.New("transfer not found")

	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrNotificationNotFound is returned when a notification is not found for the user
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrUserAlreadyExists is returned when registering a duplicate username or email
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidTransferState is returned when a transfer is not in a state that allows the transition
	ErrInvalidTransferState = errors.New("invalid transfer state")

	// ErrTransferAlreadyPending is returned when a pending transfer already exists for the product and recipient
	ErrTransferAlreadyPending = errors.New("a pending transfer already exists for this product and recipient")

	// ErrChainIntegrity is matched by every ChainIntegrityError
	ErrChainIntegrity = errors.New("ownership chain integrity check failed")

	// ErrChainWrite is matched by every ChainWriteError
	ErrChainWrite = errors.New("failed to write ownership chain")

	// ErrInvalidInput is returned when a request fails validation
	ErrInvalidInput = errors.New("invalid input")
)

// ChainIntegrityError reports a product chain that failed verification.
// Writes to the chain are refused until it is repaired by an operator.
type ChainIntegrityError struct {
	ProductID  string
	Violations []ChainViolation
}

func (e *ChainIntegrityError) Error() string {
	if len(e.Violations) == 0 {
		return fmt.Sprintf("%s: product %s", ErrChainIntegrity, e.ProductID)
	}
	first := e.Violations[0]
	return fmt.Sprintf("%s: product %s has %d invalid block(s), first at block %d (%s)",
		ErrChainIntegrity, e.ProductID, len(e.Violations), first.BlockNumber, first.Reason)
}

func (e *ChainIntegrityError) Is(target error) bool {
	return target == ErrChainIntegrity
}

// ChainWriteError reports a transient failure to persist a chain mutation.
// The whole operation is safe to retry from scratch.
type ChainWriteError struct {
	ProductID   string
	BlockNumber int64
	Err         error
}

func (e *ChainWriteError) Error() string {
	if e.BlockNumber > 0 {
		return fmt.Sprintf("%s: product %s block %d: %v", ErrChainWrite, e.ProductID, e.BlockNumber, e.Err)
	}
	return fmt.Sprintf("%s: product %s: %v", ErrChainWrite, e.ProductID, e.Err)
}

func (e *ChainWriteError) Is(target error) bool {
	return target == ErrChainWrite
}

func (e *ChainWriteError) Unwrap() error {
	return e.Err
}

// InvalidInput wraps ErrInvalidInput with a human readable reason
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
