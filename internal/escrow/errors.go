package escrow

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by the engine wraps exactly one of them.
var (
	ErrValidation         = errors.New("validation error")
	ErrStateConflict      = errors.New("state conflict")
	ErrVerificationFailed = errors.New("verification failed")
	ErrTransientInfra     = errors.New("transient infrastructure error")
)

var (
	ErrDuplicateStatus    = fmt.Errorf("%w: status already exists", ErrStateConflict)
	ErrConflictingStatus  = fmt.Errorf("%w: conflicting status exists", ErrStateConflict)
	ErrInvalidProgression = fmt.Errorf("%w: invalid status progression", ErrStateConflict)
	ErrUnexpectedStatus   = fmt.Errorf("%w: action not allowed in current status", ErrStateConflict)

	ErrPermissionDenied  = fmt.Errorf("%w: caller not permitted", ErrValidation)
	ErrOrderNotExpired   = fmt.Errorf("%w: order not expired", ErrValidation)
	ErrOrderNotFound     = fmt.Errorf("%w: order not found", ErrValidation)
	ErrInvalidTxID       = fmt.Errorf("%w: invalid txid", ErrValidation)
	ErrInvalidAppealType = fmt.Errorf("%w: invalid appeal type", ErrValidation)
	ErrInvalidAction     = fmt.Errorf("%w: invalid action", ErrValidation)
	ErrInvalidOrder      = fmt.Errorf("%w: invalid order", ErrValidation)

	ErrTxUnconfirmed    = fmt.Errorf("%w: transaction not confirmed", ErrTransientInfra)
	ErrTxIncomplete     = fmt.Errorf("%w: transaction has no inputs or outputs", ErrTransientInfra)
	ErrChainUnavailable = fmt.Errorf("%w: chain data unavailable", ErrTransientInfra)
	ErrGateway          = fmt.Errorf("%w: contract gateway failure", ErrTransientInfra)
	ErrStoreUnavailable = fmt.Errorf("%w: store failure", ErrTransientInfra)

	ErrInvalidTransaction = fmt.Errorf("%w: transaction does not satisfy contract", ErrVerificationFailed)
	ErrContractNotSpender = fmt.Errorf("%w: contract address not found in tx inputs", ErrVerificationFailed)
)

// IsTransient reports whether the operation may succeed when retried unchanged.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransientInfra)
}
