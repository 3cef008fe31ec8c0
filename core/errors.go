package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrOperationForbidden operation forbidden
	ErrOperationForbidden ErrorCode = 100001
	// ErrReentrantCall nested call into a guarded engine operation
	ErrReentrantCall ErrorCode = 100002

	// ErrMustBeMoreThanZero amount parameter is zero
	ErrMustBeMoreThanZero ErrorCode = 100101
	// ErrLengthMismatch asset/feed lists differ in length
	ErrLengthMismatch ErrorCode = 100102
	// ErrNotAllowedToken asset is empty or not registered
	ErrNotAllowedToken ErrorCode = 100103
	// ErrTransferFailed asset transfer collaborator reported failure
	ErrTransferFailed ErrorCode = 100104
	// ErrMintFailed debt token mint reported failure
	ErrMintFailed ErrorCode = 100105
	// ErrInsufficientBalance ledger subtraction would go negative
	ErrInsufficientBalance ErrorCode = 100106
	// ErrAmountOverflow fixed point arithmetic overflowed
	ErrAmountOverflow ErrorCode = 100107

	// ErrHealthFactorTooLow post-operation solvency check failed
	ErrHealthFactorTooLow ErrorCode = 100201
	// ErrHealthFactorOkay liquidation attempted on a solvent account
	ErrHealthFactorOkay ErrorCode = 100202
	// ErrHealthFactorNotImproved liquidation did not improve target solvency
	ErrHealthFactorNotImproved ErrorCode = 100203

	// ErrStalePrice oracle reading older than its freshness window
	ErrStalePrice ErrorCode = 100301
	// ErrInvalidPrice oracle reported a non-positive price
	ErrInvalidPrice ErrorCode = 100302
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	switch e {
	case ErrReentrantCall:
		return "reentrant call"
	case ErrMustBeMoreThanZero:
		return "amount must be more than zero"
	case ErrLengthMismatch:
		return "asset and feed length mismatch"
	case ErrNotAllowedToken:
		return "token not allowed"
	case ErrTransferFailed:
		return "transfer failed"
	case ErrMintFailed:
		return "mint failed"
	case ErrInsufficientBalance:
		return "insufficient balance"
	case ErrAmountOverflow:
		return "amount overflow"
	case ErrHealthFactorTooLow:
		return "health factor too low"
	case ErrHealthFactorOkay:
		return "health factor okay"
	case ErrHealthFactorNotImproved:
		return "health factor not improved"
	case ErrStalePrice:
		return "stale price"
	case ErrInvalidPrice:
		return "invalid price"
	default:
		return e.String()
	}
}
