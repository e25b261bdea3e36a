// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Project errors
	CodeProjectNameEmpty        Code = "PROJECT_NAME_EMPTY"
	CodeProjectDescriptionEmpty Code = "PROJECT_DESCRIPTION_EMPTY"
	CodeProjectNotFound         Code = "PROJECT_NOT_FOUND"
	CodeProjectSettled          Code = "PROJECT_SETTLED"

	// Contribution errors
	CodeAddressEmpty              Code = "ADDRESS_EMPTY"
	CodeContributionAmountInvalid Code = "CONTRIBUTION_AMOUNT_INVALID"

	// Matching pool errors
	CodePoolAmountInvalid Code = "POOL_AMOUNT_INVALID"
	CodePoolEmpty         Code = "POOL_EMPTY"
	CodePoolInsufficient  Code = "POOL_INSUFFICIENT"

	// Access control errors
	CodeNotAdmin Code = "NOT_ADMIN"

	// Arithmetic errors
	CodeArithmeticOverflow Code = "ARITHMETIC_OVERFLOW"

	// Settlement errors
	CodePayoutFailed   Code = "PAYOUT_FAILED"
	CodeStorageFailure Code = "STORAGE_FAILURE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeProjectNameEmpty,
		CodeProjectDescriptionEmpty,
		CodeAddressEmpty,
		CodeContributionAmountInvalid,
		CodePoolAmountInvalid:
		return codes.InvalidArgument

	// NotFound - resource doesn't exist
	case CodeProjectNotFound:
		return codes.NotFound

	// PermissionDenied - caller lacks the admin capability
	case CodeNotAdmin:
		return codes.PermissionDenied

	// FailedPrecondition - ledger state doesn't allow the operation
	case CodeProjectSettled,
		CodePoolEmpty,
		CodePoolInsufficient:
		return codes.FailedPrecondition

	// Aborted - settlement rolled back after a payout failure
	case CodePayoutFailed:
		return codes.Aborted

	// Internal - arithmetic or persistence faults
	case CodeArithmeticOverflow,
		CodeStorageFailure:
		return codes.Internal

	default:
		return codes.Unknown
	}
}
