package domain

import apperrors "github.com/vishalnayak-hash/Quadratic-Funding/internal/platform/errors"

var (
	// ErrProjectNameEmpty indicates a missing project name.
	ErrProjectNameEmpty = apperrors.New(apperrors.CodeProjectNameEmpty, "project name is required")
	// ErrProjectDescriptionEmpty indicates a missing project description.
	ErrProjectDescriptionEmpty = apperrors.New(apperrors.CodeProjectDescriptionEmpty, "project description is required")
	// ErrProjectNotFound indicates a project id outside the assigned range.
	ErrProjectNotFound = apperrors.New(apperrors.CodeProjectNotFound, "project not found")
	// ErrProjectSettled indicates an operation on a project that has already been settled.
	ErrProjectSettled = apperrors.New(apperrors.CodeProjectSettled, "project has been settled")
	// ErrAddressEmpty indicates a missing caller or contributor address.
	ErrAddressEmpty = apperrors.New(apperrors.CodeAddressEmpty, "address is required")
	// ErrContributionAmountInvalid indicates a zero contribution amount.
	ErrContributionAmountInvalid = apperrors.New(apperrors.CodeContributionAmountInvalid, "contribution amount must be positive")
	// ErrPoolAmountInvalid indicates a zero pool funding amount.
	ErrPoolAmountInvalid = apperrors.New(apperrors.CodePoolAmountInvalid, "pool amount must be positive")
	// ErrPoolEmpty indicates a distribution attempt against an empty matching pool.
	ErrPoolEmpty = apperrors.New(apperrors.CodePoolEmpty, "matching pool is empty")
	// ErrPoolInsufficient indicates the pool cannot cover the computed match.
	ErrPoolInsufficient = apperrors.New(apperrors.CodePoolInsufficient, "matching pool cannot cover the computed match")
	// ErrNotAdmin indicates a non-admin caller on an admin-only operation.
	ErrNotAdmin = apperrors.New(apperrors.CodeNotAdmin, "caller is not the ledger admin")
	// ErrArithmeticOverflow indicates a score or match computation that exceeded 64 bits.
	ErrArithmeticOverflow = apperrors.New(apperrors.CodeArithmeticOverflow, "arithmetic overflow in match computation")
)
