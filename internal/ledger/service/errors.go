package service

import (
	"strconv"

	"github.com/vishalnayak-hash/Quadratic-Funding/internal/ledger/domain"
	apperrors "github.com/vishalnayak-hash/Quadratic-Funding/internal/platform/errors"
)

// errProjectNotFound carries the requested id so transports can render it.
func errProjectNotFound(id domain.ProjectID) *apperrors.Error {
	return apperrors.WithMetadata(apperrors.CodeProjectNotFound, "project not found",
		map[string]string{"project_id": strconv.FormatUint(uint64(id), 10)})
}

// errProjectSettled carries the project id of the settled project.
func errProjectSettled(id domain.ProjectID) *apperrors.Error {
	return apperrors.WithMetadata(apperrors.CodeProjectSettled, "project has been settled",
		map[string]string{"project_id": strconv.FormatUint(uint64(id), 10)})
}

// errPoolInsufficient carries the computed match that the pool cannot cover.
func errPoolInsufficient(matching uint64) *apperrors.Error {
	return apperrors.WithMetadata(apperrors.CodePoolInsufficient, "matching pool cannot cover the computed match",
		map[string]string{"matching_amount": strconv.FormatUint(matching, 10)})
}
