package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeProjectNameEmpty          = "PROJECT_NAME_EMPTY"
	CodeProjectDescriptionEmpty   = "PROJECT_DESCRIPTION_EMPTY"
	CodeProjectNotFound           = "PROJECT_NOT_FOUND"
	CodeProjectSettled            = "PROJECT_SETTLED"
	CodeAddressEmpty              = "ADDRESS_EMPTY"
	CodeContributionAmountInvalid = "CONTRIBUTION_AMOUNT_INVALID"
	CodePoolAmountInvalid         = "POOL_AMOUNT_INVALID"
	CodePoolEmpty                 = "POOL_EMPTY"
	CodePoolInsufficient          = "POOL_INSUFFICIENT"
	CodeNotAdmin                  = "NOT_ADMIN"
	CodeArithmeticOverflow        = "ARITHMETIC_OVERFLOW"
	CodePayoutFailed              = "PAYOUT_FAILED"
	CodeStorageFailure            = "STORAGE_FAILURE"
)

var messagesEnUS = map[Code]string{
	CodeProjectNameEmpty:          "Project name is required.",
	CodeProjectDescriptionEmpty:   "Project description is required.",
	CodeProjectNotFound:           "Project {{.project_id}} was not found.",
	CodeProjectSettled:            "Project {{.project_id}} has already been settled.",
	CodeAddressEmpty:              "An address is required.",
	CodeContributionAmountInvalid: "Contribution amount must be greater than zero.",
	CodePoolAmountInvalid:         "Matching pool amount must be greater than zero.",
	CodePoolEmpty:                 "The matching pool is empty.",
	CodePoolInsufficient:          "The matching pool cannot cover the computed match of {{.matching_amount}}.",
	CodeNotAdmin:                  "Only the ledger admin may perform this operation.",
	CodeArithmeticOverflow:        "The calculation exceeded the supported numeric range.",
	CodePayoutFailed:              "The payout to the project creator failed; no funds were moved.",
	CodeStorageFailure:            "The ledger could not persist the operation.",
}
