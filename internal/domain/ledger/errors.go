package ledger

import "rebate-ledger/internal/pkg/errs"

var (
	ErrMissingStore      = errs.NewValidation("store is required")
	ErrMissingItem       = errs.NewValidation("item is required")
	ErrNegativeSavings   = errs.NewValidation("savings amount must be a non-negative number")
	ErrNegativeFee       = errs.NewValidation("fee amount must be a non-negative number")
	ErrFeeExceedsSavings = errs.NewValidation("fee cannot be greater than savings for this entry")
	ErrInvalidDate       = errs.NewValidation("date must be formatted as YYYY-MM-DD")
	ErrInvalidReceipt    = errs.NewValidation("receipt must be an encoded image reference")

	ErrEntryNotFound = errs.NewNotFound("entry not found")
)
