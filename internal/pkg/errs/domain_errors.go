package errs

import "errors"

// Shared sentinel errors for the client workflows. Handlers map these onto
// HTTP responses; workflows mark lower-level failures with them.
var (
	// Auth errors: bad credentials, surfaced as a blocking message.
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNoSession            = errors.New("no active session")

	// Business-rule rejections: surfaced as warnings, workflow state unchanged.
	ErrSelfActionDenied = errors.New("action denied on own resource")

	// Transient transport failures: retryable, no state mutation.
	ErrNetwork = errors.New("backend unreachable")

	// Client-side form checks: block submission, no backend call is made.
	ErrValidation = errors.New("validation failed")

	// Backend said the resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// Marketplace errors
	ErrDuplicateSaleOffer = errors.New("bike already has an active sale offer")
	ErrNoPendingPurchase  = errors.New("no purchase awaiting payment")

	// Rental errors
	ErrNoPendingPayment = errors.New("no rental awaiting payment")
)
