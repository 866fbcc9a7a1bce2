// Package errs provides standardized error types for the marketplace backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the common failure classes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ObjectNotFoundError: a referenced object cannot be found
//   - ConflictError: an operation lost to the current state of another actor
//   - ExternalServiceError: a collaborator outside the process reported failure
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Operation boundaries (HTTP handlers) classify failures with errors.Is against
// the sentinels and translate them into the JSON failure envelope.
package errs
