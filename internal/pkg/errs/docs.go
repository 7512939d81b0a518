// Package errs provides standardized error types for the mango shop service.
// Domain constructors, pricing lookups and repositories return these types so
// that the HTTP adapter can classify failures without string matching.
//
// The package includes:
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value breaks a business rule
//   - ValueIsOutOfRangeError: a value lies outside an allowed range
//   - ObjectNotFoundError: a lookup by identifier found nothing
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Callers classify with errors.Is against the sentinels:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return ctx.JSON(http.StatusNotFound, ...)
//	}
package errs
