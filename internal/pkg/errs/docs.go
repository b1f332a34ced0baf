// Package errs provides standardized error types for the cargo booking application.
// Every error a use case can report to a presenter is built from this package, so
// presenters can classify failures without knowing which layer raised them.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value breaks a domain rule
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ValidationError: the validator rejected an object
//   - ObjectNotFoundError: a referenced object does not exist
//   - InvalidInputSpecificationError: an input is missing or malformed before
//     any domain object can be built
//   - PersistenceError: the storage layer failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works through wrapping
//
// KindOf maps any error chain onto one of the Kind values used by presenters.
package errs
