/*
Package errors provides semantic error types for the in-memory entity store.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound          = errors.New("entity not found")
	    ErrDuplicateKey      = errors.New("duplicate key")
	    ErrUnsafeReset       = errors.New("unsafe key generator reset")
	    ErrInvalidInput      = errors.New("invalid input")
	    ErrUnknownEntityType = errors.New("unknown entity type")
	)

Usage:

	// A commit that reissues a tracked key fails loudly
	if err := store.Commit(); err != nil {
	    if errors.IsDuplicateKey(err) {
	        // a generator was reset while records still held its keys
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewDuplicateKeyError("Item", 1)
	err := errors.NewUnsafeResetError("Item", 2)
	err := errors.NewValidationError("key", "record already has a key")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
