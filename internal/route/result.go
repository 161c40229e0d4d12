package route

// NoIndex marks a validation error that cannot be attributed to a single
// waypoint slot.
const NoIndex = -1

// ValidationError describes one reason a request was rejected. Index
// localizes the fault to a waypoint slot, or is NoIndex for errors that are
// not positional (for example a count mismatch).
type ValidationError struct {
	Message string
	Index   int
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Message
}

// Result is the outcome of validating a request: either valid, or a
// non-empty list of errors in the order the checks produced them.
type Result struct {
	errs []ValidationError
}

// invalid creates a Result carrying the given errors.
func invalid(errs []ValidationError) Result {
	return Result{errs: errs}
}

// HasErrors reports whether the request was rejected.
func (r Result) HasErrors() bool {
	return len(r.errs) > 0
}

// Errors returns the validation errors in check execution order. The order
// reflects which check ran first, not severity.
func (r Result) Errors() []ValidationError {
	return r.errs
}
