// Package service owns the business rules for project and person
// records: partial-update merging, pre-delete safety checks, and the
// finalisation guard. It depends only on the storage contracts, never
// on a concrete backend.
package service

// Result is the uniform outcome of every mutating operation. Expected
// failures (not found, already finalised, constraint violations) are
// reported here rather than through errors, so the presentation layer
// has a single channel to relay.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func succeeded(message string) Result {
	return Result{Success: true, Message: message}
}

func failed(message string) Result {
	return Result{Success: false, Message: message}
}
