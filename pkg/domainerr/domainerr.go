// Package domainerr defines the closed set of domain-level failures produced
// by infrastructure collaborators (repositories, gateways) and consumed
// where validation results surface to callers.
//
// Like the value-level failures in pkg/valueobject, these are values, never
// panics: operations return them through ordinary error results, and callers
// type-switch over the closed set to decide control flow. Field-level
// validation problems never appear here; they stay inside their value
// objects.
package domainerr

import "fmt"

// Failure is the closed set of domain-level errors. The unexported marker
// method keeps the set closed so consumers can type-switch exhaustively.
type Failure interface {
	error

	domainFailure()
}

// NetworkError reports an unreachable or failed remote dependency.
type NetworkError struct{}

func (NetworkError) Error() string  { return "could not reach the server, please check your connection" }
func (NetworkError) domainFailure() {}

// Unexpected wraps an error nobody planned for. The message is diagnostic,
// not user-facing.
type Unexpected struct {
	Message string
}

func (f Unexpected) Error() string  { return fmt.Sprintf("unexpected error: %s", f.Message) }
func (f Unexpected) domainFailure() {}

// FromErr adapts an arbitrary error into the domain set: a nil error passes
// through as nil, an existing Failure is preserved, and anything else
// becomes Unexpected.
func FromErr(err error) Failure {
	if err == nil {
		return nil
	}
	if f, ok := err.(Failure); ok {
		return f
	}
	return Unexpected{Message: err.Error()}
}
