package statusflow

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingActor is returned by operations that require a human actor (manual
// deposit confirmation, reopen) when called without one.
var ErrMissingActor = errors.New("operation requires an acting user")

// InvalidTransitionError means the requested edge is not in the transition table
// and no exception applies. Allowed carries the legal targets for the caller's
// authority so HTTP layers can return them.
type InvalidTransitionError struct {
	EntityType string
	From       string
	To         string
	Allowed    []string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition %s -> %s (allowed: %s)",
		e.EntityType, e.From, e.To, strings.Join(e.Allowed, ", "))
}

// RequiresAdminError means the edge itself is valid but the caller lacks admin
// authority. Kept distinct from InvalidTransitionError so UIs can explain why the
// call failed rather than just that it failed.
type RequiresAdminError struct {
	EntityType string
	From       string
	To         string
}

func (e *RequiresAdminError) Error() string {
	return fmt.Sprintf("%s transition %s -> %s requires admin authority",
		e.EntityType, e.From, e.To)
}

// InvalidStateError means a precondition narrower than the transition table failed,
// e.g. deposit confirmation on a quote that is not accepted.
type InvalidStateError struct {
	EntityType string
	EntityID   string
	Status     string
	Required   string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %s is %s, operation requires %s",
		e.EntityType, e.EntityID, e.Status, e.Required)
}
