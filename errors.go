package swmming

import (
	"errors"
	"fmt"
)

// ErrNotImplemented marks constructs the .inp format recognizes but this
// package does not yet build.
var ErrNotImplemented = errors.New("not implemented")

// InvalidEntityError reports a construction-time validation failure,
// naming the entity kind, its name (when known) and the violated rule.
type InvalidEntityError struct {
	Kind string
	Name string
	Rule string
}

func (e *InvalidEntityError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("swmming: %s: %s", e.Kind, e.Rule)
	}
	return fmt.Sprintf("swmming: %s %q: %s", e.Kind, e.Name, e.Rule)
}

func invalid(kind, name, rule string) error {
	return &InvalidEntityError{Kind: kind, Name: name, Rule: rule}
}

func notImplemented(kind string) error {
	return fmt.Errorf("swmming: %s: %w", kind, ErrNotImplemented)
}
