package modelgraph

import (
	"errors"
	"fmt"
	"regexp"
)

// unresolvedRelated matches failure messages that reference a related model
// which could not be resolved. Relation builders raise this wording when
// their target is missing; matching on it is a best-effort diagnostic, not
// a guaranteed classification.
var unresolvedRelated = regexp.MustCompile(`was not found`)

// DiscoveryError reports a catalog entry that could not be turned into a
// scannable model. It is recovered locally: the entry is skipped and the
// scan proceeds.
type DiscoveryError struct {
	Name string // best-effort identity of the rejected entry
	Err  error
}

// Error returns the error string.
func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("modelgraph: discovering %s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *DiscoveryError) Unwrap() error { return e.Err }

// IsDiscoveryError returns true if the error is a DiscoveryError.
func IsDiscoveryError(err error) bool {
	if err == nil {
		return false
	}
	var e *DiscoveryError
	return errors.As(err, &e)
}

// ProbeError reports a candidate method whose invocation failed. It is
// recovered locally: the method is skipped and probing continues with the
// entity's remaining methods.
type ProbeError struct {
	Entity string // pkg-qualified model identity
	Method string // probed method name
	Err    error
}

// Error returns the error string.
func (e *ProbeError) Error() string {
	return fmt.Sprintf("modelgraph: probing %s.%s: %v", e.Entity, e.Method, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProbeError) Unwrap() error { return e.Err }

// IsProbeError returns true if the error is a ProbeError, including its
// UnresolvedRelatedTypeError sub-kind.
func IsProbeError(err error) bool {
	if err == nil {
		return false
	}
	var pe *ProbeError
	var ue *UnresolvedRelatedTypeError
	return errors.As(err, &pe) || errors.As(err, &ue)
}

// UnresolvedRelatedTypeError is a ProbeError whose failure message points
// at a related model that could not be resolved, which usually means the
// relation's target configuration is malformed.
type UnresolvedRelatedTypeError struct {
	ProbeError
}

// Hint returns a human-oriented diagnostic for the failure.
func (e *UnresolvedRelatedTypeError) Hint() string {
	return "the relation points to a model that is not registered; check the related model configuration"
}

// IsUnresolvedRelatedType returns true if the error is an
// UnresolvedRelatedTypeError.
func IsUnresolvedRelatedType(err error) bool {
	if err == nil {
		return false
	}
	var e *UnresolvedRelatedTypeError
	return errors.As(err, &e)
}

// NewProbeError returns a probe failure for the given entity and method.
// Failures whose message references an unresolvable related model are
// promoted to UnresolvedRelatedTypeError.
func NewProbeError(entity, method string, err error) error {
	pe := ProbeError{Entity: entity, Method: method, Err: err}
	if err != nil && unresolvedRelated.MatchString(err.Error()) {
		return &UnresolvedRelatedTypeError{ProbeError: pe}
	}
	return &pe
}

// ExtractionError reports a confirmed relation whose metadata could not be
// read. It aborts that single edge only; the entity's other relations and
// the scan itself continue.
type ExtractionError struct {
	Entity   string // pkg-qualified model identity
	Relation string // relation (method) name
	Err      error
}

// Error returns the error string.
func (e *ExtractionError) Error() string {
	return fmt.Sprintf("modelgraph: extracting %s.%s: %v", e.Entity, e.Relation, e.Err)
}

// Unwrap returns the underlying error.
func (e *ExtractionError) Unwrap() error { return e.Err }

// IsExtractionError returns true if the error is an ExtractionError.
func IsExtractionError(err error) bool {
	if err == nil {
		return false
	}
	var e *ExtractionError
	return errors.As(err, &e)
}
