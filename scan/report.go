package scan

import (
	"errors"

	"github.com/google/uuid"

	"github.com/syssam/modelgraph"
)

// Failure is one recovered probe or extraction error. The scan never
// aborts on a failing method; it records the failure and moves on.
type Failure struct {
	Entity  string `json:"entity"`
	Method  string `json:"method"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
	Err     error  `json:"-"`
}

// Report accompanies every scan result.
type Report struct {
	// ScanID uniquely identifies this scan run in logs and reporters.
	ScanID string `json:"scanId"`
	// FromCache is true when the graph was restored from a cached
	// snapshot and no probing happened.
	FromCache bool `json:"fromCache"`
	// Failures lists the methods that could not be probed or extracted,
	// in the order they were encountered.
	Failures []Failure `json:"failures,omitempty"`
}

func newReport() *Report {
	return &Report{ScanID: uuid.NewString()}
}

// record appends a failure and forwards it to the reporter, if any.
func (r *Report) record(rep Reporter, entity, method string, err error) {
	f := Failure{Entity: entity, Method: method, Message: err.Error(), Err: err}
	var ue *modelgraph.UnresolvedRelatedTypeError
	if errors.As(err, &ue) {
		f.Hint = ue.Hint()
	}
	r.Failures = append(r.Failures, f)
	if rep != nil {
		rep.Report(f)
	}
}

// Reporter observes failures as they happen, before the final Report is
// assembled. Useful for streaming diagnostics to a log.
type Reporter interface {
	Report(Failure)
}

// ReporterFunc adapts an ordinary function to a Reporter.
type ReporterFunc func(Failure)

// Report calls f(failure).
func (f ReporterFunc) Report(failure Failure) { f(failure) }
