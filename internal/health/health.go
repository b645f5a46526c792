// Package health aggregates named health-check units into a single
// report served at /health.
//
// Each unit reports one of pass, warn or fail; the overall status is the
// worst of its constituents (fail dominates warn dominates pass).
// Monitoring consumers depend on that exact aggregation rule.
package health

// Status is the outcome of a single check or of the whole aggregate.
// Ordering matters: a higher value is worse.
type Status int

const (
	Pass Status = iota
	Warn
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Warn:
		return "warn"
	case Fail:
		return "fail"
	default:
		return "fail"
	}
}

// Result is the outcome of running a single check unit.
type Result struct {
	Status Status
	// Detail holds optional check-specific data surfaced in the report.
	Detail map[string]any
}

// Check is an individual named probe.
// Implementations must be safe for concurrent Run calls: the handler runs
// checks on every request.
type Check interface {
	Name() string
	Run() Result
}

// CheckFunc adapts a function to the Check interface.
type CheckFunc struct {
	CheckName string
	Fn        func() Result
}

func (c CheckFunc) Name() string { return c.CheckName }
func (c CheckFunc) Run() Result  { return c.Fn() }

// Aggregate returns the worst status among results; an empty set passes.
func Aggregate(results []Result) Status {
	overall := Pass
	for _, r := range results {
		if r.Status > overall {
			overall = r.Status
		}
	}
	return overall
}
