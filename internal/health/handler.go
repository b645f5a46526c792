package health

import (
	"encoding/json"
	"net/http"
)

// report is the wire shape of the aggregate health response.
// The format is fixed regardless of the server's serialization strategy:
// monitoring consumers must not see it change with app.json-library.
type report struct {
	Status string        `json:"status"`
	Checks []checkReport `json:"checks"`
}

type checkReport struct {
	Name   string         `json:"name"`
	Status string         `json:"status"`
	Detail map[string]any `json:"detail,omitempty"`
}

// Handler serves the aggregate health report for a fixed set of checks.
// Check order in the response follows registration order.
type Handler struct {
	checks []Check
}

// NewHandler builds a Handler over the given checks.
// The check set is fixed at composition time.
func NewHandler(checks ...Check) *Handler {
	return &Handler{checks: checks}
}

// ServeHTTP runs every check and writes the aggregate report.
// HTTP 200 for pass and warn, 503 for fail.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	results := make([]Result, 0, len(h.checks))
	out := report{Checks: make([]checkReport, 0, len(h.checks))}

	for _, check := range h.checks {
		result := check.Run()
		results = append(results, result)
		out.Checks = append(out.Checks, checkReport{
			Name:   check.Name(),
			Status: result.Status.String(),
			Detail: result.Detail,
		})
	}

	overall := Aggregate(results)
	out.Status = overall.String()

	code := http.StatusOK
	if overall == Fail {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(out)
}
