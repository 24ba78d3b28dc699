package reconcile

import "fmt"

// RowError records a row whose processing failed. The row's status cell is
// set to the error marker.
type RowError struct {
	Index  int
	Status string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (status %q): %v", e.Index+2, e.Status, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// RowResult is the outcome of one row.
type RowResult struct {
	Index     int
	Skipped   bool
	Published bool
	Notified  bool
	Reminded  bool
	Mutations int
	Err       *RowError
}

// Report aggregates a pass.
type Report struct {
	Rows       int
	Skipped    int
	Published  int
	Notified   int
	Reminded   int
	Mutations  int
	Errors     []*RowError
	CapReached bool
}

func (r *Report) add(res RowResult) {
	r.Rows++
	r.Mutations += res.Mutations
	if res.Skipped {
		r.Skipped++
	}
	if res.Published {
		r.Published++
	}
	if res.Notified {
		r.Notified++
	}
	if res.Reminded {
		r.Reminded++
	}
	if res.Err != nil {
		r.Errors = append(r.Errors, res.Err)
	}
}

// LogArgs flattens the counters for a summary log line.
func (r Report) LogArgs() []any {
	return []any{
		"rows", r.Rows,
		"skipped", r.Skipped,
		"published", r.Published,
		"notified", r.Notified,
		"reminded", r.Reminded,
		"errors", len(r.Errors),
		"mutations", r.Mutations,
		"cap_reached", r.CapReached,
	}
}
