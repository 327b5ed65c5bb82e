package testrunner

import (
	"strings"
	"sync"
	"time"
)

// Result accumulates scenario outcomes during a run.
type Result struct {
	mu sync.RWMutex

	StartTime time.Time
	EndTime   time.Time

	Total  int
	Passed int
	Failed int
	Errors int

	Tests map[string]*TestResult
	Order []string
}

// NewResult creates an initialized Result.
func NewResult() *Result {
	return &Result{
		StartTime: time.Now(),
		Tests:     make(map[string]*TestResult),
	}
}

// Add records a terminal event in the result.
func (r *Result) Add(event Event) {
	if !event.Action.IsTerminal() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	path := event.PathString()
	tr := &TestResult{
		Suite:   event.Suite,
		Path:    event.Path,
		Status:  event.Action,
		Elapsed: event.Elapsed,
		Error:   event.Error,
	}
	if event.Action == ActionFail {
		tr.Expected = event.Expected
		tr.Actual = event.Actual
		tr.Field = event.Field
	}

	r.Tests[path] = tr
	r.Order = append(r.Order, path)
	r.Total++

	switch event.Action {
	case ActionPass:
		r.Passed++
	case ActionFail:
		r.Failed++
	case ActionError:
		r.Errors++
	case ActionRun, ActionOutput:
	}
}

// Finish marks the result as complete.
func (r *Result) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.EndTime = time.Now()
}

// Elapsed returns the total execution time.
func (r *Result) Elapsed() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.EndTime.IsZero() {
		return time.Since(r.StartTime)
	}
	return r.EndTime.Sub(r.StartTime)
}

// Ok returns true if every scenario passed.
func (r *Result) Ok() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.Failed == 0 && r.Errors == 0
}

// FailedTests returns all failed results in run order.
func (r *Result) FailedTests() []*TestResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var failed []*TestResult
	for _, path := range r.Order {
		tr := r.Tests[path]
		if tr.Status == ActionFail || tr.Status == ActionError {
			failed = append(failed, tr)
		}
	}
	return failed
}

// TestResult holds the outcome of a single scenario.
type TestResult struct {
	Suite   string
	Path    []string
	Status  Action
	Elapsed time.Duration
	Error   error

	Expected any
	Actual   any
	Field    string
}

// PathString returns the path as a slash-separated string.
func (tr *TestResult) PathString() string {
	return strings.Join(tr.Path, "/")
}
