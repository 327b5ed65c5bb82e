package testrunner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/hemanta212/uniset"
)

// Scenario is one row of the conformance table: a literal pattern
// together with what parsing it under opts is expected to produce.
type Scenario struct {
	Name    string
	Pattern string
	Opts    uniset.Options

	// Expected rebuilt pattern, checked when WantErr is nil.
	WantRebuilt string
	// Expected members, checked when non-nil and WantErr is nil.
	WantMembers []rune
	WantStrings []string
	// WantErr, when non-nil, is the sentinel the parse error must match.
	WantErr error
}

// Runner executes Scenarios and ruleset files against the grammar.
type Runner struct {
	resolver uniset.PropertyResolver
	handler  Handler
	failFast bool
	filter   *regexp.Regexp
}

// Option configures a Runner.
type Option func(*Runner)

// WithResolver sets the property resolver used to parse scenarios.
func WithResolver(r uniset.PropertyResolver) Option {
	return func(rn *Runner) { rn.resolver = r }
}

// WithHandler sets the event handler.
func WithHandler(h Handler) Option {
	return func(rn *Runner) { rn.handler = h }
}

// WithFailFast stops after the first failure.
func WithFailFast(enabled bool) Option {
	return func(rn *Runner) { rn.failFast = enabled }
}

// WithFilter limits execution to scenario names matching pattern.
func WithFilter(pattern string) Option {
	return func(rn *Runner) {
		if pattern != "" {
			rn.filter = regexp.MustCompile(pattern)
		}
	}
}

// New creates a Runner with the given options.
func New(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every scenario in order, emitting events to the
// configured handler, and returns the accumulated Result.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) (*Result, error) {
	result := NewResult()

	handlers := []Handler{NewResultHandler()}
	if r.handler != nil {
		handlers = append(handlers, r.handler)
	}
	handler := NewMultiHandler(handlers...)

	for _, sc := range scenarios {
		path := []string{sc.Name}
		if !r.matchesFilter(path) {
			continue
		}

		start := time.Now()
		_ = handler.Event(ctx, Event{Time: start, Action: ActionRun, Suite: "scenarios", Path: path}, result)

		event := r.runScenario(sc, path, start)
		if err := handler.Event(ctx, event, result); err != nil {
			return result, err
		}
		if r.failFast && event.Action != ActionPass {
			break
		}
	}

	result.Finish()
	return result, nil
}

func (r *Runner) runScenario(sc Scenario, path []string, start time.Time) Event {
	set, rebuilt, err := uniset.ApplyPattern(sc.Pattern, uniset.MapSymbolTable{}, r.resolver, sc.Opts)
	elapsed := time.Since(start)

	if sc.WantErr != nil {
		if err == nil {
			return Event{Action: ActionFail, Suite: "scenarios", Path: path, Elapsed: elapsed,
				Field: "error", Expected: sc.WantErr, Actual: nil}
		}
		if !errors.Is(err, sc.WantErr) {
			return Event{Action: ActionFail, Suite: "scenarios", Path: path, Elapsed: elapsed,
				Field: "error", Expected: sc.WantErr, Actual: err}
		}
		return Event{Action: ActionPass, Suite: "scenarios", Path: path, Elapsed: elapsed}
	}

	if err != nil {
		return Event{Action: ActionError, Suite: "scenarios", Path: path, Elapsed: elapsed, Error: err}
	}

	if sc.WantRebuilt != "" && rebuilt != sc.WantRebuilt {
		return Event{Action: ActionFail, Suite: "scenarios", Path: path, Elapsed: elapsed,
			Field: "rebuilt pattern", Expected: sc.WantRebuilt, Actual: rebuilt}
	}

	if sc.WantMembers != nil {
		for _, cp := range sc.WantMembers {
			if !set.Contains(cp) {
				return Event{Action: ActionFail, Suite: "scenarios", Path: path, Elapsed: elapsed,
					Field: "membership", Expected: fmt.Sprintf("contains U+%04X", cp), Actual: "absent"}
			}
		}
	}

	if sc.WantStrings != nil {
		strs := set.Strings()
		for _, s := range sc.WantStrings {
			if _, ok := strs[s]; !ok {
				return Event{Action: ActionFail, Suite: "scenarios", Path: path, Elapsed: elapsed,
					Field: "strings", Expected: fmt.Sprintf("contains %q", s), Actual: "absent"}
			}
		}
	}

	return Event{Action: ActionPass, Suite: "scenarios", Path: path, Elapsed: elapsed}
}

// RunRulesetDir parses every ".ruleset" file directly under dir,
// reporting one scenario event per file.
func (r *Runner) RunRulesetDir(ctx context.Context, dir string) (*Result, error) {
	result := NewResult()
	handlers := []Handler{NewResultHandler()}
	if r.handler != nil {
		handlers = append(handlers, r.handler)
	}
	handler := NewMultiHandler(handlers...)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			result.Finish()
			return result, nil
		}
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".ruleset") {
			continue
		}
		path := []string{entry.Name()}
		if !r.matchesFilter(path) {
			continue
		}

		start := time.Now()
		_ = handler.Event(ctx, Event{Time: start, Action: ActionRun, Suite: dir, Path: path}, result)

		event := r.runRulesetFile(filepath.Join(dir, entry.Name()), path, start)
		if err := handler.Event(ctx, event, result); err != nil {
			return result, err
		}
		if r.failFast && event.Action != ActionPass {
			break
		}
	}

	result.Finish()
	return result, nil
}

func (r *Runner) runRulesetFile(path string, eventPath []string, start time.Time) Event {
	f, err := os.Open(path)
	if err != nil {
		return Event{Action: ActionError, Suite: path, Path: eventPath, Elapsed: time.Since(start), Error: err}
	}
	defer f.Close()

	_, err = uniset.ParseRulesetFile(f, r.resolver, uniset.Options{})
	if err != nil {
		return Event{Action: ActionFail, Suite: path, Path: eventPath, Elapsed: time.Since(start),
			Field: "ruleset", Expected: "parses cleanly", Actual: err}
	}
	return Event{Action: ActionPass, Suite: path, Path: eventPath, Elapsed: time.Since(start)}
}

func (r *Runner) matchesFilter(path []string) bool {
	if r.filter == nil {
		return true
	}
	return r.filter.MatchString(strings.Join(path, "/"))
}
