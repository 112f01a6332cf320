// Package dataflags evaluates climate variables against a set of data
// quality checks: inter-variable consistency (a day's maximum temperature
// below its minimum), physical plausibility (temperatures past -90 degC,
// negative precipitation), sensor artifacts (values pinned at 1 mm or
// repeating for days), and departure from the day-of-year climatology.
//
// Checks live in a [Registry]; which checks apply to a variable, in what
// order and with what fixed arguments, comes from a [Variables]
// configuration. [Evaluate] dispatches the configured checks for one
// variable, resolving sibling variables from a [array.Dataset]. A check
// whose siblings are absent is skipped, never an error; everything else the
// evaluation needs and cannot get is.
package dataflags

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"goclim/array"
)

// Result is the outcome of one configured check.
type Result struct {
	// Check is the registered check name.
	Check string

	// Flagged reports whether the check found suspicious values.
	Flagged bool

	// Comment is the human-readable explanation the check attached.
	// Empty when the check was skipped.
	Comment string

	// Skipped reports that a sibling variable the check needs was absent
	// from the dataset, so the check never ran.
	Skipped bool
}

// Flags is the outcome of evaluating one variable: one result per
// configured check, in configuration order. Identical inputs produce
// identical Flags.
type Flags struct {
	// Variable is the name of the evaluated array.
	Variable string

	// Results holds one entry per configured check, in configuration
	// order.
	Results []Result

	// History records which checks were evaluated.
	History string
}

// Get returns the result recorded for the named check.
func (f *Flags) Get(check string) (Result, bool) {
	for _, r := range f.Results {
		if r.Check == check {
			return r, true
		}
	}
	return Result{}, false
}

// Raised returns the results whose flag is set, in configuration order.
func (f *Flags) Raised() []Result {
	var raised []Result
	for _, r := range f.Results {
		if !r.Skipped && r.Flagged {
			raised = append(raised, r)
		}
	}
	return raised
}

// AnyFlagged reports whether at least one non-skipped check flagged.
func (f *Flags) AnyFlagged() bool { return len(f.Raised()) > 0 }

// Option configures Evaluate.
type Option func(*config)

type config struct {
	raise     bool
	registry  *Registry
	variables *Variables
	logger    *slog.Logger
}

// RaiseOnFlag makes Evaluate return a *DataQualityError whenever a
// non-skipped check flags. The Flags still come back alongside the error.
func RaiseOnFlag() Option {
	return func(c *config) { c.raise = true }
}

// WithRegistry evaluates against reg instead of the builtin registry.
func WithRegistry(reg *Registry) Option {
	return func(c *config) { c.registry = reg }
}

// WithVariables resolves variable configuration from vars instead of the
// embedded default.
func WithVariables(vars *Variables) Option {
	return func(c *config) { c.variables = vars }
}

// WithLogger reports skipped checks at debug level. Logging is ambient;
// it never changes results.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Evaluate runs every check configured for da's name, resolving sibling
// variables from ds (which may be nil when no check needs siblings). A
// check whose declared siblings are missing is recorded as skipped and
// evaluation continues; an unknown variable name, an unknown check name in
// the configuration, or a check invocation failure ends the evaluation
// with an error.
//
// Under RaiseOnFlag, when at least one non-skipped check flags, Evaluate
// returns the assembled Flags together with a *DataQualityError carrying
// every raised comment.
func Evaluate(da *array.DataArray, ds *array.Dataset, opts ...Option) (*Flags, error) {
	cfg := config{
		registry:  defaultRegistry,
		variables: defaultVariables,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	def, err := cfg.variables.Lookup(da.Name())
	if err != nil {
		return nil, err
	}

	names := make([]string, len(def.Checks))
	for i, spec := range def.Checks {
		names[i] = spec.Name
	}
	flags := &Flags{
		Variable: da.Name(),
		Results:  make([]Result, 0, len(def.Checks)),
		History:  fmt.Sprintf("data flags evaluated for %s: %s", da.Name(), strings.Join(names, ", ")),
	}

	for _, spec := range def.Checks {
		check, err := cfg.registry.Lookup(spec.Name)
		if err != nil {
			return nil, err
		}
		extras, err := resolveNeeds(check, ds)
		if err != nil {
			if !errors.Is(err, ErrMissingVariable) {
				return nil, err
			}
			if cfg.logger != nil {
				cfg.logger.Debug("check skipped",
					"variable", da.Name(), "check", check.Name, "reason", err)
			}
			flags.Results = append(flags.Results, Result{Check: check.Name, Skipped: true})
			continue
		}
		flag, err := check.Run(da, extras, spec.Kwargs)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", check.Name, err)
		}
		raised, err := flag.Item()
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", check.Name, err)
		}
		comment, _ := flag.Attr(array.AttrComment)
		flags.Results = append(flags.Results, Result{
			Check:   check.Name,
			Flagged: raised,
			Comment: comment,
		})
	}

	if cfg.raise && flags.AnyFlagged() {
		return flags, newDataQualityError(flags)
	}
	return flags, nil
}

// resolveNeeds pulls the check's declared sibling variables out of the
// dataset.
func resolveNeeds(check *Check, ds *array.Dataset) (map[string]*array.DataArray, error) {
	if len(check.Needs) == 0 {
		return nil, nil
	}
	extras := make(map[string]*array.DataArray, len(check.Needs))
	for _, need := range check.Needs {
		sibling, ok := ds.Get(need.Name)
		if !ok {
			return nil, fmt.Errorf("%w: check %s needs %q", ErrMissingVariable, check.Name, need.Name)
		}
		extras[need.Name] = sibling
	}
	return extras, nil
}
