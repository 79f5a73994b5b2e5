// SPDX-License-Identifier: MPL-2.0

// Package flow runs named workflow steps in dependency order, printing
// the banner output of the analysis workflow (80-column rules, STEP
// headers, completion summary).
package flow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/catwalk-dev/catwalk/internal/dag"
)

const (
	ruleWidth       = 80
	completedBanner = "✓ WORKFLOW COMPLETED SUCCESSFULLY"
)

// Policy decides what a step failure does to the rest of the workflow.
type Policy int

const (
	// Fatal aborts the workflow when the step fails.
	Fatal Policy = iota

	// BestEffort reports the failure and lets the workflow continue.
	BestEffort
)

type (
	// Step is one unit of work in a workflow.
	Step struct {
		// Name identifies the step in dependency declarations and
		// failure messages.
		Name string

		// Title is the STEP banner headline.
		Title string

		// Needs lists names of steps that must run first.
		Needs []string

		// Policy decides whether a failure aborts the workflow. The
		// zero value is Fatal.
		Policy Policy

		// Success is printed after the step succeeds, when non-empty.
		Success string

		// Run does the step's work. It must not be nil.
		Run func(ctx context.Context) error
	}

	// Runner executes a workflow's steps in dependency order.
	Runner struct {
		title  string
		intro  []string
		steps  []Step
		out    io.Writer
		logger *log.Logger
	}

	// Option configures a Runner.
	Option func(*Runner)
)

// WithIntro adds lines printed between the workflow banner and the
// first step.
func WithIntro(lines ...string) Option {
	return func(r *Runner) { r.intro = append(r.intro, lines...) }
}

// WithOutput redirects the banner output.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithLogger overrides the diagnostic logger.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// NewRunner creates a Runner for the given workflow title and steps.
func NewRunner(title string, steps []Step, opts ...Option) *Runner {
	r := &Runner{
		title:  title,
		steps:  steps,
		out:    os.Stdout,
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "flow"}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every step in dependency order. A Fatal step failure
// prints the error block and aborts; a BestEffort failure prints a
// warning and the workflow continues.
func (r *Runner) Run(ctx context.Context) error {
	ordered, err := orderSteps(r.steps)
	if err != nil {
		return err
	}

	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out, r.title)
	fmt.Fprintln(r.out, rule)
	for _, line := range r.intro {
		fmt.Fprintf(r.out, "\n%s\n", line)
	}
	if len(r.intro) > 0 {
		fmt.Fprintln(r.out)
	}

	for i, step := range ordered {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(r.out, rule)
		fmt.Fprintf(r.out, "STEP %d: %s\n", i+1, step.Title)
		fmt.Fprintln(r.out, rule)

		r.logger.Debug("running workflow step", "step", step.Name)
		if err := step.Run(ctx); err != nil {
			if step.Policy == BestEffort {
				r.logger.Warn("workflow step failed", "step", step.Name, "error", err)
				fmt.Fprintf(r.out, "\n⚠️  WARNING: %s failed; continuing\n", step.Name)
				fmt.Fprintf(r.out, "\nError details:\n%s\n", err)
				continue
			}
			fmt.Fprintf(r.out, "\n❌ ERROR: %s failed\n", step.Name)
			fmt.Fprintf(r.out, "\nError details:\n%s\n", err)
			return fmt.Errorf("workflow step %s failed: %w", step.Name, err)
		}
		if step.Success != "" {
			fmt.Fprintf(r.out, "%s\n\n", step.Success)
		}
	}

	fmt.Fprintln(r.out, "\n"+rule)
	fmt.Fprintln(r.out, completedBanner)
	fmt.Fprintln(r.out, rule)
	return nil
}

// orderSteps resolves the declared dependencies into an execution
// sequence. Steps with no ordering constraints keep declaration order.
func orderSteps(steps []Step) ([]Step, error) {
	byName := make(map[string]Step, len(steps))
	g := dag.New()
	for _, step := range steps {
		if step.Name == "" {
			return nil, errors.New("workflow step with empty name")
		}
		if step.Run == nil {
			return nil, fmt.Errorf("workflow step %q has no run function", step.Name)
		}
		if _, dup := byName[step.Name]; dup {
			return nil, fmt.Errorf("duplicate workflow step %q", step.Name)
		}
		byName[step.Name] = step
		g.AddNode(step.Name)
	}
	for _, step := range steps {
		for _, need := range step.Needs {
			if _, ok := byName[need]; !ok {
				return nil, fmt.Errorf("step %q needs unknown step %q", step.Name, need)
			}
			g.AddEdge(need, step.Name)
		}
	}

	names, err := g.Order()
	if err != nil {
		return nil, fmt.Errorf("ordering workflow steps: %w", err)
	}
	ordered := make([]Step, 0, len(names))
	for _, name := range names {
		ordered = append(ordered, byName[name])
	}
	return ordered, nil
}
