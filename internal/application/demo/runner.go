// Package demo runs the console demonstrations in a fixed order.
package demo

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/alem-hub/langbasics/internal/demo/functions"
	"github.com/alem-hub/langbasics/internal/demo/loops"
	"github.com/alem-hub/langbasics/internal/demo/mycode"
	"github.com/alem-hub/langbasics/internal/domain/employee"
	"github.com/alem-hub/langbasics/internal/domain/shared"
	"github.com/alem-hub/langbasics/internal/interface/console/presenter"
	"github.com/alem-hub/langbasics/pkg/logger"
)

// Section names, in the order Run executes them.
const (
	SectionNamespaces = "namespaces"
	SectionFunctions  = "functions"
	SectionLoops      = "loops"
	SectionEmployee   = "employee"
)

// Section is one named demonstration.
type Section struct {
	Name        string
	Description string
	run         func(w io.Writer, log *logger.Logger) error
}

// Runner executes demonstration sections against a single writer.
type Runner struct {
	out       io.Writer
	log       *logger.Logger
	presenter *presenter.EmployeePresenter
	sections  []Section
	newRunID  func() string
}

// NewRunner creates a runner that writes demonstration output to out.
func NewRunner(out io.Writer, log *logger.Logger) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	r := &Runner{
		out:       out,
		log:       log.With(logger.Component("demo_runner")),
		presenter: presenter.NewEmployeePresenter(),
		newRunID:  func() string { return uuid.New().String() },
	}
	r.sections = []Section{
		{Name: SectionNamespaces, Description: "qualified and aliased package calls", run: runNamespaces},
		{Name: SectionFunctions, Description: "function calls and integer/decimal addition", run: runFunctions},
		{Name: SectionLoops, Description: "while, do/while, for and range loops", run: runLoops},
		{Name: SectionEmployee, Description: "employee record rendering", run: r.runEmployee},
	}
	return r
}

// Sections returns the available sections in execution order.
func (r *Runner) Sections() []Section {
	out := make([]Section, len(r.sections))
	copy(out, r.sections)
	return out
}

// Run executes every section, separated by a blank line.
func (r *Runner) Run(ctx context.Context) error {
	log := r.log.WithRunID(r.newRunID())
	start := time.Now()

	for i, s := range r.sections {
		if err := ctx.Err(); err != nil {
			return shared.WrapError("demo", "Run", shared.ErrCancelled, "run cancelled", err)
		}
		if i > 0 {
			if _, err := fmt.Fprintln(r.out); err != nil {
				return shared.WrapError("demo", "Run", shared.ErrWriteFailed, "write failed", err)
			}
		}
		if err := r.runOne("Run", log, s); err != nil {
			return err
		}
	}

	log.Debug("run completed", logger.Int("sections", len(r.sections)), logger.Latency(time.Since(start)))
	return nil
}

// RunSection executes the named section only.
func (r *Runner) RunSection(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return shared.WrapError("demo", "RunSection", shared.ErrCancelled, "run cancelled", err)
	}
	for _, s := range r.sections {
		if s.Name == name {
			return r.runOne("RunSection", r.log.WithRunID(r.newRunID()), s)
		}
	}
	return shared.NewDomainError("demo", "RunSection", shared.ErrNotFound, fmt.Sprintf("unknown section %q", name))
}

// runOne executes s. op is the public operation reported in errors.
func (r *Runner) runOne(op string, log *logger.Logger, s Section) error {
	log = log.With(logger.Section(s.Name))
	log.Debug("section started")

	if err := s.run(r.out, log); err != nil {
		log.Error("section failed", logger.Err(err))
		return shared.WrapError("demo", op, shared.ErrWriteFailed, fmt.Sprintf("section %s failed", s.Name), err)
	}

	log.Debug("section finished")
	return nil
}

func runNamespaces(w io.Writer, _ *logger.Logger) error {
	if err := mycode.Foo(w); err != nil {
		return err
	}
	foo := mycode.Foo
	return foo(w)
}

func runFunctions(w io.Writer, log *logger.Logger) error {
	someInt := 6
	someChar := 'c'

	calls := []struct {
		i int
		c rune
	}{{8, 'a'}, {someInt, 'b'}, {5, someChar}}
	for _, call := range calls {
		if err := functions.Describe(w, call.i, call.c); err != nil {
			return err
		}
	}

	log.Debug("entering function", logger.Operation("AddInts"))
	sum := functions.AddInts(5, 3)

	log.Debug("entering function", logger.Operation("AddInts"))
	ints := functions.AddInts(1, 2)

	log.Debug("entering function", logger.Operation("AddFloats"))
	floats := functions.AddFloats(1.11, 2.22)

	_, err := fmt.Fprintf(w, "%d\n%d\n%v\n", sum, ints, floats)
	return err
}

func runLoops(w io.Writer, _ *logger.Logger) error {
	return loops.All(w)
}

func (r *Runner) runEmployee(w io.Writer, log *logger.Logger) error {
	e := employee.New()
	e.FirstInitial = 'J'
	e.LastInitial = 'D'
	e.Number = 42
	e.Salary = 80000

	if err := e.Validate(); err != nil {
		log.Warn("employee failed validation", logger.Err(err))
	}
	return r.presenter.Write(w, e)
}
