package seq

import (
	"fmt"

	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/resume"
)

type State int

const (
	Created State = iota
	Running
	Completed
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Procedure is a user-written multi-step fallible computation. It consumes
// step results through the Flow (Await, Do) and returns the final Result.
type Procedure[T any] func(f *Flow) fallible.Result[T]

// chainAbort is the internal control transfer raised by a failed step. It
// carries the step's original error by reference and is intercepted inside
// Coordinator.run; it never crosses the coordinator boundary.
type chainAbort struct {
	cause error
}

// Flow is the per-run accumulator handed to a Procedure. It is owned by
// exactly one coordinator run and never shared.
type Flow struct {
	obs   Observer
	steps int
}

// Steps reports how many steps have completed successfully so far.
func (f *Flow) Steps() int {
	return f.steps
}

// Progress reports a named step outcome to the observer. Control never
// returns to the procedure after a failed step, so a sink only ever hears
// about steps before the first failure.
func (f *Flow) Progress(step, outcome string) {
	if f.obs == nil {
		return
	}
	f.obs(step, outcome)
}

// Await consumes one step Result through its resume point. On success the
// value is returned and the procedure continues to its next statement. On
// failure the remaining procedure is unwound with an internal control
// transfer carrying the step's original error: no later statement runs,
// not even the expressions producing the arguments of later Await calls.
// The coordinator intercepts the unwind and surfaces the original error
// as the run's failure.
func Await[U any](f *Flow, r fallible.Result[U]) U {
	p := resume.For(r)

	var v U
	ok := false
	p.OnReady(func() {
		v, ok = p.Poll()
	})

	if !ok {
		panic(chainAbort{cause: p.Abort()})
	}

	f.steps++
	return v
}

// Do runs one named step through the flow: faults from the body are
// captured via fallible.Call, and a successful outcome is reported to the
// observer.
func Do[U any](f *Flow, step string, body func() (U, error)) U {
	v := Await(f, fallible.Call(body))
	f.Progress(step, fmt.Sprintf("%v", v))
	return v
}

// Coordinator drives one Procedure to completion: Created -> Running ->
// Completed. The terminal Result is memoized and immutable; Run and Result
// may be read any number of times after completion.
type Coordinator[T any] struct {
	state State
	proc  Procedure[T]
	obs   Observer
	out   fallible.Result[T]
}

type Option func(*config)

type config struct {
	obs Observer
}

// WithObserver injects the progress sink invoked between successful steps.
func WithObserver(obs Observer) Option {
	return func(c *config) {
		c.obs = obs
	}
}

func NewCoordinator[T any](proc Procedure[T], opts ...Option) *Coordinator[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Coordinator[T]{
		state: Created,
		proc:  proc,
		obs:   cfg.obs,
	}
}

func (c *Coordinator[T]) State() State {
	return c.state
}

// Result returns the terminal Result. Valid only once the coordinator has
// completed; before that it is the empty Result.
func (c *Coordinator[T]) Result() fallible.Result[T] {
	return c.out
}

// Run executes the procedure's steps in declaration order, synchronously,
// on the caller's stack. The first failed step aborts the run and its
// original error — not any internal marker — becomes the failure of the
// final Result. A panic in the procedure body itself completes the run
// with that fault. Run is idempotent: a completed coordinator returns its
// memoized Result.
func (c *Coordinator[T]) Run() fallible.Result[T] {
	if c.state == Completed {
		return c.out
	}

	c.state = Running
	c.out = c.run(&Flow{obs: c.obs})
	c.state = Completed
	return c.out
}

func (c *Coordinator[T]) run(f *Flow) (res fallible.Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			if ab, ok := rec.(chainAbort); ok {
				res = fallible.Fail[T](ab.cause)
				return
			}
			res = fallible.Fail[T](fallible.NewPanicError(rec))
		}
	}()

	return c.proc(f)
}

// Run is the one-shot form: build a coordinator, run it, return its Result.
func Run[T any](proc Procedure[T], opts ...Option) fallible.Result[T] {
	return NewCoordinator(proc, opts...).Run()
}
