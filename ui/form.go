package ui

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/bluejays/schoolsys/core"
)

// ErrSubmitInFlight is returned when a submit lands while the previous one
// has not settled yet (double-click guard).
var ErrSubmitInFlight = errors.New("submission already in progress")

// errNotOnFinalStep guards against submitting a partially validated wizard.
var errNotOnFinalStep = errors.New("form has remaining steps")

// Step is one page of a multi-step form. Validate checks the caller-owned
// draft and returns one message per invalid field, or an empty map when the
// step passes.
type Step struct {
	Name     string
	Validate func() map[string]string
}

// Wizard is the explicit state machine behind multi-step forms: an ordered
// list of steps, a cursor, and the current step's field errors. Forward
// transitions are gated on validation; Submit is reachable only from the
// final step with every step passed.
type Wizard struct {
	steps []Step

	mu         sync.Mutex
	idx        int
	errs       map[string]string
	submitting bool
}

func NewWizard(steps ...Step) *Wizard {
	return &Wizard{steps: steps, errs: map[string]string{}}
}

// StepNumber is the 1-based index of the current step.
func (w *Wizard) StepNumber() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.idx + 1
}

func (w *Wizard) StepName() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.steps[w.idx].Name
}

// Errors is the current step's field-error map, reset on every transition
// attempt.
func (w *Wizard) Errors() map[string]string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errs
}

// OnFinalStep reports whether the cursor sits on the last step.
func (w *Wizard) OnFinalStep() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.idx == len(w.steps)-1
}

// Next validates the current step; on pass it advances the cursor (when not
// already final) and returns true. On failure the cursor stays put and the
// step's field errors are available via Errors.
func (w *Wizard) Next() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.errs = map[string]string{}
	if failed := w.steps[w.idx].Validate(); len(failed) > 0 {
		w.errs = failed
		return false
	}
	if w.idx < len(w.steps)-1 {
		w.idx++
	}
	return true
}

// Back moves the cursor one step back without re-validating anything.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.errs = map[string]string{}
	if w.idx > 0 {
		w.idx--
	}
}

// Submit runs the terminal submission exactly once per user trigger. It
// re-validates every step (the draft may have mutated since a step passed),
// refuses to run unless the cursor is on the final step, and rejects
// re-entrant submits while one is in flight. On failure the caller's draft is
// untouched so the user can correct and retry; nothing here auto-retries.
func (w *Wizard) Submit(ctx context.Context, submit func(ctx context.Context) error) error {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return ErrSubmitInFlight
	}
	if w.idx != len(w.steps)-1 {
		w.mu.Unlock()
		return errNotOnFinalStep
	}
	w.errs = map[string]string{}
	for _, step := range w.steps {
		if failed := step.Validate(); len(failed) > 0 {
			w.errs = failed
			w.mu.Unlock()
			flds := make([]core.FieldError, 0, len(failed))
			for f, msg := range failed {
				flds = append(flds, core.FieldError{Field: f, Error: msg})
			}
			return core.NewValidationError(errors.Errorf("step %q is incomplete", step.Name), flds...)
		}
	}
	w.submitting = true
	w.mu.Unlock()

	err := submit(ctx)

	w.mu.Lock()
	w.submitting = false
	w.mu.Unlock()
	return err
}

// ValidateStruct adapts core's struct validation into a Step.Validate result.
func ValidateStruct(v interface{}) map[string]string {
	if err := core.CheckStruct(v); err != nil {
		var vErr *core.ValidationError
		if errors.As(err, &vErr) {
			return vErr.FieldMap()
		}
		return map[string]string{"_form": err.Error()}
	}
	return map[string]string{}
}
