// Package wizard drives the multi-step quote form: an ordered sequence
// of gated steps ending in a terminal completed state.
package wizard

import (
	"go-intake-backend/internal/domain"
)

// State is either an active step (1-based) or the terminal completed
// state. The completed state is distinct from every real step; once
// reached, no step content exists to render.
type State struct {
	step      int
	completed bool
}

// StepState returns the state for an active step.
func StepState(n int) State {
	return State{step: n}
}

// CompletedState returns the terminal state.
func CompletedState() State {
	return State{completed: true}
}

// Step returns the active step number and whether the state is a step.
func (s State) Step() (int, bool) {
	return s.step, !s.completed
}

// Completed reports whether the wizard has finished.
func (s State) Completed() bool {
	return s.completed
}

// StepCheck is a step's validity gate over the current draft.
type StepCheck func() bool

// Wizard holds the current state, the travel direction of the last
// transition, the per-step gates, and the completion callback.
type Wizard struct {
	steps       []StepCheck
	canComplete func() bool
	onComplete  func()
	state       State
	direction   int
}

// New builds a wizard over the given gated steps. canComplete gates the
// final submission beyond the last step's own check (nil means no extra
// gate); onComplete fires exactly once, on the transition into the
// terminal state.
func New(steps []StepCheck, canComplete func() bool, onComplete func()) *Wizard {
	return &Wizard{
		steps:       steps,
		canComplete: canComplete,
		onComplete:  onComplete,
		state:       StepState(1),
	}
}

// ForQuote wires the step gates for a quote draft: contact info, tools,
// details (always passable), and - for business - the appointment step.
// Submission additionally requires accepted terms.
func ForQuote(draft *domain.QuoteDraft, onComplete func()) *Wizard {
	steps := []StepCheck{
		draft.ContactInfoComplete,
		draft.ToolsChosen,
		func() bool { return true }, // details step has no required fields
	}
	if draft.Plan == domain.PlanBusiness {
		steps = append(steps, draft.AppointmentChosen)
	}
	return New(steps, draft.CanSubmit, onComplete)
}

// State returns the current state.
func (w *Wizard) State() State {
	return w.state
}

// Direction reports the travel direction of the last transition, +1 or
// -1. It only chooses the slide-in animation side; it carries no
// validation meaning.
func (w *Wizard) Direction() int {
	return w.direction
}

// NextDisabled reports whether the active step's gate blocks advancing.
func (w *Wizard) NextDisabled() bool {
	step, ok := w.state.Step()
	if !ok {
		return true
	}
	return !w.steps[step-1]()
}

// Advance moves one step forward. It is a no-op on the last step, after
// completion, or while the active step's gate is failing.
func (w *Wizard) Advance() bool {
	step, ok := w.state.Step()
	if !ok || step >= len(w.steps) || !w.steps[step-1]() {
		return false
	}
	w.direction = 1
	w.state = StepState(step + 1)
	return true
}

// Retreat moves one step back; a no-op on the first step or after completion.
func (w *Wizard) Retreat() bool {
	step, ok := w.state.Step()
	if !ok || step <= 1 {
		return false
	}
	w.direction = -1
	w.state = StepState(step - 1)
	return true
}

// JumpTo moves directly to an earlier step, as when a step indicator is
// clicked. Jumping forward is refused so steps cannot be skipped.
func (w *Wizard) JumpTo(target int) bool {
	step, ok := w.state.Step()
	if !ok || target < 1 || target >= step {
		return false
	}
	w.direction = -1
	w.state = StepState(target)
	return true
}

// Complete finishes the wizard from the last step, firing the completion
// callback and entering the terminal state. Refused anywhere else, or
// while the last step's gate or the submission gate is failing.
func (w *Wizard) Complete() bool {
	step, ok := w.state.Step()
	if !ok || step != len(w.steps) || !w.steps[step-1]() {
		return false
	}
	if w.canComplete != nil && !w.canComplete() {
		return false
	}
	w.direction = 1
	w.state = CompletedState()
	if w.onComplete != nil {
		w.onComplete()
	}
	return true
}

// Reset returns to the first step. The caller resets its draft alongside.
func (w *Wizard) Reset() {
	w.state = StepState(1)
	w.direction = 0
}
