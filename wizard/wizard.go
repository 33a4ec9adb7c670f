// Package wizard implements the step-gated form controller behind hostel
// creation/editing and manager verification. Forward navigation is blocked
// until the current step validates, submission re-validates every step.
package wizard

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps field names to user-facing messages.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

type Step struct {
	Name     string
	Validate func() FieldErrors
}

type Wizard struct {
	steps   []Step
	current int
}

func New(steps ...Step) *Wizard {
	return &Wizard{steps: steps}
}

func (w *Wizard) StepIndex() int {
	return w.current
}

func (w *Wizard) StepName() string {
	return w.steps[w.current].Name
}

func (w *Wizard) OnLastStep() bool {
	return w.current == len(w.steps)-1
}

// Next validates the current step and advances only when it passes.
func (w *Wizard) Next() FieldErrors {
	if errs := w.steps[w.current].Validate(); len(errs) > 0 {
		return errs
	}
	if !w.OnLastStep() {
		w.current++
	}
	return nil
}

// Back never validates, partially-entered state is kept as is.
func (w *Wizard) Back() {
	if w.current > 0 {
		w.current--
	}
}

// ValidateAll re-checks every step and returns the index of the first
// failing one, or -1 when all pass. A later edit can invalidate an earlier
// step, so submission must not trust past Next() results.
func (w *Wizard) ValidateAll() (int, FieldErrors) {
	for i, step := range w.steps {
		if errs := step.Validate(); len(errs) > 0 {
			return i, errs
		}
	}
	return -1, nil
}

var validate = validator.New()

// checkStruct runs tag validation and flattens the result into FieldErrors.
func checkStruct(s interface{}) FieldErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"_": err.Error()}
	}

	out := FieldErrors{}
	for _, fe := range verrs {
		out[fe.Field()] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "This field is required"
	case "number", "numeric":
		return "Must be a number"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	default:
		return "Invalid value"
	}
}

// trimAll trims every entry and drops the ones left blank. Dynamic list
// fields go through this exactly once, at payload assembly.
func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
