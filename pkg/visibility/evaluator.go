package visibility

import (
	"fmt"

	"github.com/goliatone/go-intake/pkg/schema"
)

// Evaluator binds visibility evaluation to one form so callers can test
// sections and fields without re-supplying the schema, and can collect
// configuration warnings for the editing surface.
type Evaluator struct {
	form schema.Form
}

// New wraps a form snapshot. The evaluator holds the snapshot it was given;
// rebuild it after structural edits.
func New(form schema.Form) *Evaluator {
	return &Evaluator{form: form}
}

// SectionVisible reports whether a whole section should render.
func (e *Evaluator) SectionVisible(section schema.Section, answers schema.Answers) bool {
	return Visible(section.Conditional, answers)
}

// FieldVisible reports whether a field should render. A field inside a hidden
// section is hidden regardless of its own predicate.
func (e *Evaluator) FieldVisible(section schema.Section, field schema.Field, answers schema.Answers) bool {
	if !Visible(section.Conditional, answers) {
		return false
	}
	return Visible(field.Conditional, answers)
}

// Warning flags a predicate misconfiguration. Warnings never block saving or
// evaluation; the editor surfaces them inline.
type Warning struct {
	Owner  string `json:"owner"`
	Ref    string `json:"ref"`
	Reason string `json:"reason"`
}

// Warnings scans every predicate in the form for references to missing
// fields, self-references, and operators illegal for the referenced field's
// declared type.
func (e *Evaluator) Warnings() []Warning {
	var out []Warning
	for _, section := range e.form.Sections {
		out = append(out, e.checkPredicate(section.ID, "", section.Conditional)...)
		for _, field := range section.Fields {
			out = append(out, e.checkPredicate(field.ID, field.ID, field.Conditional)...)
		}
	}
	return out
}

func (e *Evaluator) checkPredicate(owner, self string, pred *schema.Predicate) []Warning {
	if pred == nil {
		return nil
	}
	if self != "" && pred.Field == self {
		return []Warning{{
			Owner:  owner,
			Ref:    pred.Field,
			Reason: "condition references its own field",
		}}
	}
	refType, ok := e.form.TypeOf(pred.Field)
	if !ok {
		return []Warning{{
			Owner:  owner,
			Ref:    pred.Field,
			Reason: "condition references a missing field",
		}}
	}
	if !schema.OperatorAllowed(refType, pred.Operator) {
		return []Warning{{
			Owner:  owner,
			Ref:    pred.Field,
			Reason: fmt.Sprintf("operator %q is not valid for %s fields", pred.Operator, refType),
		}}
	}
	return nil
}
