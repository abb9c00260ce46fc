// Package intake assembles dynamic legal-intake form definitions: a typed
// schema of sections and fields, structural and rule validation, conditional
// visibility, and an editing controller that guards every mutation. The core
// stays transport-free; persistence, catalogs and answer sources plug in as
// collaborators.
package intake

import (
	"github.com/goliatone/go-intake/pkg/editor"
	"github.com/goliatone/go-intake/pkg/schema"
	"github.com/goliatone/go-intake/pkg/validation"
	"github.com/goliatone/go-intake/pkg/visibility"
)

// Schema types re-exported for callers that only need the top-level API.
type (
	Form      = schema.Form
	Section   = schema.Section
	Field     = schema.Field
	FieldType = schema.FieldType
	Rule      = schema.Rule
	Predicate = schema.Predicate
	Option    = schema.Option
	Answers   = schema.Answers
)

// Editor types re-exported for convenience.
type (
	Editor       = editor.Editor
	SectionPatch = editor.SectionPatch
	FieldPatch   = editor.FieldPatch
	Store        = editor.Store
)

// NewEditor wraps an existing form in an editing session.
func NewEditor(form Form, options ...editor.Option) *Editor {
	return editor.New(form, options...)
}

// NewForm starts an editing session over an empty form.
func NewForm(practiceArea, title string, options ...editor.Option) *Editor {
	return editor.NewForm(practiceArea, title, options...)
}

// Validate runs the structural checks over a form snapshot.
func Validate(form Form) validation.Result {
	return validation.ValidateForm(form)
}

// CheckField evaluates a field's rules against a candidate answer.
func CheckField(field Field, value any) []validation.Violation {
	return validation.CheckField(field, value)
}

// Visible decides whether the entry guarded by pred should render for the
// given answers.
func Visible(pred *Predicate, answers Answers) bool {
	return visibility.Visible(pred, answers)
}
