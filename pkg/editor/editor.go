package editor

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-intake/pkg/schema"
	"github.com/goliatone/go-intake/pkg/validation"
)

// Default display values for freshly added entries.
const (
	DefaultSectionTitle = "New Section"
	DefaultFieldLabel   = "New Field"
	DefaultFormVersion  = "1.0"
)

// Editor owns one in-memory form and is the only writer to it. Every accessor
// returns a deep copy, so snapshots handed to callers are never aliased by
// later edits. There is exactly one editor session per form; the type is not
// safe for concurrent use.
type Editor struct {
	form  schema.Form
	genID IDFunc
	now   func() time.Time
}

// Option configures an Editor.
type Option func(*Editor)

// WithIDGenerator overrides the id generator for new sections and fields.
func WithIDGenerator(fn IDFunc) Option {
	return func(e *Editor) {
		if fn != nil {
			e.genID = fn
		}
	}
}

// WithClock overrides the timestamp source used by PrepareForSave.
func WithClock(fn func() time.Time) Option {
	return func(e *Editor) {
		if fn != nil {
			e.now = fn
		}
	}
}

// New wraps an existing form, typically one loaded from the persistence
// collaborator.
func New(form schema.Form, options ...Option) *Editor {
	e := &Editor{
		form:  form.Clone(),
		genID: defaultIDFunc,
		now:   time.Now,
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// NewForm starts an editor over an empty form for the given practice area.
func NewForm(practiceArea, title string, options ...Option) *Editor {
	e := New(schema.Form{}, options...)
	now := e.now()
	e.form = schema.Form{
		ID:           e.genID(),
		PracticeArea: practiceArea,
		Title:        title,
		Version:      DefaultFormVersion,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return e
}

// Form returns a deep copy of the current snapshot.
func (e *Editor) Form() schema.Form {
	return e.form.Clone()
}

// AddSection appends a section with a fresh unique id and default title, and
// returns a copy of it.
func (e *Editor) AddSection() schema.Section {
	section := schema.Section{
		ID:     freshID(e.genID, e.form.IDSet()),
		Title:  DefaultSectionTitle,
		Fields: []schema.Field{},
	}
	e.form.Sections = append(e.form.Sections, section)
	return section.Clone()
}

// UpdateSection merges a patch into the section at index and returns the new
// snapshot. Order and count of sections are preserved.
func (e *Editor) UpdateSection(index int, patch SectionPatch) (schema.Form, error) {
	if index < 0 || index >= len(e.form.Sections) {
		return schema.Form{}, sectionRangeErr(index, len(e.form.Sections))
	}
	patch.apply(&e.form.Sections[index])
	return e.Form(), nil
}

// DeleteSection removes the section at index, preserving the order of the
// rest, and returns the new snapshot.
func (e *Editor) DeleteSection(index int) (schema.Form, error) {
	if index < 0 || index >= len(e.form.Sections) {
		return schema.Form{}, sectionRangeErr(index, len(e.form.Sections))
	}
	e.form.Sections = append(e.form.Sections[:index], e.form.Sections[index+1:]...)
	return e.Form(), nil
}

// AddField appends a text field with a fresh unique id to the section at
// sectionIndex and returns a copy of it.
func (e *Editor) AddField(sectionIndex int) (schema.Field, error) {
	if sectionIndex < 0 || sectionIndex >= len(e.form.Sections) {
		return schema.Field{}, sectionRangeErr(sectionIndex, len(e.form.Sections))
	}
	field := schema.Field{
		ID:    freshID(e.genID, e.form.IDSet()),
		Type:  schema.FieldTypeText,
		Label: DefaultFieldLabel,
	}
	section := &e.form.Sections[sectionIndex]
	section.Fields = append(section.Fields, field)
	return field.Clone(), nil
}

// UpdateField merges a patch into one field and returns the new snapshot.
func (e *Editor) UpdateField(sectionIndex, fieldIndex int, patch FieldPatch) (schema.Form, error) {
	if sectionIndex < 0 || sectionIndex >= len(e.form.Sections) {
		return schema.Form{}, sectionRangeErr(sectionIndex, len(e.form.Sections))
	}
	section := &e.form.Sections[sectionIndex]
	if fieldIndex < 0 || fieldIndex >= len(section.Fields) {
		return schema.Form{}, fieldRangeErr(fieldIndex, len(section.Fields))
	}
	patch.apply(&section.Fields[fieldIndex])
	return e.Form(), nil
}

// DeleteField removes one field, preserving the order of the rest, and
// returns the new snapshot.
func (e *Editor) DeleteField(sectionIndex, fieldIndex int) (schema.Form, error) {
	if sectionIndex < 0 || sectionIndex >= len(e.form.Sections) {
		return schema.Form{}, sectionRangeErr(sectionIndex, len(e.form.Sections))
	}
	section := &e.form.Sections[sectionIndex]
	if fieldIndex < 0 || fieldIndex >= len(section.Fields) {
		return schema.Form{}, fieldRangeErr(fieldIndex, len(section.Fields))
	}
	section.Fields = append(section.Fields[:fieldIndex], section.Fields[fieldIndex+1:]...)
	return e.Form(), nil
}

// PrepareForSave validates the current snapshot. When the form is valid it
// returns a copy with UpdatedAt refreshed, ready to hand to the persistence
// collaborator; the in-memory form is left untouched either way. When the
// form is invalid the returned result carries the keyed messages and the
// form copy is zero.
func (e *Editor) PrepareForSave() (schema.Form, validation.Result) {
	result := validation.ValidateForm(e.form)
	if !result.Valid() {
		return schema.Form{}, result
	}
	prepared := e.form.Clone()
	prepared.UpdatedAt = e.now()
	return prepared, result
}

// Save validates, hands the prepared snapshot to the store, and adopts the
// stored form on success. On validation failure it returns a *ValidationError;
// on store failure it returns the store's error unchanged apart from context.
// The in-memory form is never modified on failure, so the user's edits
// survive a rejected save and can be retried.
func (e *Editor) Save(ctx context.Context, store Store) (schema.Form, error) {
	prepared, result := e.PrepareForSave()
	if !result.Valid() {
		return schema.Form{}, &ValidationError{Result: result}
	}

	saved, err := store.Save(ctx, prepared)
	if err != nil {
		return schema.Form{}, fmt.Errorf("editor: save form %s: %w", prepared.ID, err)
	}

	e.form = saved.Clone()
	return e.Form(), nil
}
