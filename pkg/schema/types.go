package schema

import "time"

// FieldType enumerates the input kinds an intake form can declare.
type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeTextarea    FieldType = "textarea"
	FieldTypeEmail       FieldType = "email"
	FieldTypePhone       FieldType = "phone"
	FieldTypeDate        FieldType = "date"
	FieldTypeNumber      FieldType = "number"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiSelect FieldType = "multiselect"
	FieldTypeCheckbox    FieldType = "checkbox"
	FieldTypeRadio       FieldType = "radio"
	FieldTypeFile        FieldType = "file"
)

// RuleType identifies a validation constraint kind.
type RuleType string

const (
	RuleRequired    RuleType = "required"
	RuleMinLength   RuleType = "minLength"
	RuleMaxLength   RuleType = "maxLength"
	RulePattern     RuleType = "pattern"
	RuleEmail       RuleType = "email"
	RulePhone       RuleType = "phone"
	RuleMinDate     RuleType = "minDate"
	RuleMaxDate     RuleType = "maxDate"
	RuleMin         RuleType = "min"
	RuleMax         RuleType = "max"
	RuleMinSelected RuleType = "minSelected"
	RuleMaxSelected RuleType = "maxSelected"
	RuleFileType    RuleType = "fileType"
	RuleMaxSize     RuleType = "maxSize"
)

// Rule represents a single validation constraint applied to a field. The
// operand lives in the typed slot matching the rule kind: Number carries
// numeric thresholds (min/max, length and cardinality bounds, maxSize in KB),
// Pattern carries a regular expression, Date an ISO-8601 date, and Kinds the
// allowed extensions or MIME types for fileType rules. A rule whose slot is
// empty for its kind always fails with a diagnostic rather than aborting the
// evaluation of sibling rules.
type Rule struct {
	Type    RuleType `json:"type" yaml:"type"`
	Message string   `json:"message" yaml:"message"`

	Number  *float64 `json:"number,omitempty" yaml:"number,omitempty"`
	Pattern string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Date    string   `json:"date,omitempty" yaml:"date,omitempty"`
	Kinds   []string `json:"kinds,omitempty" yaml:"kinds,omitempty"`
}

// Operator enumerates the comparison operators a visibility predicate can use.
type Operator string

const (
	OpEquals           Operator = "equals"
	OpNotEquals        Operator = "notEquals"
	OpContains         Operator = "contains"
	OpNotContains      Operator = "notContains"
	OpStartsWith       Operator = "startsWith"
	OpEndsWith         Operator = "endsWith"
	OpGreaterThan      Operator = "greaterThan"
	OpLessThan         Operator = "lessThan"
	OpGreaterThanEqual Operator = "greaterThanEqual"
	OpLessThanEqual    Operator = "lessThanEqual"
	OpBefore           Operator = "before"
	OpAfter            Operator = "after"
	OpChecked          Operator = "checked"
	OpUnchecked        Operator = "unchecked"
)

// Predicate makes a field or section's visibility depend on another field's
// current answer. Value is unused for checked/unchecked.
type Predicate struct {
	Field    string   `json:"field" yaml:"field"`
	Operator Operator `json:"operator" yaml:"operator"`
	Value    any      `json:"value,omitempty" yaml:"value,omitempty"`
}

// Option is one selectable choice for select/multiselect/checkbox/radio fields.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Field models one input definition. IDs must be unique across the entire
// form, not just within the owning section.
type Field struct {
	ID          string     `json:"id" yaml:"id"`
	Type        FieldType  `json:"type" yaml:"type"`
	Label       string     `json:"label" yaml:"label"`
	Placeholder string     `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	HelpText    string     `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Required    bool       `json:"required" yaml:"required"`
	Options     []Option   `json:"options,omitempty" yaml:"options,omitempty"`
	Rules       []Rule     `json:"validationRules,omitempty" yaml:"validationRules,omitempty"`
	Conditional *Predicate `json:"conditionalLogic,omitempty" yaml:"conditionalLogic,omitempty"`
	Default     any        `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
}

// Section is a named, ordered group of fields. Slice order is display order.
type Section struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []Field    `json:"fields" yaml:"fields"`
	Conditional *Predicate `json:"conditionalLogic,omitempty" yaml:"conditionalLogic,omitempty"`
}

// Form is the top-level intake-form schema.
type Form struct {
	ID           string    `json:"id" yaml:"id"`
	PracticeArea string    `json:"practiceArea" yaml:"practiceArea"`
	Title        string    `json:"title" yaml:"title"`
	Description  string    `json:"description,omitempty" yaml:"description,omitempty"`
	Version      string    `json:"version" yaml:"version"`
	Sections     []Section `json:"sections" yaml:"sections"`
	CreatedAt    time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Answers maps field ids to the respondent's current values. The core never
// persists or mutates a respondent's answer set; it only reads it during
// visibility and rule evaluation.
type Answers map[string]any

// FileMeta describes an uploaded file answer for fileType/maxSize checks.
type FileMeta struct {
	Name   string  `json:"name" yaml:"name"`
	SizeKB float64 `json:"sizeKB" yaml:"sizeKB"`
}

// FieldByID scans every section for the field with the given id.
func (f Form) FieldByID(id string) (Field, bool) {
	for _, section := range f.Sections {
		for _, field := range section.Fields {
			if field.ID == id {
				return field, true
			}
		}
	}
	return Field{}, false
}

// TypeOf resolves a field id to its declared type. Visibility evaluation uses
// this to pick operator semantics.
func (f Form) TypeOf(id string) (FieldType, bool) {
	field, ok := f.FieldByID(id)
	if !ok {
		return "", false
	}
	return field.Type, true
}

// SectionIDs returns section ids in display order.
func (f Form) SectionIDs() []string {
	out := make([]string, 0, len(f.Sections))
	for _, section := range f.Sections {
		out = append(out, section.ID)
	}
	return out
}

// FieldIDs returns every field id across all sections, flattened in display
// order.
func (f Form) FieldIDs() []string {
	var out []string
	for _, section := range f.Sections {
		for _, field := range section.Fields {
			out = append(out, field.ID)
		}
	}
	return out
}

// IDSet collects every section and field id currently in use. The editor
// consults it when generating fresh ids.
func (f Form) IDSet() map[string]struct{} {
	out := make(map[string]struct{})
	for _, section := range f.Sections {
		out[section.ID] = struct{}{}
		for _, field := range section.Fields {
			out[field.ID] = struct{}{}
		}
	}
	return out
}
