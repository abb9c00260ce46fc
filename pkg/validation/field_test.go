package validation

import (
	"strings"
	"testing"

	"github.com/goliatone/go-intake/pkg/schema"
)

func textField(rules ...schema.Rule) schema.Field {
	return schema.Field{ID: "f1", Type: schema.FieldTypeText, Label: "Field", Rules: rules}
}

func TestCheckFieldRequired(t *testing.T) {
	t.Parallel()

	field := textField()
	field.Required = true

	if got := CheckField(field, "  "); len(got) != 1 || got[0].Rule != schema.RuleRequired {
		t.Fatalf("whitespace should fail required: %v", got)
	}
	if got := CheckField(field, nil); len(got) != 1 {
		t.Fatalf("nil should fail required: %v", got)
	}
	if got := CheckField(field, "ok"); len(got) != 0 {
		t.Fatalf("value should pass required: %v", got)
	}

	multi := schema.Field{ID: "m", Type: schema.FieldTypeMultiSelect, Required: true}
	if got := CheckField(multi, []string{}); len(got) != 1 {
		t.Fatalf("empty selection should fail required: %v", got)
	}
	if got := CheckField(multi, []string{"a"}); len(got) != 0 {
		t.Fatalf("selection should pass required: %v", got)
	}
}

func TestCheckFieldRequiredRuleMessageWins(t *testing.T) {
	t.Parallel()

	field := textField(schema.Required("please enter your name"))
	field.Required = true

	got := CheckField(field, "")
	if len(got) != 1 {
		t.Fatalf("expected one violation, got %v", got)
	}
	if got[0].Message != "please enter your name" {
		t.Fatalf("expected the rule's message, got %q", got[0].Message)
	}
}

func TestCheckFieldNonRequiredRulesSkipEmptyValues(t *testing.T) {
	t.Parallel()

	field := textField(schema.MinLength(5, "too short"))
	if got := CheckField(field, ""); len(got) != 0 {
		t.Fatalf("empty optional value should not run length checks: %v", got)
	}
}

func TestCheckFieldLengthAndPattern(t *testing.T) {
	t.Parallel()

	field := textField(
		schema.MinLength(3, "too short"),
		schema.MaxLength(5, "too long"),
		schema.PatternRule(`^[a-z]+$`, "lowercase only"),
	)

	if got := CheckField(field, "ab"); len(got) != 1 || got[0].Message != "too short" {
		t.Fatalf("min length: %v", got)
	}
	if got := CheckField(field, "abcdef"); len(got) != 1 || got[0].Message != "too long" {
		t.Fatalf("max length: %v", got)
	}
	if got := CheckField(field, "ABC"); len(got) != 1 || got[0].Message != "lowercase only" {
		t.Fatalf("pattern: %v", got)
	}
	if got := CheckField(field, "abcd"); len(got) != 0 {
		t.Fatalf("valid value: %v", got)
	}
}

// Rules accumulate: one failing rule reports one message, several failing
// rules report all of them, and no early exit hides later rules.
func TestCheckFieldAccumulatesIndependently(t *testing.T) {
	t.Parallel()

	number := schema.Field{
		ID:   "n",
		Type: schema.FieldTypeNumber,
		Rules: []schema.Rule{
			schema.Min(5, "below minimum"),
			schema.Max(5, "above maximum"),
		},
	}

	got := CheckField(number, 7.0)
	if len(got) != 1 || got[0].Message != "above maximum" {
		t.Fatalf("expected exactly the max violation, got %v", got)
	}

	strict := textField(
		schema.MinLength(10, "too short"),
		schema.PatternRule(`^[0-9]+$`, "digits only"),
	)
	got = CheckField(strict, "abc")
	if len(got) != 2 {
		t.Fatalf("expected both violations, got %v", got)
	}
	if got[0].Message != "too short" || got[1].Message != "digits only" {
		t.Fatalf("unexpected messages: %v", got)
	}
}

func TestCheckFieldEmailAndPhone(t *testing.T) {
	t.Parallel()

	email := schema.Field{ID: "e", Type: schema.FieldTypeEmail, Rules: []schema.Rule{schema.EmailRule("bad email")}}
	if got := CheckField(email, "not-an-email"); len(got) != 1 {
		t.Fatalf("invalid email: %v", got)
	}
	if got := CheckField(email, "a@b.co"); len(got) != 0 {
		t.Fatalf("valid email: %v", got)
	}

	phone := schema.Field{ID: "p", Type: schema.FieldTypePhone, Rules: []schema.Rule{schema.PhoneRule("bad phone")}}
	if got := CheckField(phone, "+1 (555) 867-5309"); len(got) != 0 {
		t.Fatalf("valid phone: %v", got)
	}
	if got := CheckField(phone, "abc"); len(got) != 1 {
		t.Fatalf("invalid phone: %v", got)
	}
}

func TestCheckFieldDates(t *testing.T) {
	t.Parallel()

	field := schema.Field{
		ID:   "d",
		Type: schema.FieldTypeDate,
		Rules: []schema.Rule{
			schema.MinDate("2024-01-01", "too early"),
			schema.MaxDate("2024-12-31", "too late"),
		},
	}

	if got := CheckField(field, "2023-06-15"); len(got) != 1 || got[0].Message != "too early" {
		t.Fatalf("min date: %v", got)
	}
	if got := CheckField(field, "2025-01-01"); len(got) != 1 || got[0].Message != "too late" {
		t.Fatalf("max date: %v", got)
	}
	if got := CheckField(field, "2024-06-15"); len(got) != 0 {
		t.Fatalf("valid date: %v", got)
	}
}

func TestCheckFieldSelectionBounds(t *testing.T) {
	t.Parallel()

	field := schema.Field{
		ID:   "tags",
		Type: schema.FieldTypeMultiSelect,
		Rules: []schema.Rule{
			schema.MinSelected(2, "pick at least two"),
			schema.MaxSelected(3, "pick at most three"),
		},
	}

	if got := CheckField(field, []string{"a"}); len(got) != 1 || got[0].Message != "pick at least two" {
		t.Fatalf("min selected: %v", got)
	}
	if got := CheckField(field, []string{"a", "b", "c", "d"}); len(got) != 1 || got[0].Message != "pick at most three" {
		t.Fatalf("max selected: %v", got)
	}
	if got := CheckField(field, []string{"a", "b"}); len(got) != 0 {
		t.Fatalf("valid selection: %v", got)
	}
}

func TestCheckFieldFileRules(t *testing.T) {
	t.Parallel()

	field := schema.Field{
		ID:   "doc",
		Type: schema.FieldTypeFile,
		Rules: []schema.Rule{
			schema.FileTypes([]string{"pdf", ".docx"}, "unsupported type"),
			schema.MaxSizeKB(1024, "too big"),
		},
	}

	ok := schema.FileMeta{Name: "retainer.PDF", SizeKB: 100}
	if got := CheckField(field, ok); len(got) != 0 {
		t.Fatalf("valid file: %v", got)
	}

	wrongType := schema.FileMeta{Name: "notes.txt", SizeKB: 10}
	if got := CheckField(field, wrongType); len(got) != 1 || got[0].Message != "unsupported type" {
		t.Fatalf("wrong type: %v", got)
	}

	tooBig := schema.FileMeta{Name: "scan.pdf", SizeKB: 4096}
	if got := CheckField(field, tooBig); len(got) != 1 || got[0].Message != "too big" {
		t.Fatalf("too big: %v", got)
	}
}

// A malformed rule fails with a diagnostic instead of throwing or silencing
// its siblings.
func TestCheckFieldMalformedRule(t *testing.T) {
	t.Parallel()

	field := schema.Field{
		ID:   "n",
		Type: schema.FieldTypeNumber,
		Rules: []schema.Rule{
			{Type: schema.RuleMin, Message: "too small"}, // operand missing
			schema.Max(10, "too big"),
		},
	}

	got := CheckField(field, 3.0)
	if len(got) != 1 {
		t.Fatalf("expected only the malformed rule to fail, got %v", got)
	}
	if !strings.Contains(got[0].Message, "missing numeric bound") {
		t.Fatalf("expected diagnostic message, got %q", got[0].Message)
	}

	badPattern := textField(schema.PatternRule(`([`, "invalid"))
	got = CheckField(badPattern, "value")
	if len(got) != 1 || !strings.Contains(got[0].Message, "invalid pattern") {
		t.Fatalf("expected pattern diagnostic, got %v", got)
	}
}
