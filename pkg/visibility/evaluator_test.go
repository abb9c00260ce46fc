package visibility

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-intake/pkg/schema"
)

func guardedForm() schema.Form {
	return schema.Form{
		ID:           "frm-guarded",
		PracticeArea: "family-law",
		Title:        "Guarded Intake",
		Sections: []schema.Section{
			{
				ID:    "sec-basics",
				Title: "Basics",
				Fields: []schema.Field{
					{ID: "married", Type: schema.FieldTypeCheckbox, Label: "Married?",
						Options: []schema.Option{{Label: "Yes", Value: "yes"}}},
					{ID: "spouse-name", Type: schema.FieldTypeText, Label: "Spouse name",
						Conditional: &schema.Predicate{Field: "married", Operator: schema.OpChecked}},
				},
			},
			{
				ID:    "sec-spouse",
				Title: "Spouse details",
				Conditional: &schema.Predicate{
					Field: "married", Operator: schema.OpChecked,
				},
				Fields: []schema.Field{
					{ID: "spouse-dob", Type: schema.FieldTypeDate, Label: "Spouse date of birth"},
				},
			},
		},
	}
}

func TestEvaluatorSectionVisible(t *testing.T) {
	t.Parallel()

	form := guardedForm()
	ev := New(form)

	if !ev.SectionVisible(form.Sections[0], schema.Answers{}) {
		t.Fatal("unconditional section should be visible")
	}
	if ev.SectionVisible(form.Sections[1], schema.Answers{}) {
		t.Fatal("guarded section should be hidden before its trigger")
	}
	if !ev.SectionVisible(form.Sections[1], schema.Answers{"married": true}) {
		t.Fatal("guarded section should show once triggered")
	}
}

func TestEvaluatorFieldVisibleHiddenSection(t *testing.T) {
	t.Parallel()

	form := guardedForm()
	ev := New(form)

	spouseDOB := form.Sections[1].Fields[0]
	if ev.FieldVisible(form.Sections[1], spouseDOB, schema.Answers{}) {
		t.Fatal("field in a hidden section must be hidden even without its own predicate")
	}
	if !ev.FieldVisible(form.Sections[1], spouseDOB, schema.Answers{"married": true}) {
		t.Fatal("field should show once its section does")
	}

	spouseName := form.Sections[0].Fields[1]
	if ev.FieldVisible(form.Sections[0], spouseName, schema.Answers{"married": false}) {
		t.Fatal("field predicate should hide the field")
	}
}

func TestEvaluatorWarnings(t *testing.T) {
	t.Parallel()

	form := schema.Form{
		ID: "frm-broken",
		Sections: []schema.Section{
			{
				ID: "sec-a",
				Conditional: &schema.Predicate{
					Field: "ghost", Operator: schema.OpEquals, Value: "x",
				},
				Fields: []schema.Field{
					{ID: "loop", Type: schema.FieldTypeText, Label: "Loop",
						Conditional: &schema.Predicate{Field: "loop", Operator: schema.OpEquals, Value: "x"}},
					{ID: "amount", Type: schema.FieldTypeNumber, Label: "Amount"},
					{ID: "notes", Type: schema.FieldTypeText, Label: "Notes",
						Conditional: &schema.Predicate{Field: "amount", Operator: schema.OpContains, Value: "5"}},
				},
			},
		},
	}

	got := New(form).Warnings()
	want := []Warning{
		{Owner: "sec-a", Ref: "ghost", Reason: "condition references a missing field"},
		{Owner: "loop", Ref: "loop", Reason: "condition references its own field"},
		{Owner: "notes", Ref: "amount", Reason: `operator "contains" is not valid for number fields`},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluatorWarningsCleanForm(t *testing.T) {
	t.Parallel()

	if got := New(guardedForm()).Warnings(); len(got) != 0 {
		t.Fatalf("expected no warnings, got %v", got)
	}
}
