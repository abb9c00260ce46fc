// Package testsupport provides fixture helpers shared by package tests.
package testsupport

import (
	"strconv"
	"testing"
	"time"

	"github.com/goliatone/go-intake/pkg/schema"
)

// FixedTime is the deterministic clock used by editor and codec tests.
var FixedTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// SequenceIDs returns an id generator yielding prefix-1, prefix-2, ... so
// tests get stable identifiers.
func SequenceIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}

// IntakeForm builds a small but representative form: client details with a
// conditional follow-up, and an uploads section.
func IntakeForm(t *testing.T) schema.Form {
	t.Helper()

	return schema.Form{
		ID:           "frm-intake",
		PracticeArea: "family-law",
		Title:        "Client Intake",
		Version:      "1.0",
		CreatedAt:    FixedTime,
		UpdatedAt:    FixedTime,
		Sections: []schema.Section{
			{
				ID:    "sec-client",
				Title: "Client Details",
				Fields: []schema.Field{
					{
						ID:       "full-name",
						Type:     schema.FieldTypeText,
						Label:    "Full name",
						Required: true,
						Rules: []schema.Rule{
							schema.MinLength(2, "name is too short"),
							schema.MaxLength(120, "name is too long"),
						},
					},
					{
						ID:    "email",
						Type:  schema.FieldTypeEmail,
						Label: "Email address",
						Rules: []schema.Rule{
							schema.EmailRule("enter a valid email"),
						},
					},
					{
						ID:       "represented",
						Type:     schema.FieldTypeCheckbox,
						Label:    "Previously represented?",
						Options:  []schema.Option{{Label: "Yes", Value: "yes"}},
						Required: false,
					},
					{
						ID:    "prior-firm",
						Type:  schema.FieldTypeText,
						Label: "Prior firm",
						Conditional: &schema.Predicate{
							Field:    "represented",
							Operator: schema.OpChecked,
						},
					},
				},
			},
			{
				ID:    "sec-uploads",
				Title: "Documents",
				Fields: []schema.Field{
					{
						ID:    "retainer",
						Type:  schema.FieldTypeFile,
						Label: "Signed retainer",
						Rules: []schema.Rule{
							schema.FileTypes([]string{"pdf"}, "PDF only"),
							schema.MaxSizeKB(2048, "file too large"),
						},
					},
				},
			},
		},
	}
}
