package validation

import (
	"strings"

	"github.com/goliatone/go-intake/pkg/schema"
)

// Error keys used by ValidateForm. Section and field level problems share the
// KeySections slot; later checks overwrite earlier ones.
const (
	KeyPracticeArea = "practiceArea"
	KeyTitle        = "title"
	KeySections     = "sections"
)

// Form-level messages. The sections key carries whichever structural check
// failed last.
const (
	MsgPracticeAreaRequired = "practice area is required"
	MsgTitleRequired        = "title is required"
	MsgSectionsRequired     = "at least one section required"
	MsgSectionsNeedFields   = "all sections must have at least one field"
	MsgDuplicateSectionIDs  = "duplicate section IDs"
	MsgDuplicateFieldIDs    = "duplicate field IDs"
)

// Result maps error keys to user-facing messages. An empty result means the
// form is structurally valid.
type Result map[string]string

// Valid reports whether no check failed.
func (r Result) Valid() bool { return len(r) == 0 }

// Message returns the message stored under a key, if any.
func (r Result) Message(key string) (string, bool) {
	msg, ok := r[key]
	return msg, ok
}

// ValidateForm runs every structural check over a form snapshot, accumulating
// problems instead of stopping at the first. Checks sharing the sections key
// run in a fixed order (duplicate section ids, duplicate field ids, empty
// sections) and each overwrites the previous message rather than appending;
// the editing surface renders a single message per slot.
func ValidateForm(form schema.Form) Result {
	result := Result{}

	if strings.TrimSpace(form.PracticeArea) == "" {
		result[KeyPracticeArea] = MsgPracticeAreaRequired
	}
	if strings.TrimSpace(form.Title) == "" {
		result[KeyTitle] = MsgTitleRequired
	}

	if len(form.Sections) == 0 {
		result[KeySections] = MsgSectionsRequired
		return result
	}

	if hasDuplicates(form.SectionIDs()) {
		result[KeySections] = MsgDuplicateSectionIDs
	}
	if hasDuplicates(form.FieldIDs()) {
		result[KeySections] = MsgDuplicateFieldIDs
	}
	for _, section := range form.Sections {
		if len(section.Fields) == 0 {
			result[KeySections] = MsgSectionsNeedFields
			break
		}
	}

	return result
}

// hasDuplicates reports whether any id's first occurrence differs from its
// own position.
func hasDuplicates(ids []string) bool {
	for i, id := range ids {
		for j := 0; j < i; j++ {
			if ids[j] == id {
				return true
			}
		}
	}
	return false
}
