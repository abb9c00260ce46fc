package schema

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce   sync.Once
	strictPolicy *bluemonday.Policy
	inlinePolicy *bluemonday.Policy
)

// SanitizeText strips all markup from a display string. Labels, titles and
// option labels are plain text.
func SanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	strict, _ := displayPolicies()
	return strings.TrimSpace(strict.Sanitize(trimmed))
}

// SanitizeHelp keeps basic inline formatting in help text and descriptions
// while stripping everything that could execute or restyle the page.
func SanitizeHelp(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	_, inline := displayPolicies()
	return strings.TrimSpace(inline.Sanitize(trimmed))
}

// Sanitize cleans every display string in the form tree in place. The codec
// applies it after decoding so untrusted definitions never carry live markup
// into the editing surface.
func (f *Form) Sanitize() {
	f.Title = SanitizeText(f.Title)
	f.Description = SanitizeHelp(f.Description)
	for si := range f.Sections {
		section := &f.Sections[si]
		section.Title = SanitizeText(section.Title)
		section.Description = SanitizeHelp(section.Description)
		for fi := range section.Fields {
			field := &section.Fields[fi]
			field.Label = SanitizeText(field.Label)
			field.Placeholder = SanitizeText(field.Placeholder)
			field.HelpText = SanitizeHelp(field.HelpText)
			for oi := range field.Options {
				field.Options[oi].Label = SanitizeText(field.Options[oi].Label)
			}
		}
	}
}

func displayPolicies() (*bluemonday.Policy, *bluemonday.Policy) {
	policyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		inline := bluemonday.StrictPolicy()
		inline.AllowElements("b", "i", "em", "strong", "code", "br")
		inline.AllowAttrs("href").OnElements("a")
		inline.AllowStandardURLs()
		inlinePolicy = inline
	})
	return strictPolicy, inlinePolicy
}
