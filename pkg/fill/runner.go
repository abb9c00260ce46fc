// Package fill runs a terminal preview of a form definition: it walks
// sections and fields in display order, re-evaluates conditional visibility
// against the answers collected so far, and enforces field rules with a
// re-prompt loop. Practice surfaces use it to exercise a draft form without
// deploying it.
package fill

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goliatone/go-intake/pkg/schema"
	"github.com/goliatone/go-intake/pkg/validation"
	"github.com/goliatone/go-intake/pkg/visibility"
)

// Runner drives one fill session over a form.
type Runner struct {
	driver PromptDriver
}

// Option configures a Runner.
type Option func(*Runner)

// WithPromptDriver overrides the survey-backed default, mainly for tests.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// New constructs a Runner with the terminal driver.
func New(options ...Option) *Runner {
	r := &Runner{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Run collects answers for every currently-visible field, seeding from
// prefill. Hidden sections and fields are skipped; visibility is re-evaluated
// per field so an answer can reveal later fields in the same pass.
func (r *Runner) Run(ctx context.Context, form schema.Form, prefill schema.Answers) (schema.Answers, error) {
	if ctx == nil {
		return nil, errors.New("fill: context is required")
	}

	answers := schema.Answers{}
	for id, value := range prefill {
		answers[id] = value
	}

	eval := visibility.New(form)
	for _, section := range form.Sections {
		if !eval.SectionVisible(section, answers) {
			continue
		}
		if section.Title != "" {
			if err := r.driver.Info(ctx, sectionBanner(section)); err != nil {
				return nil, err
			}
		}
		for _, field := range section.Fields {
			if !eval.FieldVisible(section, field, answers) {
				continue
			}
			if err := r.promptField(ctx, field, answers); err != nil {
				return nil, err
			}
		}
	}
	return answers, nil
}

func (r *Runner) promptField(ctx context.Context, field schema.Field, answers schema.Answers) error {
	for {
		value, err := r.collect(ctx, field, answers)
		if err != nil {
			return err
		}

		violations := validation.CheckField(field, value)
		if len(violations) == 0 {
			answers[field.ID] = value
			return nil
		}
		for _, v := range violations {
			if err := r.driver.Info(ctx, fmt.Sprintf("! %s: %s", field.ID, v.Message)); err != nil {
				return err
			}
		}
	}
}

func (r *Runner) collect(ctx context.Context, field schema.Field, answers schema.Answers) (any, error) {
	label := displayLabel(field)
	help := field.HelpText

	switch field.Type {
	case schema.FieldTypeTextarea:
		return r.driver.TextArea(ctx, InputConfig{
			Message: label,
			Default: previousString(answers, field),
			Help:    help,
		})

	case schema.FieldTypeNumber:
		raw, err := r.driver.Input(ctx, InputConfig{
			Message: label,
			Default: previousString(answers, field),
			Help:    help,
		})
		if err != nil {
			return nil, err
		}
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return nil, nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			if infoErr := r.driver.Info(ctx, fmt.Sprintf("! %s: not a number", field.ID)); infoErr != nil {
				return nil, infoErr
			}
			return r.collect(ctx, field, answers)
		}
		return parsed, nil

	case schema.FieldTypeSelect, schema.FieldTypeRadio:
		labels, values := optionLists(field.Options)
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      labels,
			DefaultIndex: valueIndex(values, previousString(answers, field)),
			Help:         help,
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(values) {
			return nil, nil
		}
		return values[idx], nil

	case schema.FieldTypeMultiSelect, schema.FieldTypeCheckbox:
		if field.Type == schema.FieldTypeCheckbox && len(field.Options) <= 1 {
			// A lone checkbox is a boolean answer, which is also what
			// checked/unchecked predicates test against.
			return r.driver.Confirm(ctx, ConfirmConfig{
				Message: label,
				Default: answers[field.ID] == true,
				Help:    help,
			})
		}
		labels, values := optionLists(field.Options)
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  label,
			Options:  labels,
			Defaults: valueIndices(values, previousList(answers, field)),
			Help:     help,
		})
		if err != nil {
			return nil, err
		}
		var selected []string
		for _, idx := range indices {
			if idx >= 0 && idx < len(values) {
				selected = append(selected, values[idx])
			}
		}
		return selected, nil

	case schema.FieldTypeFile:
		path, err := r.driver.Input(ctx, InputConfig{
			Message: label,
			Help:    help,
		})
		if err != nil {
			return nil, err
		}
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			return nil, nil
		}
		return fileAnswer(trimmed), nil

	default:
		// text, email, phone, date
		return r.driver.Input(ctx, InputConfig{
			Message: label,
			Default: previousString(answers, field),
			Help:    dateHint(field, help),
		})
	}
}

// fileAnswer builds the upload metadata the rule checks consume. A path that
// cannot be measured still carries its name so fileType rules apply.
func fileAnswer(path string) schema.FileMeta {
	meta := schema.FileMeta{Name: filepath.Base(path)}
	if stat, err := os.Stat(path); err == nil {
		meta.SizeKB = float64(stat.Size()) / 1024
	}
	return meta
}

func sectionBanner(section schema.Section) string {
	if section.Description != "" {
		return fmt.Sprintf("== %s — %s", section.Title, section.Description)
	}
	return "== " + section.Title
}

func displayLabel(field schema.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.ID
}

func dateHint(field schema.Field, help string) string {
	if field.Type != schema.FieldTypeDate {
		return help
	}
	if help == "" {
		return "YYYY-MM-DD"
	}
	return help + " (YYYY-MM-DD)"
}

func previousString(answers schema.Answers, field schema.Field) string {
	if v, ok := answers[field.ID]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		if f, ok := v.(float64); ok {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	if s, ok := field.Default.(string); ok {
		return s
	}
	return ""
}

func previousList(answers schema.Answers, field schema.Field) []string {
	switch v := answers[field.ID].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return nil
	}
}

func optionLists(options []schema.Option) ([]string, []string) {
	labels := make([]string, len(options))
	values := make([]string, len(options))
	for i, option := range options {
		labels[i] = option.Label
		if labels[i] == "" {
			labels[i] = option.Value
		}
		values[i] = option.Value
	}
	return labels, values
}

func valueIndex(values []string, value string) int {
	if value == "" {
		return -1
	}
	for i, v := range values {
		if v == value {
			return i
		}
	}
	return -1
}

func valueIndices(values, selected []string) []int {
	if len(selected) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(selected))
	for _, v := range selected {
		seen[v] = struct{}{}
	}
	var out []int
	for i, v := range values {
		if _, ok := seen[v]; ok {
			out = append(out, i)
		}
	}
	return out
}
