// Package openapi publishes a form definition as an OpenAPI 3 document
// describing the submission endpoint the backend exposes for it. Field types
// and validation rules map onto the closest JSON-schema constraints so the
// backend can validate submissions with the same bounds the editor declared.
package openapi

import (
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-intake/pkg/schema"
)

// Document builds the OpenAPI description of the form's submission endpoint.
func Document(form schema.Form) (*openapi3.T, error) {
	if form.ID == "" {
		return nil, errors.New("export/openapi: form id is required")
	}

	body := openapi3.NewObjectSchema()
	body.Properties = openapi3.Schemas{}
	for _, section := range form.Sections {
		for _, field := range section.Fields {
			body.Properties[field.ID] = openapi3.NewSchemaRef("", fieldSchema(field))
			if field.Required && field.Conditional == nil {
				body.Required = append(body.Required, field.ID)
			}
		}
	}

	op := openapi3.NewOperation()
	op.OperationID = "submit-" + form.ID
	op.Summary = "Submit " + form.Title
	op.Description = form.Description
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(body),
	}
	op.Responses = openapi3.NewResponses()

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       form.Title,
			Version:     version(form),
			Description: form.Description,
		},
		Paths: openapi3.NewPaths(),
	}
	doc.Paths.Set(fmt.Sprintf("/forms/%s/submissions", form.ID), &openapi3.PathItem{Post: op})

	return doc, nil
}

// Marshal renders the submission document as JSON.
func Marshal(form schema.Form) ([]byte, error) {
	doc, err := Document(form)
	if err != nil {
		return nil, err
	}
	data, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("export/openapi: marshal: %w", err)
	}
	return data, nil
}

func version(form schema.Form) string {
	if form.Version != "" {
		return form.Version
	}
	return "1.0"
}

func fieldSchema(field schema.Field) *openapi3.Schema {
	var out *openapi3.Schema

	switch field.Type {
	case schema.FieldTypeNumber:
		out = openapi3.NewFloat64Schema()
	case schema.FieldTypeDate:
		out = openapi3.NewStringSchema().WithFormat("date")
	case schema.FieldTypeEmail:
		out = openapi3.NewStringSchema().WithFormat("email")
	case schema.FieldTypeFile:
		out = openapi3.NewStringSchema().WithFormat("binary")
	case schema.FieldTypeSelect, schema.FieldTypeRadio:
		out = openapi3.NewStringSchema()
		out.Enum = optionValues(field.Options)
	case schema.FieldTypeMultiSelect, schema.FieldTypeCheckbox:
		items := openapi3.NewStringSchema()
		items.Enum = optionValues(field.Options)
		out = openapi3.NewArraySchema()
		out.Items = openapi3.NewSchemaRef("", items)
	default:
		out = openapi3.NewStringSchema()
	}

	out.Title = field.Label
	out.Description = field.HelpText
	if field.Default != nil {
		out.Default = field.Default
	}
	applyRules(out, field.Rules)
	return out
}

func applyRules(target *openapi3.Schema, rules []schema.Rule) {
	for _, rule := range rules {
		switch rule.Type {
		case schema.RuleMinLength:
			if n, ok := uintOperand(rule); ok {
				target.MinLength = n
			}
		case schema.RuleMaxLength:
			if n, ok := uintOperand(rule); ok {
				bound := n
				target.MaxLength = &bound
			}
		case schema.RulePattern:
			if rule.Pattern != "" {
				target.Pattern = rule.Pattern
			}
		case schema.RuleMin:
			if rule.Number != nil {
				value := *rule.Number
				target.Min = &value
			}
		case schema.RuleMax:
			if rule.Number != nil {
				value := *rule.Number
				target.Max = &value
			}
		case schema.RuleMinSelected:
			if n, ok := uintOperand(rule); ok {
				target.MinItems = n
			}
		case schema.RuleMaxSelected:
			if n, ok := uintOperand(rule); ok {
				bound := n
				target.MaxItems = &bound
			}
		}
	}
}

func uintOperand(rule schema.Rule) (uint64, bool) {
	if rule.Number == nil || *rule.Number < 0 {
		return 0, false
	}
	return uint64(*rule.Number), true
}

func optionValues(options []schema.Option) []any {
	out := make([]any, 0, len(options))
	for _, option := range options {
		out = append(out, option.Value)
	}
	return out
}
