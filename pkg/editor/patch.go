package editor

import "github.com/goliatone/go-intake/pkg/schema"

// SectionPatch carries the fields of a section to replace. Nil pointers leave
// the current value untouched; ClearConditional removes an existing
// predicate.
type SectionPatch struct {
	ID               *string
	Title            *string
	Description      *string
	Conditional      *schema.Predicate
	ClearConditional bool
}

func (p SectionPatch) apply(section *schema.Section) {
	if p.ID != nil {
		section.ID = *p.ID
	}
	if p.Title != nil {
		section.Title = *p.Title
	}
	if p.Description != nil {
		section.Description = *p.Description
	}
	if p.Conditional != nil {
		pred := *p.Conditional
		section.Conditional = &pred
	}
	if p.ClearConditional {
		section.Conditional = nil
	}
}

// FieldPatch carries the attributes of a field to replace. Nil pointers leave
// the current value untouched. Options and Rules replace wholesale when
// non-nil; pass an empty non-nil slice to clear them. Default is applied only
// when SetDefault is true so a nil default can be set explicitly.
type FieldPatch struct {
	ID               *string
	Type             *schema.FieldType
	Label            *string
	Placeholder      *string
	HelpText         *string
	Required         *bool
	Options          []schema.Option
	Rules            []schema.Rule
	Conditional      *schema.Predicate
	ClearConditional bool
	Default          any
	SetDefault       bool
}

func (p FieldPatch) apply(field *schema.Field) {
	if p.ID != nil {
		field.ID = *p.ID
	}
	if p.Type != nil {
		field.Type = *p.Type
	}
	if p.Label != nil {
		field.Label = *p.Label
	}
	if p.Placeholder != nil {
		field.Placeholder = *p.Placeholder
	}
	if p.HelpText != nil {
		field.HelpText = *p.HelpText
	}
	if p.Required != nil {
		field.Required = *p.Required
	}
	if p.Options != nil {
		field.Options = append([]schema.Option(nil), p.Options...)
	}
	if p.Rules != nil {
		field.Rules = append([]schema.Rule(nil), p.Rules...)
	}
	if p.Conditional != nil {
		pred := *p.Conditional
		field.Conditional = &pred
	}
	if p.ClearConditional {
		field.Conditional = nil
	}
	if p.SetDefault {
		field.Default = p.Default
	}
}
