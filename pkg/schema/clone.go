package schema

// Clone returns a deep copy of the form. Editor mutations operate on clones
// so a snapshot handed to a caller is never aliased by later edits.
func (f Form) Clone() Form {
	out := f
	out.Sections = cloneSections(f.Sections)
	return out
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	out := s
	out.Fields = cloneFields(s.Fields)
	out.Conditional = s.Conditional.clone()
	return out
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	out := f
	out.Options = append([]Option(nil), f.Options...)
	out.Rules = cloneRules(f.Rules)
	out.Conditional = f.Conditional.clone()
	out.Default = deepCopyValue(f.Default)
	return out
}

func cloneSections(sections []Section) []Section {
	if sections == nil {
		return nil
	}
	out := make([]Section, len(sections))
	for i, section := range sections {
		out[i] = section.Clone()
	}
	return out
}

func cloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, field := range fields {
		out[i] = field.Clone()
	}
	return out
}

func cloneRules(rules []Rule) []Rule {
	if rules == nil {
		return nil
	}
	out := make([]Rule, len(rules))
	for i, rule := range rules {
		out[i] = rule
		if rule.Number != nil {
			value := *rule.Number
			out[i].Number = &value
		}
		out[i].Kinds = append([]string(nil), rule.Kinds...)
	}
	return out
}

func (p *Predicate) clone() *Predicate {
	if p == nil {
		return nil
	}
	out := *p
	out.Value = deepCopyValue(p.Value)
	return &out
}

func deepCopyValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		clone := make(map[string]any, len(typed))
		for k, v := range typed {
			clone[k] = deepCopyValue(v)
		}
		return clone
	case []any:
		clone := make([]any, len(typed))
		for i, v := range typed {
			clone[i] = deepCopyValue(v)
		}
		return clone
	case []string:
		return append([]string(nil), typed...)
	default:
		return typed
	}
}
