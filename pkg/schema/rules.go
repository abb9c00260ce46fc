package schema

// OptionsRequired reports whether a field type must declare a non-empty
// options list.
func OptionsRequired(t FieldType) bool {
	switch t {
	case FieldTypeSelect, FieldTypeMultiSelect, FieldTypeCheckbox, FieldTypeRadio:
		return true
	default:
		return false
	}
}

// allowedRules maps each field type to the constraint kinds it accepts beyond
// RuleRequired, which every type accepts.
var allowedRules = map[FieldType][]RuleType{
	FieldTypeText:        {RuleMinLength, RuleMaxLength, RulePattern},
	FieldTypeTextarea:    {RuleMinLength, RuleMaxLength, RulePattern},
	FieldTypeEmail:       {RuleMinLength, RuleMaxLength, RulePattern, RuleEmail},
	FieldTypePhone:       {RuleMinLength, RuleMaxLength, RulePattern, RulePhone},
	FieldTypeDate:        {RuleMinDate, RuleMaxDate},
	FieldTypeNumber:      {RuleMin, RuleMax},
	FieldTypeSelect:      {},
	FieldTypeRadio:       {},
	FieldTypeCheckbox:    {},
	FieldTypeMultiSelect: {RuleMinSelected, RuleMaxSelected},
	FieldTypeFile:        {RuleFileType, RuleMaxSize},
}

// AllowedRuleTypes returns the rule kinds permitted on a field of the given
// type, always starting with RuleRequired. The editing surface uses this to
// restrict the rule pickers it offers.
func AllowedRuleTypes(t FieldType) []RuleType {
	extra := allowedRules[t]
	out := make([]RuleType, 0, len(extra)+1)
	out = append(out, RuleRequired)
	out = append(out, extra...)
	return out
}

// RuleTypeAllowed reports whether a rule kind is legal on a field type.
func RuleTypeAllowed(t FieldType, rt RuleType) bool {
	if rt == RuleRequired {
		return true
	}
	for _, allowed := range allowedRules[t] {
		if allowed == rt {
			return true
		}
	}
	return false
}

var stringOperators = []Operator{
	OpEquals, OpNotEquals, OpContains, OpNotContains, OpStartsWith, OpEndsWith,
}

var allowedOperators = map[FieldType][]Operator{
	FieldTypeText:     stringOperators,
	FieldTypeTextarea: stringOperators,
	FieldTypeEmail:    stringOperators,
	FieldTypeNumber: {
		OpEquals, OpNotEquals, OpGreaterThan, OpLessThan,
		OpGreaterThanEqual, OpLessThanEqual,
	},
	FieldTypeDate:     {OpEquals, OpNotEquals, OpBefore, OpAfter},
	FieldTypeSelect:   {OpEquals, OpNotEquals},
	FieldTypeRadio:    {OpEquals, OpNotEquals},
	FieldTypeCheckbox: {OpChecked, OpUnchecked},
}

// AllowedOperators returns the legal predicate operators when the referenced
// field has the given type. Unlisted types fall back to equals/notEquals.
func AllowedOperators(t FieldType) []Operator {
	if ops, ok := allowedOperators[t]; ok {
		return ops
	}
	return []Operator{OpEquals, OpNotEquals}
}

// OperatorAllowed reports whether an operator is legal against a referenced
// field of the given type. Evaluation stays lenient when it is not; this only
// feeds editor warnings.
func OperatorAllowed(t FieldType, op Operator) bool {
	for _, allowed := range AllowedOperators(t) {
		if allowed == op {
			return true
		}
	}
	return false
}
