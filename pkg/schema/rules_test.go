package schema

import "testing"

func TestOptionsRequired(t *testing.T) {
	t.Parallel()

	withOptions := []FieldType{FieldTypeSelect, FieldTypeMultiSelect, FieldTypeCheckbox, FieldTypeRadio}
	for _, ft := range withOptions {
		if !OptionsRequired(ft) {
			t.Fatalf("expected %s to require options", ft)
		}
	}

	withoutOptions := []FieldType{FieldTypeText, FieldTypeTextarea, FieldTypeEmail, FieldTypePhone, FieldTypeDate, FieldTypeNumber, FieldTypeFile}
	for _, ft := range withoutOptions {
		if OptionsRequired(ft) {
			t.Fatalf("expected %s to not require options", ft)
		}
	}
}

func TestAllowedRuleTypesAlwaysIncludesRequired(t *testing.T) {
	t.Parallel()

	types := []FieldType{
		FieldTypeText, FieldTypeTextarea, FieldTypeEmail, FieldTypePhone,
		FieldTypeDate, FieldTypeNumber, FieldTypeSelect, FieldTypeMultiSelect,
		FieldTypeCheckbox, FieldTypeRadio, FieldTypeFile,
	}
	for _, ft := range types {
		rules := AllowedRuleTypes(ft)
		if len(rules) == 0 || rules[0] != RuleRequired {
			t.Fatalf("%s: expected required first, got %v", ft, rules)
		}
	}
}

func TestAllowedRuleTypesByFieldType(t *testing.T) {
	t.Parallel()

	if !RuleTypeAllowed(FieldTypeText, RulePattern) {
		t.Fatal("pattern should be allowed on text")
	}
	if RuleTypeAllowed(FieldTypeNumber, RulePattern) {
		t.Fatal("pattern should not be allowed on number")
	}
	if !RuleTypeAllowed(FieldTypeNumber, RuleMin) || !RuleTypeAllowed(FieldTypeNumber, RuleMax) {
		t.Fatal("min/max should be allowed on number")
	}
	if !RuleTypeAllowed(FieldTypeFile, RuleFileType) || !RuleTypeAllowed(FieldTypeFile, RuleMaxSize) {
		t.Fatal("fileType/maxSize should be allowed on file")
	}

	// Choice fields only accept required.
	for _, ft := range []FieldType{FieldTypeSelect, FieldTypeCheckbox, FieldTypeRadio} {
		got := AllowedRuleTypes(ft)
		if len(got) != 1 || got[0] != RuleRequired {
			t.Fatalf("%s: expected only required, got %v", ft, got)
		}
	}

	if !RuleTypeAllowed(FieldTypeMultiSelect, RuleMinSelected) {
		t.Fatal("minSelected should be allowed on multiselect")
	}
}

func TestAllowedOperatorsFallback(t *testing.T) {
	t.Parallel()

	got := AllowedOperators(FieldType("mystery"))
	if len(got) != 2 || got[0] != OpEquals || got[1] != OpNotEquals {
		t.Fatalf("unexpected fallback operators: %v", got)
	}

	if OperatorAllowed(FieldTypeSelect, OpContains) {
		t.Fatal("contains should be illegal for select")
	}
	if !OperatorAllowed(FieldTypeCheckbox, OpChecked) {
		t.Fatal("checked should be legal for checkbox")
	}
	if !OperatorAllowed(FieldTypeDate, OpBefore) {
		t.Fatal("before should be legal for date")
	}
	if OperatorAllowed(FieldTypeDate, OpGreaterThan) {
		t.Fatal("greaterThan should be illegal for date")
	}
}
