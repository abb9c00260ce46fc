package schema

// Constructors for the common rule shapes. They keep the typed operand slot
// and the rule kind in sync so callers cannot build a structurally
// inconsistent rule by hand.

func Required(message string) Rule {
	return Rule{Type: RuleRequired, Message: message}
}

func MinLength(n int, message string) Rule {
	return numberRule(RuleMinLength, float64(n), message)
}

func MaxLength(n int, message string) Rule {
	return numberRule(RuleMaxLength, float64(n), message)
}

func PatternRule(expr, message string) Rule {
	return Rule{Type: RulePattern, Pattern: expr, Message: message}
}

func EmailRule(message string) Rule {
	return Rule{Type: RuleEmail, Message: message}
}

func PhoneRule(message string) Rule {
	return Rule{Type: RulePhone, Message: message}
}

// MinDate bounds a date field from below; date is ISO-8601 (2006-01-02).
func MinDate(date, message string) Rule {
	return Rule{Type: RuleMinDate, Date: date, Message: message}
}

// MaxDate bounds a date field from above; date is ISO-8601 (2006-01-02).
func MaxDate(date, message string) Rule {
	return Rule{Type: RuleMaxDate, Date: date, Message: message}
}

func Min(n float64, message string) Rule {
	return numberRule(RuleMin, n, message)
}

func Max(n float64, message string) Rule {
	return numberRule(RuleMax, n, message)
}

func MinSelected(n int, message string) Rule {
	return numberRule(RuleMinSelected, float64(n), message)
}

func MaxSelected(n int, message string) Rule {
	return numberRule(RuleMaxSelected, float64(n), message)
}

// FileTypes restricts uploads to the given extensions or MIME types.
func FileTypes(kinds []string, message string) Rule {
	return Rule{Type: RuleFileType, Kinds: append([]string(nil), kinds...), Message: message}
}

// MaxSizeKB caps an upload's size in kilobytes.
func MaxSizeKB(n float64, message string) Rule {
	return numberRule(RuleMaxSize, n, message)
}

func numberRule(kind RuleType, n float64, message string) Rule {
	value := n
	return Rule{Type: kind, Number: &value, Message: message}
}
