package visibility

import (
	"strings"
	"time"

	"github.com/goliatone/go-intake/pkg/schema"
)

// Visible decides whether the field or section guarded by pred should render
// given the respondent's current answers. A nil predicate is always visible.
//
// Evaluation is deliberately lenient: an operator that is illegal for the
// referenced field's declared type still evaluates with generic string or
// numeric semantics instead of failing, so a misconfigured predicate can
// never break a respondent's flow. Use Evaluator.Warnings to surface those
// misconfigurations to the editing surface.
//
// Unanswered fields evaluate consistently: equals is false, notEquals is
// true, string operators treat the answer as the empty string, and numeric
// and date comparisons are false.
func Visible(pred *schema.Predicate, answers schema.Answers) bool {
	if pred == nil {
		return true
	}

	answer, answered := answers[pred.Field]
	if answer == nil {
		answered = false
	}

	switch pred.Operator {
	case schema.OpEquals:
		return answered && equalValues(answer, pred.Value)
	case schema.OpNotEquals:
		return !answered || !equalValues(answer, pred.Value)
	case schema.OpContains:
		return strings.Contains(stringify(answer), stringify(pred.Value))
	case schema.OpNotContains:
		return !strings.Contains(stringify(answer), stringify(pred.Value))
	case schema.OpStartsWith:
		return strings.HasPrefix(stringify(answer), stringify(pred.Value))
	case schema.OpEndsWith:
		return strings.HasSuffix(stringify(answer), stringify(pred.Value))
	case schema.OpGreaterThan:
		got, want, ok := numericPair(answer, pred.Value)
		return ok && got > want
	case schema.OpLessThan:
		got, want, ok := numericPair(answer, pred.Value)
		return ok && got < want
	case schema.OpGreaterThanEqual:
		got, want, ok := numericPair(answer, pred.Value)
		return ok && got >= want
	case schema.OpLessThanEqual:
		got, want, ok := numericPair(answer, pred.Value)
		return ok && got <= want
	case schema.OpBefore:
		got, want, ok := datePair(answer, pred.Value)
		return ok && got.Before(want)
	case schema.OpAfter:
		got, want, ok := datePair(answer, pred.Value)
		return ok && got.After(want)
	case schema.OpChecked:
		return answer == true
	case schema.OpUnchecked:
		return answer != true
	default:
		// Unknown operators degrade to equality, the same fallback the
		// operator table applies to unrecognized field types.
		return answered && equalValues(answer, pred.Value)
	}
}

// equalValues compares an answer against a predicate operand, tolerating the
// usual type drift between stored answers and authored operands (numbers
// arriving as strings, bools as "true", option lists as []any vs []string).
func equalValues(answer, operand any) bool {
	if answer == nil || operand == nil {
		return answer == nil && operand == nil
	}

	if a, ok := toBool(answer); ok {
		if b, ok := toBool(operand); ok {
			return a == b
		}
	}
	if a, ok := toNumber(answer); ok {
		if b, ok := toNumber(operand); ok {
			return a == b
		}
	}

	aList, aIsList := toStringSlice(answer)
	bList, bIsList := toStringSlice(operand)
	if aIsList || bIsList {
		if !aIsList || !bIsList || len(aList) != len(bList) {
			return false
		}
		for i := range aList {
			if aList[i] != bList[i] {
				return false
			}
		}
		return true
	}

	return stringify(answer) == stringify(operand)
}

func numericPair(answer, operand any) (float64, float64, bool) {
	got, ok := toNumber(answer)
	if !ok {
		return 0, 0, false
	}
	want, ok := toNumber(operand)
	if !ok {
		return 0, 0, false
	}
	return got, want, true
}

func datePair(answer, operand any) (time.Time, time.Time, bool) {
	got, ok := toDate(answer)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	want, ok := toDate(operand)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return got, want, true
}
