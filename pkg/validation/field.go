package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-intake/pkg/schema"
)

// Violation is one failing rule on a field. Each failing rule contributes its
// own entry so the editing surface can render one message per rule row.
type Violation struct {
	Rule    schema.RuleType `json:"rule"`
	Message string          `json:"message"`
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-().]{7,20}$`)
)

// CheckField evaluates every rule attached to the field against a candidate
// answer, accumulating a violation per failing rule. The field's own Required
// flag is honored ahead of the rule list. Rules other than required are
// skipped while the answer is still empty, so respondents are not shouted at
// before they type. A rule with a malformed operand fails with a diagnostic
// message instead of aborting its siblings.
func CheckField(field schema.Field, value any) []Violation {
	var out []Violation

	if field.Required && isEmpty(value) {
		out = append(out, Violation{
			Rule:    schema.RuleRequired,
			Message: requiredMessage(field),
		})
	}

	for _, rule := range field.Rules {
		if rule.Type == schema.RuleRequired {
			if isEmpty(value) && !field.Required {
				out = append(out, violation(rule))
			}
			continue
		}
		if isEmpty(value) {
			continue
		}
		if failed, diagnostic := ruleFails(rule, value); failed {
			v := violation(rule)
			if diagnostic != "" {
				v.Message = diagnostic
			}
			out = append(out, v)
		}
	}

	return out
}

// ruleFails evaluates one non-required rule. It returns failed=true with an
// optional diagnostic overriding the rule's message when the rule itself is
// malformed.
func ruleFails(rule schema.Rule, value any) (bool, string) {
	switch rule.Type {
	case schema.RuleMinLength:
		bound, ok := numberOperand(rule)
		if !ok {
			return true, diagnostic(rule, "missing numeric bound")
		}
		return float64(len([]rune(stringify(value)))) < bound, ""

	case schema.RuleMaxLength:
		bound, ok := numberOperand(rule)
		if !ok {
			return true, diagnostic(rule, "missing numeric bound")
		}
		return float64(len([]rune(stringify(value)))) > bound, ""

	case schema.RulePattern:
		if strings.TrimSpace(rule.Pattern) == "" {
			return true, diagnostic(rule, "missing pattern")
		}
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return true, diagnostic(rule, "invalid pattern")
		}
		return !re.MatchString(stringify(value)), ""

	case schema.RuleEmail:
		return !emailPattern.MatchString(strings.TrimSpace(stringify(value))), ""

	case schema.RulePhone:
		return !phonePattern.MatchString(strings.TrimSpace(stringify(value))), ""

	case schema.RuleMinDate:
		bound, ok := dateOperand(rule)
		if !ok {
			return true, diagnostic(rule, "missing or invalid date bound")
		}
		answer, ok := parseDate(stringify(value))
		if !ok {
			return true, ""
		}
		return answer.Before(bound), ""

	case schema.RuleMaxDate:
		bound, ok := dateOperand(rule)
		if !ok {
			return true, diagnostic(rule, "missing or invalid date bound")
		}
		answer, ok := parseDate(stringify(value))
		if !ok {
			return true, ""
		}
		return answer.After(bound), ""

	case schema.RuleMin:
		bound, ok := numberOperand(rule)
		if !ok {
			return true, diagnostic(rule, "missing numeric bound")
		}
		answer, ok := toNumber(value)
		if !ok {
			return true, ""
		}
		return answer < bound, ""

	case schema.RuleMax:
		bound, ok := numberOperand(rule)
		if !ok {
			return true, diagnostic(rule, "missing numeric bound")
		}
		answer, ok := toNumber(value)
		if !ok {
			return true, ""
		}
		return answer > bound, ""

	case schema.RuleMinSelected:
		bound, ok := numberOperand(rule)
		if !ok {
			return true, diagnostic(rule, "missing numeric bound")
		}
		return float64(cardinality(value)) < bound, ""

	case schema.RuleMaxSelected:
		bound, ok := numberOperand(rule)
		if !ok {
			return true, diagnostic(rule, "missing numeric bound")
		}
		return float64(cardinality(value)) > bound, ""

	case schema.RuleFileType:
		if len(rule.Kinds) == 0 {
			return true, diagnostic(rule, "missing allowed file types")
		}
		file, ok := fileMeta(value)
		if !ok {
			return true, ""
		}
		return !kindAllowed(file.Name, rule.Kinds), ""

	case schema.RuleMaxSize:
		bound, ok := numberOperand(rule)
		if !ok {
			return true, diagnostic(rule, "missing numeric bound")
		}
		file, ok := fileMeta(value)
		if !ok {
			return true, ""
		}
		return file.SizeKB > bound, ""

	default:
		return true, diagnostic(rule, "unknown rule type")
	}
}

func violation(rule schema.Rule) Violation {
	return Violation{Rule: rule.Type, Message: rule.Message}
}

func diagnostic(rule schema.Rule, reason string) string {
	return fmt.Sprintf("%s rule: %s", rule.Type, reason)
}

func requiredMessage(field schema.Field) string {
	for _, rule := range field.Rules {
		if rule.Type == schema.RuleRequired && rule.Message != "" {
			return rule.Message
		}
	}
	label := field.Label
	if label == "" {
		label = field.ID
	}
	return fmt.Sprintf("%s is required", label)
}

func numberOperand(rule schema.Rule) (float64, bool) {
	if rule.Number == nil {
		return 0, false
	}
	return *rule.Number, true
}

func dateOperand(rule schema.Rule) (time.Time, bool) {
	return parseDate(rule.Date)
}

func parseDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case schema.FileMeta:
		return v.Name == ""
	case *schema.FileMeta:
		return v == nil || v.Name == ""
	default:
		return false
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}

func cardinality(value any) int {
	switch v := value.(type) {
	case []any:
		return len(v)
	case []string:
		return len(v)
	case nil:
		return 0
	default:
		return 1
	}
}

func fileMeta(value any) (schema.FileMeta, bool) {
	switch v := value.(type) {
	case schema.FileMeta:
		return v, true
	case *schema.FileMeta:
		if v == nil {
			return schema.FileMeta{}, false
		}
		return *v, true
	case map[string]any:
		meta := schema.FileMeta{Name: stringify(v["name"])}
		if size, ok := toNumber(v["sizeKB"]); ok {
			meta.SizeKB = size
		}
		return meta, meta.Name != ""
	default:
		return schema.FileMeta{}, false
	}
}

func kindAllowed(name string, kinds []string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, kind := range kinds {
		k := strings.ToLower(strings.TrimSpace(kind))
		if k == "" {
			continue
		}
		if strings.Contains(k, "/") {
			// MIME entries cannot be checked against a bare filename; accept
			// the extension part when present (e.g. application/pdf -> pdf).
			if idx := strings.LastIndex(k, "/"); idx >= 0 {
				k = k[idx+1:]
			}
		}
		k = strings.TrimPrefix(k, ".")
		if strings.HasSuffix(lower, "."+k) {
			return true
		}
	}
	return false
}
