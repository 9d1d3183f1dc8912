// Package rules offers reusable leaf validators for common constraints.
// Every rule reports a single Issue tagged with the rule name; user-facing
// text goes through the i18n translator.
package rules

import (
	"cmp"
	"fmt"
	"regexp"

	formtree "github.com/reoring/formtree"
	"github.com/reoring/formtree/i18n"
)

func issue(code, rule, hint string) formtree.Issues {
	return formtree.Issues{{Code: code, Message: i18n.T(code, nil), Hint: hint, Rule: rule}}
}

// NonEmpty fails when the string is empty.
func NonEmpty() formtree.Validator[string] {
	return func(v string) (string, error) {
		if v == "" {
			return v, issue(formtree.CodeRequired, "non_empty", "")
		}
		return v, nil
	}
}

// MinLen fails when the string is shorter than n bytes.
func MinLen(n int) formtree.Validator[string] {
	return func(v string) (string, error) {
		if len(v) < n {
			return v, issue(formtree.CodeTooShort, "min_len", fmt.Sprintf("minLength %d", n))
		}
		return v, nil
	}
}

// MaxLen fails when the string is longer than n bytes.
func MaxLen(n int) formtree.Validator[string] {
	return func(v string) (string, error) {
		if len(v) > n {
			return v, issue(formtree.CodeTooLong, "max_len", fmt.Sprintf("maxLength %d", n))
		}
		return v, nil
	}
}

// Match fails when the string does not match re.
func Match(re *regexp.Regexp) formtree.Validator[string] {
	return func(v string) (string, error) {
		if !re.MatchString(v) {
			return v, issue(formtree.CodePattern, "match", re.String())
		}
		return v, nil
	}
}

// Pattern compiles expr once and behaves like Match. It panics on an invalid
// expression, mirroring regexp.MustCompile.
func Pattern(expr string) formtree.Validator[string] {
	return Match(regexp.MustCompile(expr))
}

// Min fails when the value is below min.
func Min[N cmp.Ordered](min N) formtree.Validator[N] {
	return func(v N) (N, error) {
		if v < min {
			return v, issue(formtree.CodeOutOfRange, "min", fmt.Sprintf("min %v", min))
		}
		return v, nil
	}
}

// Max fails when the value is above max.
func Max[N cmp.Ordered](max N) formtree.Validator[N] {
	return func(v N) (N, error) {
		if v > max {
			return v, issue(formtree.CodeOutOfRange, "max", fmt.Sprintf("max %v", max))
		}
		return v, nil
	}
}

// OneOf fails when the value equals none of the allowed values.
func OneOf[V comparable](allowed ...V) formtree.Validator[V] {
	set := make(map[V]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(v V) (V, error) {
		if _, ok := set[v]; !ok {
			return v, issue(formtree.CodeInvalidEnum, "one_of", fmt.Sprintf("%d allowed values", len(allowed)))
		}
		return v, nil
	}
}
