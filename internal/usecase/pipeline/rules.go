package pipeline

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"appointment-system/internal/pkg/errs"
)

// Rule inspects a command and records any violation it finds.
type Rule[C any] func(cmd C, v *errs.ValidationError)

type RuleSet[C any] struct {
	rules []Rule[C]
}

func NewRuleSet[C any](rules ...Rule[C]) RuleSet[C] {
	return RuleSet[C]{rules: rules}
}

// With returns a copy extended by more rules.
func (rs RuleSet[C]) With(rules ...Rule[C]) RuleSet[C] {
	return RuleSet[C]{rules: append(slices.Clone(rs.rules), rules...)}
}

func (rs RuleSet[C]) Len() int { return len(rs.rules) }

// Validate runs every rule and returns nil when none was violated.
func (rs RuleSet[C]) Validate(cmd C) *errs.ValidationError {
	v := errs.NewValidationError()
	for _, rule := range rs.rules {
		rule(cmd, v)
	}
	if v.Empty() {
		return nil
	}
	return v
}

func Required[C any](field string, get func(C) string) Rule[C] {
	return func(cmd C, v *errs.ValidationError) {
		if strings.TrimSpace(get(cmd)) == "" {
			v.Add(field, field+" is required")
		}
	}
}

func MaxLength[C any](field string, limit int, get func(C) string) Rule[C] {
	return func(cmd C, v *errs.ValidationError) {
		if utf8.RuneCountInString(strings.TrimSpace(get(cmd))) > limit {
			v.Add(field, fmt.Sprintf("%s must be at most %d characters", field, limit))
		}
	}
}

func RequiredTime[C any](field string, get func(C) *time.Time) Rule[C] {
	return func(cmd C, v *errs.ValidationError) {
		if t := get(cmd); t == nil || t.IsZero() {
			v.Add(field, field+" is required")
		}
	}
}

// OneOf accepts the empty string so that optional enumerations can take a default later.
func OneOf[C any](field string, allowed []string, get func(C) string) Rule[C] {
	return func(cmd C, v *errs.ValidationError) {
		s := strings.TrimSpace(get(cmd))
		if s == "" || slices.Contains(allowed, s) {
			return
		}
		v.Add(field, fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")))
	}
}
