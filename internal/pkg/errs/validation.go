package errs

import (
	"sort"
	"strings"
)

// ValidationError aggregates every rule violation of one command.
// Messages per field keep the order in which the rules ran.
type ValidationError struct {
	fields map[string][]string
	order  []string
}

func NewValidationError() *ValidationError {
	return &ValidationError{fields: map[string][]string{}}
}

func (e *ValidationError) Add(field, msg string) {
	if _, ok := e.fields[field]; !ok {
		e.order = append(e.order, field)
	}
	e.fields[field] = append(e.fields[field], msg)
}

func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	for _, f := range other.order {
		for _, m := range other.fields[f] {
			e.Add(f, m)
		}
	}
}

func (e *ValidationError) Empty() bool {
	return e == nil || len(e.order) == 0
}

// Fields returns a copy of the field → messages mapping.
func (e *ValidationError) Fields() map[string][]string {
	out := make(map[string][]string, len(e.fields))
	for k, v := range e.fields {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func (e *ValidationError) FieldNames() []string {
	names := append([]string(nil), e.order...)
	sort.Strings(names)
	return names
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, f := range e.order {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(strings.Join(e.fields[f], ", "))
	}
	return b.String()
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
