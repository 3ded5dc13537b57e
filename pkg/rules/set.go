package rules

import "fmt"

// Field pairs a name and a field type with its rule set.
type Field struct {
	Name  string
	Type  FieldType
	Rules RuleSet
}

// Set is the immutable rule table for one form. Fields keep their
// registration order so aggregated errors surface in document order.
type Set struct {
	fields []Field
	index  map[string]int
}

// NewSet builds a rule table, enforcing the constraint/message invariant of
// every rule set up front so misconfiguration fails at startup rather than
// during evaluation.
func NewSet(fields ...Field) (*Set, error) {
	s := &Set{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f.Name == "" {
			return nil, ErrEmptyFieldName
		}
		if _, exists := s.index[f.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, f.Name)
		}
		if err := f.Rules.validate(); err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// MustNewSet is NewSet for package-level tables that are part of the
// program's source; it panics on a malformed table.
func MustNewSet(fields ...Field) *Set {
	s, err := NewSet(fields...)
	if err != nil {
		panic(fmt.Sprintf("rules: invalid rule table: %v", err))
	}
	return s
}

// Field returns the registered field definition and whether one exists.
func (s *Set) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Names lists the registered field names in registration order.
func (s *Set) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// EvaluateField evaluates a single named field. A name with no registered
// rule set is always valid.
func (s *Set) EvaluateField(name, value string) Result {
	f, ok := s.Field(name)
	if !ok {
		return pass()
	}
	return Evaluate(value, f.Type, f.Rules)
}

// Evaluate runs every registered field against values and aggregates all
// failures. It never short-circuits: each field is evaluated and every
// failing field contributes exactly one ValidationError. A nil return means
// the whole form passed. Names present in values but absent from the table
// are ignored.
func (s *Set) Evaluate(values map[string]string) error {
	var errs ValidationErrors
	for _, f := range s.fields {
		res := Evaluate(values[f.Name], f.Type, f.Rules)
		if !res.Valid {
			errs = append(errs, ValidationError{
				Field:     f.Name,
				Violation: res.Violation,
				Message:   res.Message,
			})
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}
