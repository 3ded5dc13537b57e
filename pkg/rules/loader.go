package rules

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ErrEmptyTable is returned by LoadSet for a document without fields.
var ErrEmptyTable = errors.New("rule table declares no fields")

type fieldDoc struct {
	Name      string               `yaml:"name"`
	Type      string               `yaml:"type"`
	Required  bool                 `yaml:"required"`
	Pattern   string               `yaml:"pattern"`
	MinLength int                  `yaml:"minLength"`
	MaxLength int                  `yaml:"maxLength"`
	Messages  map[Violation]string `yaml:"messages"`
}

type tableDoc struct {
	Fields []fieldDoc `yaml:"fields"`
}

// LoadSet reads a declarative YAML rule table and compiles it into an
// immutable Set. Patterns are compiled once here; the resulting table has no
// mutation API, so the loaded configuration stays constant for the process
// lifetime.
//
// Document shape:
//
//	fields:
//	  - name: email
//	    type: email
//	    required: true
//	    pattern: '^[^\s@]+@[^\s@]+\.[^\s@]+$'
//	    maxLength: 254
//	    messages:
//	      required: Email is required
//	      pattern: Please enter a valid email address
//	      maxLength: Email must not exceed 254 characters
func LoadSet(r io.Reader) (*Set, error) {
	var doc tableDoc
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode rule table: %w", err)
	}
	if len(doc.Fields) == 0 {
		return nil, ErrEmptyTable
	}

	fields := make([]Field, 0, len(doc.Fields))
	for _, fd := range doc.Fields {
		f := Field{
			Name: fd.Name,
			Type: fieldTypeFromDoc(fd.Type),
			Rules: RuleSet{
				Required:  fd.Required,
				MinLength: fd.MinLength,
				MaxLength: fd.MaxLength,
				Messages:  fd.Messages,
			},
		}
		if fd.Pattern != "" {
			re, err := regexp.Compile(fd.Pattern)
			if err != nil {
				return nil, fmt.Errorf("field %s: compile pattern: %w", fd.Name, err)
			}
			f.Rules.Pattern = re
		}
		fields = append(fields, f)
	}

	return NewSet(fields...)
}

func fieldTypeFromDoc(t string) FieldType {
	switch FieldType(t) {
	case FieldTypeEmail, FieldTypeTel, FieldTypeSelect, FieldTypeTextarea:
		return FieldType(t)
	default:
		return FieldTypeText
	}
}
