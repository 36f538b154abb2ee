package domain

import (
	"fmt"
	"sort"
)

type OptionKind string

const (
	OptionKindBoolean OptionKind = "boolean"
	OptionKindDate    OptionKind = "date"
	OptionKindString  OptionKind = "string"
	OptionKindNumber  OptionKind = "number"
	OptionKindEnum    OptionKind = "enum"
)

// OptionProperty describes one input field the operator fills in when instantiating a template.
// An enum is a string property with a non-empty Enum list; a date is either type "date" or a
// string with format "date".
type OptionProperty struct {
	Type   string   `json:"type" yaml:"type"`
	Title  string   `json:"title,omitempty" yaml:"title,omitempty"`
	Format string   `json:"format,omitempty" yaml:"format,omitempty"`
	Enum   []string `json:"enum,omitempty" yaml:"enum,omitempty"`
}

func (p OptionProperty) Kind() OptionKind {
	if len(p.Enum) > 0 && (p.Type == "" || p.Type == "string") {
		return OptionKindEnum
	}
	switch p.Type {
	case "boolean":
		return OptionKindBoolean
	case "date":
		return OptionKindDate
	case "number", "integer":
		return OptionKindNumber
	case "string":
		if p.Format == "date" {
			return OptionKindDate
		}
		return OptionKindString
	}
	return ""
}

type OptionsSchema struct {
	Type       string                    `json:"type" yaml:"type"`
	Properties map[string]OptionProperty `json:"properties" yaml:"properties"`
	Required   []string                  `json:"required" yaml:"required"`
}

func EmptyOptionsSchema() OptionsSchema {
	return OptionsSchema{Type: "object", Properties: map[string]OptionProperty{}, Required: []string{}}
}

// Kind returns the kind of the named property, or "" when it does not exist.
func (s OptionsSchema) Kind(key string) OptionKind {
	prop, ok := s.Properties[key]
	if !ok {
		return ""
	}
	return prop.Kind()
}

// Keys returns the property names in a stable order.
func (s OptionsSchema) Keys() []string {
	keys := make([]string, 0, len(s.Properties))
	for key := range s.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (s OptionsSchema) IsRequired(key string) bool {
	for _, required := range s.Required {
		if required == key {
			return true
		}
	}
	return false
}

func (s OptionsSchema) Validate() error {
	if s.Type != "" && s.Type != "object" {
		return fmt.Errorf("%w: type must be object", ErrInvalidOptionsSchema)
	}
	for key, prop := range s.Properties {
		if key == "" {
			return fmt.Errorf("%w: empty property name", ErrInvalidOptionsSchema)
		}
		if prop.Kind() == "" {
			return fmt.Errorf("%w: property %q has unsupported type %q", ErrInvalidOptionsSchema, key, prop.Type)
		}
	}
	for _, key := range s.Required {
		if _, ok := s.Properties[key]; !ok {
			return fmt.Errorf("%w: required property %q is not defined", ErrInvalidOptionsSchema, key)
		}
	}
	return nil
}

// Normalize fills the zero parts of the schema so it always serializes to a full object.
func (s OptionsSchema) Normalize() OptionsSchema {
	if s.Type == "" {
		s.Type = "object"
	}
	if s.Properties == nil {
		s.Properties = map[string]OptionProperty{}
	}
	if s.Required == nil {
		s.Required = []string{}
	}
	return s
}
