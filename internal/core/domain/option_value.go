package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// OptionValue is an operator-supplied option. Exactly one of the payload fields is meaningful,
// selected by kind.
type OptionValue struct {
	kind    OptionKind
	boolean bool
	text    string
	number  float64
	date    time.Time
}

func BoolValue(v bool) OptionValue {
	return OptionValue{kind: OptionKindBoolean, boolean: v}
}

func StringValue(v string) OptionValue {
	return OptionValue{kind: OptionKindString, text: v}
}

func EnumValue(v string) OptionValue {
	return OptionValue{kind: OptionKindEnum, text: v}
}

func NumberValue(v float64) OptionValue {
	return OptionValue{kind: OptionKindNumber, number: v}
}

func DateValue(v time.Time) OptionValue {
	return OptionValue{kind: OptionKindDate, date: TruncateDate(v)}
}

func (v OptionValue) Kind() OptionKind { return v.kind }

func (v OptionValue) IsZero() bool { return v.kind == "" }

// IsTrue reports whether v is the boolean true. Any other value, including a string "true",
// is not.
func (v OptionValue) IsTrue() bool {
	return v.kind == OptionKindBoolean && v.boolean
}

func (v OptionValue) AsBool() (bool, bool) {
	return v.boolean, v.kind == OptionKindBoolean
}

func (v OptionValue) AsText() (string, bool) {
	return v.text, v.kind == OptionKindString || v.kind == OptionKindEnum
}

func (v OptionValue) AsNumber() (float64, bool) {
	return v.number, v.kind == OptionKindNumber
}

func (v OptionValue) AsDate() (time.Time, bool) {
	return v.date, v.kind == OptionKindDate
}

func (v OptionValue) String() string {
	switch v.kind {
	case OptionKindBoolean:
		return strconv.FormatBool(v.boolean)
	case OptionKindString, OptionKindEnum:
		return v.text
	case OptionKindNumber:
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	case OptionKindDate:
		return FormatDate(v.date)
	}
	return ""
}

func (v OptionValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case OptionKindBoolean:
		return json.Marshal(v.boolean)
	case OptionKindString, OptionKindEnum, OptionKindDate:
		return json.Marshal(v.String())
	case OptionKindNumber:
		return json.Marshal(v.number)
	}
	return []byte("null"), nil
}

// DecodeOptionValue converts a value decoded from JSON (bool, string, float64) into the
// variant declared by prop.
func DecodeOptionValue(prop OptionProperty, raw any) (OptionValue, error) {
	kind := prop.Kind()
	switch value := raw.(type) {
	case bool:
		if kind == OptionKindBoolean {
			return BoolValue(value), nil
		}
	case float64:
		if kind == OptionKindNumber {
			return NumberValue(value), nil
		}
	case string:
		if kind != OptionKindBoolean && kind != OptionKindNumber {
			return ParseOptionValue(prop, value)
		}
	}
	return OptionValue{}, fmt.Errorf("%w: expected %s, got %T", ErrOptionTypeMismatch, kind, raw)
}

// ParseOptionValue converts textual input, e.g. from a command line flag, into the variant
// declared by prop.
func ParseOptionValue(prop OptionProperty, raw string) (OptionValue, error) {
	switch prop.Kind() {
	case OptionKindBoolean:
		value, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return OptionValue{}, fmt.Errorf("%w: %q is not a boolean", ErrOptionTypeMismatch, raw)
		}
		return BoolValue(value), nil
	case OptionKindNumber:
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return OptionValue{}, fmt.Errorf("%w: %q is not a number", ErrOptionTypeMismatch, raw)
		}
		return NumberValue(value), nil
	case OptionKindDate:
		value, err := ParseDate(strings.TrimSpace(raw))
		if err != nil {
			return OptionValue{}, fmt.Errorf("%w: %q is not a date", ErrOptionTypeMismatch, raw)
		}
		return DateValue(value), nil
	case OptionKindEnum:
		if !slices.Contains(prop.Enum, raw) {
			return OptionValue{}, fmt.Errorf("%w: %q is not one of %v", ErrOptionTypeMismatch, raw, prop.Enum)
		}
		return EnumValue(raw), nil
	case OptionKindString:
		return StringValue(raw), nil
	}
	return OptionValue{}, fmt.Errorf("%w: unsupported option type %q", ErrOptionTypeMismatch, prop.Type)
}

// DecodeOptions converts a JSON options object into typed values using the schema. Null values
// are skipped; keys the schema does not declare are rejected.
func (s OptionsSchema) DecodeOptions(raw map[string]any) (map[string]OptionValue, error) {
	out := make(map[string]OptionValue, len(raw))
	for key, value := range raw {
		prop, ok := s.Properties[key]
		if !ok {
			return nil, NewOptionError(key, ErrUnknownOption)
		}
		if value == nil {
			continue
		}
		decoded, err := DecodeOptionValue(prop, value)
		if err != nil {
			return nil, NewOptionError(key, err)
		}
		out[key] = decoded
	}
	return out, nil
}
