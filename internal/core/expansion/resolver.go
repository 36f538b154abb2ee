package expansion

import (
	"fmt"
	"slices"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
)

// Item is a blueprint tagged with the key that identifies it for the lifetime of a session.
type Item struct {
	Key       string
	Blueprint domain.TaskBlueprint
}

// Resolve keeps the items that are active for options, preserving order.
//
// An item without a condition key is always kept. An item whose condition key names a boolean
// property is kept only when the supplied value is exactly true. Any other condition key
// (missing property, non-boolean property) does not gate the item.
func Resolve(items []Item, schema domain.OptionsSchema, options map[string]domain.OptionValue) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if included(item.Blueprint, schema, options) {
			out = append(out, item)
		}
	}
	return out
}

// ResolveBlueprints is Resolve over plain blueprints.
func ResolveBlueprints(tasks []domain.TaskBlueprint, schema domain.OptionsSchema, options map[string]domain.OptionValue) []domain.TaskBlueprint {
	out := make([]domain.TaskBlueprint, 0, len(tasks))
	for _, task := range tasks {
		if included(task, schema, options) {
			out = append(out, task)
		}
	}
	return out
}

func included(task domain.TaskBlueprint, schema domain.OptionsSchema, options map[string]domain.OptionValue) bool {
	if task.ConditionKey == "" {
		return true
	}
	if schema.Kind(task.ConditionKey) != domain.OptionKindBoolean {
		return true
	}
	return options[task.ConditionKey].IsTrue()
}

// MissingRequired returns the required keys of schema that have no value in options.
func MissingRequired(schema domain.OptionsSchema, options map[string]domain.OptionValue) []string {
	var missing []string
	for _, key := range schema.Required {
		value, ok := options[key]
		if !ok || value.IsZero() {
			missing = append(missing, key)
			continue
		}
		if text, isText := value.AsText(); isText && text == "" {
			missing = append(missing, key)
		}
	}
	slices.Sort(missing)
	return missing
}

// CheckOption verifies that value matches the declared type of key in schema.
func CheckOption(schema domain.OptionsSchema, key string, value domain.OptionValue) error {
	prop, ok := schema.Properties[key]
	if !ok {
		return domain.NewOptionError(key, domain.ErrUnknownOption)
	}
	kind := prop.Kind()
	if value.Kind() != kind {
		return domain.NewOptionError(key, fmt.Errorf("%w: expected %s, got %s", domain.ErrOptionTypeMismatch, kind, value.Kind()))
	}
	if kind == domain.OptionKindEnum {
		text, _ := value.AsText()
		if !slices.Contains(prop.Enum, text) {
			return domain.NewOptionError(key, fmt.Errorf("%w: %q is not one of %v", domain.ErrOptionTypeMismatch, text, prop.Enum))
		}
	}
	return nil
}
