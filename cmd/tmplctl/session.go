package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/expansion"
)

// sessionFlags are shared by every command that expands a template.
type sessionFlags struct {
	templateID uint64
	file       string
	anchor     string
	options    []string
	exclude    []int
	json       bool
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint64VarP(&f.templateID, "template", "t", 0, "Template id on the server")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Template definition file (YAML or JSON)")
	cmd.Flags().StringVarP(&f.anchor, "anchor", "a", "", "Anchor date, YYYY-MM-DD")
	cmd.Flags().StringArrayVarP(&f.options, "opt", "o", nil, "Option value as key=value, repeatable")
	cmd.Flags().IntSliceVarP(&f.exclude, "exclude", "x", nil, "1-based positions of projected tasks to drop")
	cmd.Flags().BoolVarP(&f.json, "json", "j", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("anchor")
}

// buildSession applies the anchor date and options before the exclusions, since every
// option change resets the exclusions.
func buildSession(template domain.TaskTemplate, f sessionFlags) (*expansion.Session, error) {
	session := expansion.NewSession(template)

	anchor, err := domain.ParseDate(strings.TrimSpace(f.anchor))
	if err != nil {
		return nil, fmt.Errorf("invalid anchor date %q: use YYYY-MM-DD", f.anchor)
	}
	if err := session.SetAnchorDate(anchor); err != nil {
		return nil, err
	}

	for _, raw := range f.options {
		key, value, err := parseOptionFlag(template.OptionsSchema, raw)
		if err != nil {
			return nil, err
		}
		if err := session.SetOption(key, value); err != nil {
			return nil, err
		}
	}

	for _, position := range f.exclude {
		if err := session.Exclude(position - 1); err != nil {
			return nil, fmt.Errorf("exclude %d: %w", position, err)
		}
	}
	return session, nil
}

func parseOptionFlag(schema domain.OptionsSchema, raw string) (string, domain.OptionValue, error) {
	key, value, ok := strings.Cut(raw, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", domain.OptionValue{}, fmt.Errorf("option %q: expected key=value", raw)
	}
	prop, found := schema.Properties[key]
	if !found {
		return "", domain.OptionValue{}, domain.NewOptionError(key, domain.ErrUnknownOption)
	}
	parsed, err := domain.ParseOptionValue(prop, value)
	if err != nil {
		return "", domain.OptionValue{}, domain.NewOptionError(key, err)
	}
	return key, parsed, nil
}
