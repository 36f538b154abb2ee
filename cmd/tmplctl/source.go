package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
)

var errTemplateSource = errors.New("exactly one of --template or --file is required")

// templateFile is a template definition kept next to the operator's notes. JSON files parse
// as YAML too.
type templateFile struct {
	Name          string                 `yaml:"name"`
	BusinessUnit  string                 `yaml:"bu_code"`
	Description   string                 `yaml:"description"`
	TemplateType  string                 `yaml:"template_type"`
	OptionsSchema domain.OptionsSchema   `yaml:"options_schema"`
	Tasks         []domain.TaskBlueprint `yaml:"tasks"`
}

func loadTemplateFile(path string) (domain.TaskTemplate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.TaskTemplate{}, fmt.Errorf("read template file: %w", err)
	}
	return parseTemplateFile(raw)
}

func parseTemplateFile(raw []byte) (domain.TaskTemplate, error) {
	var file templateFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return domain.TaskTemplate{}, fmt.Errorf("parse template file: %w", err)
	}

	if strings.TrimSpace(file.Name) == "" {
		return domain.TaskTemplate{}, domain.ErrTemplateNameRequired
	}
	if err := domain.ValidateBlueprints(file.Tasks); err != nil {
		return domain.TaskTemplate{}, err
	}
	schema := file.OptionsSchema.Normalize()
	if err := schema.Validate(); err != nil {
		return domain.TaskTemplate{}, err
	}

	template := domain.TaskTemplate{
		BusinessUnit:  domain.BusinessUnit(strings.TrimSpace(file.BusinessUnit)),
		Name:          strings.TrimSpace(file.Name),
		TemplateType:  strings.TrimSpace(file.TemplateType),
		OptionsSchema: schema,
		Tasks:         domain.NormalizeBlueprints(file.Tasks),
		IsActive:      true,
	}
	if desc := strings.TrimSpace(file.Description); desc != "" {
		template.Description = &desc
	}
	return template, nil
}

// loadTemplate reads the template either from the API or from a local file.
func loadTemplate(ctx context.Context, cfg settings, id uint64, path string) (domain.TaskTemplate, error) {
	switch {
	case id != 0 && path == "":
		return cfg.client().GetTemplate(ctx, id)
	case id == 0 && path != "":
		return loadTemplateFile(path)
	}
	return domain.TaskTemplate{}, errTemplateSource
}
