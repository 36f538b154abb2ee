package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/mapper"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/expansion"
)

func templatesCmd(cfg settings) *cobra.Command {
	var (
		bu              string
		includeInactive bool
		asJSON          bool
	)
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the task templates of a business unit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bu != "" && !domain.BusinessUnit(bu).Valid() {
				return fmt.Errorf("%w: %q", domain.ErrInvalidBusinessUnit, bu)
			}
			templates, err := cfg.client().ListTemplates(cmd.Context(), bu, includeInactive)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), mapper.ToTemplateItems(templates))
			}
			renderTemplates(cmd.OutOrStdout(), templates)
			return nil
		},
	}

	cmd.Flags().StringVar(&bu, "filter-bu", "", "Only templates of this business unit")
	cmd.Flags().BoolVar(&includeInactive, "include-inactive", false, "Include deactivated templates")
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output as JSON")

	return cmd
}

func previewCmd(cfg settings) *cobra.Command {
	var flags sessionFlags
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the tasks a template would produce for an anchor date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			template, err := loadTemplate(cmd.Context(), cfg, flags.templateID, flags.file)
			if err != nil {
				return err
			}
			session, err := buildSession(template, flags)
			if err != nil {
				return err
			}
			defer session.Close()

			if flags.json {
				return printJSON(cmd.OutOrStdout(), session.Snapshot())
			}
			renderSnapshot(cmd.OutOrStdout(), session.Snapshot())
			if err := session.Ready(); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), styleWarning.Render("not ready: "+err.Error()))
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func localCmd(cfg settings) *cobra.Command {
	var flags sessionFlags
	cmd := &cobra.Command{
		Use:   "local",
		Short: "Produce pending tasks for a project that is not saved yet",
		Long: `Expands the template and prints the resulting tasks as JSON without saving anything.
The output is meant to be attached to a new project when it is created.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			template, err := loadTemplate(cmd.Context(), cfg, flags.templateID, flags.file)
			if err != nil {
				return err
			}
			session, err := buildSession(template, flags)
			if err != nil {
				return err
			}
			result, err := session.Commit(cmd.Context(), expansion.LocalCommitter{})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), mapper.ToPendingTaskItems(result.Pending))
		},
	}
	flags.register(cmd)
	return cmd
}

func generateCmd(cfg settings) *cobra.Command {
	var (
		flags     sessionFlags
		projectID uint64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create the tasks of a template in an existing project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID == 0 {
				return expansion.ErrProjectRequired
			}
			template, err := loadTemplate(cmd.Context(), cfg, flags.templateID, flags.file)
			if err != nil {
				return err
			}
			session, err := buildSession(template, flags)
			if err != nil {
				return err
			}
			result, err := session.Commit(cmd.Context(), expansion.NewRemoteCommitter(projectID, cfg.client()))
			if errors.Is(err, expansion.ErrNoFinalTasks) {
				return fmt.Errorf("%w: every task was excluded or filtered out", err)
			}
			if err != nil {
				return err
			}
			if flags.json {
				return printJSON(cmd.OutOrStdout(), mapper.ToGenerateTasksResponse(domain.GenerateTasksResult{
					Tasks: result.Created,
					Count: result.Count,
				}))
			}
			renderCreated(cmd.OutOrStdout(), result)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().Uint64VarP(&projectID, "project", "p", 0, "Project id the tasks are created in")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}
