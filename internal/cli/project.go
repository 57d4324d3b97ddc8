package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/sadopc/tickr/internal/app"
	"github.com/sadopc/tickr/internal/store"
)

func addProject(topLevel *cobra.Command, r *runtime) {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	addProjectAdd(cmd, r)
	addProjectList(cmd, r)

	topLevel.AddCommand(cmd)
}

func addProjectAdd(topLevel *cobra.Command, r *runtime) {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a project",
		Example: `
tickr project add website
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := r.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			name := args[0]
			out := cmd.OutOrStdout()
			if _, err := s.GetProjectByName(name); err == nil {
				fmt.Fprintf(out, "Project %q already exists.\n", name)
				return nil
			} else if !errors.Is(err, store.ErrNotFound) {
				return err
			}

			if _, err := s.CreateProject(name); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(out, "Project %q created.\n", name)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addProjectList(topLevel *cobra.Command, r *runtime) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects with task counts and tracked time",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := r.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			projects, err := s.ListProjects()
			if err != nil {
				return err
			}
			tickrs, err := s.ListTickrs(store.AllTickrs)
			if err != nil {
				return err
			}
			summaries := app.Summarize(tickrs)

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow("PROJECT", "OPEN", "ENDED", "TOTAL")
			for _, p := range projects {
				sum := summaries[p.ID]
				tbl.AddRow(p.Name, sum.Open, sum.Ended, app.FormatSeconds(sum.TotalSeconds))
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
