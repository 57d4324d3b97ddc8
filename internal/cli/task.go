package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/sadopc/tickr/internal/app"
	"github.com/sadopc/tickr/internal/hexcolor"
	"github.com/sadopc/tickr/internal/store"
)

type taskAddOptions struct {
	Start    string
	End      string
	Category string
}

func addTask(topLevel *cobra.Command, r *runtime) {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd, r)
	addTaskSwitch(cmd, r, "switch", "Stop whatever is running and start a task")
	addTaskSwitch(cmd, r, "start", "Start a task, stopping any running one")
	addTaskList(cmd, r)

	topLevel.AddCommand(cmd)
}

func addTaskAdd(topLevel *cobra.Command, r *runtime) {
	o := &taskAddOptions{}

	cmd := &cobra.Command{
		Use:   "add <project> <description>",
		Short: "Add a task, optionally with a recorded or running interval",
		Example: `
tickr task add website "fix header"
tickr task add website "fix header" --start 2026-03-10T09:00:00Z --end 2026-03-10T10:30:00Z
tickr task add website "deploy" --start 2026-03-10T14:00:00Z --category ops
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			start, err := parseTime("start", o.Start)
			if err != nil {
				return err
			}
			end, err := parseTime("end", o.End)
			if err != nil {
				return err
			}
			if start == nil && end != nil {
				return errors.New("end time requires a start time")
			}
			if end != nil && end.Before(*start) {
				return errors.New("end time is before start time")
			}

			s, err := r.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			p, err := findProject(s, args[0])
			if err != nil {
				return err
			}

			var categoryID *int64
			if o.Category != "" {
				c, err := ensureCategory(s, o.Category, out)
				if err != nil {
					return err
				}
				categoryID = &c.ID
			}

			t, err := s.CreateTickr(p.ID, args[1], categoryID)
			if err != nil {
				return err
			}
			if start != nil {
				if end == nil {
					if _, err := s.EndAllOpen(); err != nil {
						return err
					}
				}
				if _, err := s.AddInterval(t.ID, *start, end); err != nil {
					return err
				}
			}

			color.New(color.FgGreen).Fprintf(out, "Task %q added to %q.\n", t.Description, p.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&o.Start, "start", "s", "", "Interval start time (RFC3339).")
	cmd.Flags().StringVarP(&o.End, "end", "e", "", "Interval end time (RFC3339). Requires --start.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "", "Category name. Created with a random color if missing.")

	topLevel.AddCommand(cmd)
}

func addTaskSwitch(topLevel *cobra.Command, r *runtime, use, short string) {
	cmd := &cobra.Command{
		Use:   use + " <project> <description>",
		Short: short,
		Example: fmt.Sprintf(`
tickr task %s website "fix header"
`, use),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := r.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			p, err := findProject(s, args[0])
			if err != nil {
				return err
			}
			t, err := findTickr(s, p, args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			stopped, err := s.EndAllOpen()
			if err != nil {
				return err
			}
			if stopped > 0 {
				fmt.Fprintln(out, "Stopped the running task.")
			}
			if err := s.StartInterval(t.ID); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(out, "Switched to task %q.\n", t.Description)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addTaskList(topLevel *cobra.Command, r *runtime) {
	var project string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Example: `
tickr task list
tickr task list --project website
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := r.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			scope := store.AllTickrs
			if project != "" {
				p, err := findProject(s, project)
				if err != nil {
					return err
				}
				scope = store.ByProject(p.ID)
			}

			tickrs, err := s.ListTickrs(scope)
			if err != nil {
				return err
			}
			projects, err := s.ListProjects()
			if err != nil {
				return err
			}
			categories, err := s.ListCategories()
			if err != nil {
				return err
			}
			return printTickrs(cmd.OutOrStdout(), tickrs, projects, categories, r)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Only list tasks of this project.")

	topLevel.AddCommand(cmd)
}

func printTickrs(w io.Writer, tickrs []store.Tickr, projects []store.Project, categories []store.Category, r *runtime) error {
	projectNames := make(map[int64]string, len(projects))
	for _, p := range projects {
		projectNames[p.ID] = p.Name
	}
	categoryNames := make(map[int64]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	now := r.now()
	running := color.New(color.FgGreen).SprintFunc()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", "PROJECT", "TASK", "CATEGORY", "ELAPSED", "STATE")
	for _, t := range tickrs {
		category := "-"
		if t.CategoryID != nil {
			category = categoryNames[*t.CategoryID]
		}
		state := "stopped"
		if t.Running() {
			state = running("running")
		}
		elapsed := app.FormatSeconds(int64(app.Elapsed(t, now).Seconds()))
		tbl.AddRow(t.ID, projectNames[t.ProjectID], t.Description, category, elapsed, state)
	}
	_, err := fmt.Fprintln(w, tbl)
	return err
}

func findProject(s *store.Store, name string) (*store.Project, error) {
	p, err := s.GetProjectByName(name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("project %q not found", name)
	}
	return p, err
}

func findTickr(s *store.Store, p *store.Project, description string) (*store.Tickr, error) {
	tickrs, err := s.ListTickrs(store.ByProject(p.ID))
	if err != nil {
		return nil, err
	}
	for i := range tickrs {
		if tickrs[i].Description == description {
			return &tickrs[i], nil
		}
	}
	return nil, fmt.Errorf("task %q not found in project %q", description, p.Name)
}

func ensureCategory(s *store.Store, name string, out io.Writer) (*store.Category, error) {
	c, err := s.GetCategoryByName(name)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	fmt.Fprintf(out, "Category %q not found, creating it with a random color.\n", name)
	return s.CreateCategory(name, hexcolor.Random())
}
