package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sadopc/tickr/internal/hexcolor"
)

// promptCategory asks for a name and color when none were given on the
// command line. Replaced in tests.
var promptCategory = func(name, colorValue *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Category name").Value(name).
				Validate(func(v string) error {
					if v == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewInput().Title("Color (#RRGGBB, empty for random)").Value(colorValue).
				Validate(func(v string) error {
					if v != "" && !hexcolor.Valid(v) {
						return errors.New("expected a 6-digit hex color")
					}
					return nil
				}),
		).Title("New category"),
	).Run()
}

func addCategory(topLevel *cobra.Command, r *runtime) {
	cmd := &cobra.Command{
		Use:   "category [name] [color]",
		Short: "Add a category",
		Long: `Add a category. The color is a hex value like #FF5733; a random
palette color is used when it is omitted. Without a name an interactive
form asks for both.`,
		Example: `
tickr category review "#3498DB"
tickr category meetings
tickr category
`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			var name, colorValue string
			switch len(args) {
			case 0:
				if err := promptCategory(&name, &colorValue); err != nil {
					return err
				}
			case 1:
				name = args[0]
			default:
				name, colorValue = args[0], args[1]
			}

			if name == "" {
				return errors.New("category name is required")
			}
			if colorValue == "" {
				colorValue = hexcolor.Random()
			}
			normalized, ok := hexcolor.Normalize(colorValue)
			if !ok {
				return fmt.Errorf("invalid color %q: provide a hex code like #RRGGBB", colorValue)
			}

			s, err := r.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			c, err := s.CreateCategory(name, normalized)
			if err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Category %q created with color %s.\n", c.Name, c.Color)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
