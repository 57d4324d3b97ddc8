// Package cli is the tickr command tree. With no subcommand it starts the
// interactive tracker.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sadopc/tickr/internal/config"
	"github.com/sadopc/tickr/internal/store"
)

// runtime carries the resolved configuration to subcommands.
type runtime struct {
	configFile string
	cfg        *config.Config
	now        func() time.Time
}

func (r *runtime) openStore() (*store.Store, error) {
	s, err := store.New(r.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s.SetClock(r.now)
	return s, nil
}

func New() *cobra.Command {
	return newRoot(&runtime{now: time.Now})
}

func newRoot(r *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickr",
		Short: "A terminal time tracker.",
		Long: `tickr tracks time against projects and tasks.

Run without a subcommand to open the interactive tracker.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v := viper.New()
			if err := v.BindPFlag(config.KeyDBPath, cmd.Root().PersistentFlags().Lookup("db")); err != nil {
				return err
			}
			cfg, err := config.Load(v, r.configFile)
			if err != nil {
				return err
			}
			r.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runUI(r)
		},
	}

	cmd.PersistentFlags().String("db", "", "Path to the SQLite database.")
	cmd.PersistentFlags().StringVar(&r.configFile, "config", "", "Path to a config file.")

	AddCommands(cmd, r)
	return cmd
}

func AddCommands(topLevel *cobra.Command, r *runtime) {
	addProject(topLevel, r)
	addTask(topLevel, r)
	addCategory(topLevel, r)
	addExport(topLevel, r)
	addVersion(topLevel)
}

// parseTime reads an optional RFC3339 flag value.
func parseTime(flag, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("--%s: expected RFC3339 like 2026-01-02T15:04:05Z: %w", flag, err)
	}
	return &t, nil
}
