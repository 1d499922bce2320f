package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/revisio/revisio/internal/mastery"
	"github.com/revisio/revisio/internal/planner"
	"github.com/revisio/revisio/internal/progress"
	"github.com/revisio/revisio/internal/schedule"
	"github.com/revisio/revisio/internal/store"
	"github.com/revisio/revisio/internal/syllabus"
)

var rootCmd = &cobra.Command{
	Use:          "revisio",
	Short:        "Adaptive spaced-repetition study planner",
	Long:         "Revisio builds day-by-day revision plans from a syllabus file and adapts them to how well each topic goes.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides REVISIO_DB env var)")
	rootCmd.PersistentFlags().String("syllabus", "", "Path to the syllabus JSON file")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(missedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then REVISIO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// env bundles the open store with the services every subcommand wires
// the same way. Callers must Close it.
type env struct {
	store    *store.Store
	catalog  *syllabus.Catalog
	subject  *syllabus.Syllabus
	tracker  *mastery.Tracker
	builder  *schedule.Builder
	progress *progress.Updater
}

func (e *env) Close() error { return e.store.Close() }

// openEnv opens the store and loads the syllabus named by --syllabus.
func openEnv(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("syllabus")
	if path == "" {
		return nil, fmt.Errorf("--syllabus is required")
	}
	subject, err := syllabus.LoadFile(path)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	catalog := syllabus.NewCatalog(subject)
	tracker := mastery.NewTracker(st.MasteryRepo())
	return &env{
		store:    st,
		catalog:  catalog,
		subject:  subject,
		tracker:  tracker,
		builder:  schedule.NewBuilder(catalog, tracker, st.PlanRepo(), planner.DefaultConfig()),
		progress: progress.NewUpdater(catalog, tracker, st.PlanRepo(), st.EventRepo()),
	}, nil
}
