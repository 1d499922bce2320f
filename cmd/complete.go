package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <plan-id> <day> <topic-id> <score-pct>",
	Short: "Record a finished session and its score",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		day, err := parseDay(args[1])
		if err != nil {
			return err
		}
		pct, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return fmt.Errorf("parse score: %w", err)
		}

		st, err := e.progress.MarkComplete(cmd.Context(), args[0], day, args[2], pct, time.Now())
		if err != nil {
			return err
		}

		name := args[2]
		if t, ok := e.subject.TopicByID(args[2]); ok {
			name = t.Name
		}
		fmt.Printf("%s: next review %s (interval %d days, easiness %.2f)\n",
			name, st.Due.Format("Mon 02 Jan"), st.IntervalDays, st.Easiness)
		return nil
	},
}

// parseDay converts the 1-based day shown in plan output to the
// 0-based index the engine uses.
func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("parse day: %w", err)
	}
	if day < 1 {
		return 0, fmt.Errorf("day must be 1 or later, got %d", day)
	}
	return day - 1, nil
}
