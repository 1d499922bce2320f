package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mastery state per topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		student, _ := cmd.Flags().GetString("student")
		states, err := e.tracker.All(cmd.Context(), student)
		if err != nil {
			return err
		}
		if len(states) == 0 {
			fmt.Printf("No history yet for %s.\n", student)
			return nil
		}

		fmt.Printf("%-40s %5s %9s %9s %12s\n", "TOPIC", "REPS", "INTERVAL", "EASINESS", "DUE")
		for _, st := range states {
			if !st.Reviewed() {
				continue
			}
			name := st.TopicID
			if t, ok := e.subject.TopicByID(st.TopicID); ok {
				name = t.Name
			}
			fmt.Printf("%-40s %5d %8dd %9.2f %12s\n",
				name, st.Repetitions, st.IntervalDays, st.Easiness, st.Due.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("student", "", "Student identifier")
	statsCmd.MarkFlagRequired("student")
}
