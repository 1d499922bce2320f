package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var missedCmd = &cobra.Command{
	Use:   "missed <plan-id> <day> <topic-id>",
	Short: "Record a session that did not happen",
	Args:  cobra.ExactArgs(3),
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
		if err := e.progress.MarkMissed(cmd.Context(), args[0], day, args[2], time.Now()); err != nil {
			return err
		}
		fmt.Println("Recorded. The topic stays due; regenerate the plan to reschedule it.")
		return nil
	},
}
