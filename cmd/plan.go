package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/revisio/revisio/internal/schedule"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Create a study plan for the loaded syllabus",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		student, _ := cmd.Flags().GetString("student")
		horizon, _ := cmd.Flags().GetInt("horizon")
		start := time.Now()
		if s, _ := cmd.Flags().GetString("start"); s != "" {
			start, err = time.Parse("2006-01-02", s)
			if err != nil {
				return fmt.Errorf("parse --start: %w", err)
			}
		}

		plan, err := e.builder.CreatePlan(cmd.Context(), student, e.subject.SubjectID, horizon, start)
		if err != nil {
			var inf *schedule.InfeasibleError
			if errors.As(err, &inf) {
				return fmt.Errorf("plan is infeasible: %w", err)
			}
			return err
		}

		fmt.Printf("Plan %s for %s (%s)\n", plan.ID, student, e.subject.Name)
		if plan.CoverageExtended {
			fmt.Printf("Note: coverage needed %d days beyond the %d-day horizon.\n",
				plan.Days()-plan.HorizonDays, plan.HorizonDays)
		}
		printPlan(e, plan)
		return nil
	},
}

func init() {
	planCmd.Flags().String("student", "", "Student identifier")
	planCmd.Flags().Int("horizon", 30, "Days until the exam or review deadline")
	planCmd.Flags().String("start", "", "Plan start date (YYYY-MM-DD, default today)")
	planCmd.MarkFlagRequired("student")
}

func printPlan(e *env, plan *schedule.Plan) {
	for day := 0; day < plan.Days(); day++ {
		sessions := plan.SessionsForDay(day)
		if len(sessions) == 0 {
			continue
		}
		date := plan.StartDate.AddDate(0, 0, day)
		fmt.Printf("\nDay %d  %s\n", day+1, date.Format("Mon 02 Jan"))
		for _, s := range sessions {
			name := s.TopicID
			if t, ok := e.subject.TopicByID(s.TopicID); ok {
				name = t.Name
			}
			fmt.Printf("  [%-6s] %-40s %3d min\n", s.Role, name, s.EstimatedMins)
		}
	}
}
