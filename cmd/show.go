package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [plan-id]",
	Short: "Show a plan by ID, or the student's current plan",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if len(args) == 1 {
			plan, err := e.builder.GetPlan(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Plan %s (%s)\n", plan.ID, e.subject.Name)
			if plan.Archived {
				fmt.Println("This plan has been superseded.")
			}
			printPlan(e, plan)
			return nil
		}

		student, _ := cmd.Flags().GetString("student")
		if student == "" {
			return fmt.Errorf("--student is required when no plan ID is given")
		}
		plan, err := e.builder.CurrentPlan(cmd.Context(), student, e.subject.SubjectID)
		if err != nil {
			return err
		}
		if plan == nil {
			fmt.Printf("No plan yet for %s. Run: revisio plan --student %s\n", student, student)
			return nil
		}
		fmt.Printf("Plan %s for %s (%s)\n", plan.ID, student, e.subject.Name)
		printPlan(e, plan)
		return nil
	},
}

func init() {
	showCmd.Flags().String("student", "", "Student identifier (for the current plan)")
}
