package schedule

import (
	"fmt"
	"strings"
)

// ValidationError reports malformed input: non-positive horizon,
// unknown subject or plan IDs, out-of-range percentages. Nothing is
// mutated when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InfeasibleError reports that the syllabus cannot be covered within
// the horizon (plus the bounded extension) at the configured pace. It
// carries the shortfall so the caller can offer to extend the horizon
// or reduce the daily load. No partial plan is stored.
type InfeasibleError struct {
	HorizonDays     int
	MaxDays         int
	DaysNeeded      int
	TopicsRemaining []string
	Oversized       []string
}

func (e *InfeasibleError) Error() string {
	if len(e.Oversized) > 0 {
		return fmt.Sprintf("topics [%s] exceed the daily time budget; increase the budget or split the topics",
			strings.Join(e.Oversized, ", "))
	}
	return fmt.Sprintf("syllabus cannot be covered within %d days (max %d with extension): %d topics remain, about %d days needed; extend the horizon or reduce the daily load",
		e.HorizonDays, e.MaxDays, len(e.TopicsRemaining), e.DaysNeeded)
}
