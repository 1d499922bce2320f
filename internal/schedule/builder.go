// Package schedule turns a student's mastery history and a subject
// syllabus into a published full-horizon study plan.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/revisio/revisio/internal/mastery"
	"github.com/revisio/revisio/internal/planner"
	"github.com/revisio/revisio/internal/store"
	"github.com/revisio/revisio/internal/syllabus"
)

// Builder orchestrates catalog, mastery tracker and planner into plan
// generation. One builder serves any number of students; requests for
// different students are independent and may run concurrently.
type Builder struct {
	catalog *syllabus.Catalog
	tracker *mastery.Tracker
	plans   store.PlanRepo
	cfg     planner.Config
}

// NewBuilder creates a builder. cfg supplies the base pace; a
// subject's daily_budget_mins overrides the budget per subject.
func NewBuilder(catalog *syllabus.Catalog, tracker *mastery.Tracker, plans store.PlanRepo, cfg planner.Config) *Builder {
	return &Builder{catalog: catalog, tracker: tracker, plans: plans, cfg: cfg}
}

// candidate extends the planner candidate with whether it is a real
// persisted due date or a review projected for a topic introduced
// earlier in the same plan. Projected reviews are best-effort;
// persisted ones count toward coverage.
type candidate struct {
	planner.Candidate
	projected bool
}

// CreatePlan builds, validates and publishes a plan covering the
// subject's full syllabus from startDate over horizonDays.
//
// Coverage is the hard guarantee: every syllabus topic gets at least
// one session. If the horizon is too small the builder appends up to
// ceil(horizonDays/2) extra days and flags the plan CoverageExtended;
// beyond that it returns *InfeasibleError and publishes nothing, so a
// previously current plan stays in place (build-then-switch).
func (b *Builder) CreatePlan(ctx context.Context, studentID, subjectID string, horizonDays int, startDate time.Time) (*Plan, error) {
	if studentID == "" {
		return nil, &ValidationError{Field: "student_id", Reason: "must not be empty"}
	}
	if horizonDays <= 0 {
		return nil, &ValidationError{Field: "horizon_days", Reason: fmt.Sprintf("must be positive, got %d", horizonDays)}
	}

	subject, err := b.catalog.Subject(subjectID)
	if err != nil {
		var unknown *syllabus.ErrUnknownSubject
		if errors.As(err, &unknown) {
			return nil, &ValidationError{Field: "subject_id", Reason: err.Error()}
		}
		return nil, err
	}

	pl := b.plannerFor(subject)
	topics, err := b.catalog.Topics(subjectID)
	if err != nil {
		return nil, err
	}

	maxDays := horizonDays + (horizonDays+1)/2
	daysNeeded, oversized := pl.DaysNeeded(topics)
	if len(oversized) > 0 {
		return nil, &InfeasibleError{
			HorizonDays: horizonDays,
			MaxDays:     maxDays,
			Oversized:   oversized,
		}
	}

	start := mastery.DateOf(startDate)

	// Load or create mastery state for every topic up front. Topics
	// with review history enter the due pool at their persisted due
	// date; the rest queue for introduction in syllabus order.
	var duePool []candidate
	var freshQueue []syllabus.Topic
	for _, t := range topics {
		st, err := b.tracker.GetOrCreate(ctx, studentID, t.ID, startDate)
		if err != nil {
			return nil, fmt.Errorf("load mastery state for %s: %w", t.ID, err)
		}
		if st.Reviewed() {
			dueDay := int(st.Due.Sub(start).Hours() / 24)
			if dueDay < 0 {
				dueDay = 0
			}
			// A topic due past the horizon belongs to a later plan;
			// pulling its review forward would break the spacing.
			if dueDay >= horizonDays {
				continue
			}
			duePool = append(duePool, candidate{
				Candidate: planner.Candidate{Topic: t, DueDay: dueDay},
			})
		} else {
			freshQueue = append(freshQueue, t)
		}
	}

	planID := uuid.NewString()
	var sessions []Session
	coverageExtended := false

	for day := 0; day < maxDays; day++ {
		if day >= horizonDays && len(freshQueue) == 0 && !hasPersistedDue(duePool) {
			break
		}

		var dueToday []planner.Candidate
		var dueLater []candidate
		byTopic := make(map[string]candidate)
		for _, c := range duePool {
			if c.DueDay <= day {
				dueToday = append(dueToday, c.Candidate)
				byTopic[c.Topic.ID] = c
			} else {
				dueLater = append(dueLater, c)
			}
		}

		sel := pl.SelectDay(dueToday, freshQueue)
		for _, e := range sel.Entries {
			sessions = append(sessions, Session{
				PlanID:        planID,
				DayIndex:      day,
				TopicID:       e.Topic.ID,
				Role:          e.Role,
				EstimatedMins: e.Topic.EstimatedMins,
			})
			if day >= horizonDays {
				coverageExtended = true
			}
			// A topic introduced today gets its first review projected
			// one day out (the SM-2 first interval). Later intervals
			// come from real completion signals, not from the plan.
			if e.Role == planner.RoleNew {
				dueLater = append(dueLater, candidate{
					Candidate: planner.Candidate{Topic: e.Topic, DueDay: day + 1},
					projected: true,
				})
			}
		}
		for _, c := range sel.LeftoverDue {
			dueLater = append(dueLater, byTopic[c.Topic.ID])
		}
		duePool = dueLater
		freshQueue = sel.LeftoverFresh
	}

	if len(freshQueue) > 0 || hasPersistedDue(duePool) {
		remaining := make([]string, 0, len(freshQueue))
		for _, t := range freshQueue {
			remaining = append(remaining, t.ID)
		}
		for _, c := range duePool {
			if !c.projected {
				remaining = append(remaining, c.Topic.ID)
			}
		}
		return nil, &InfeasibleError{
			HorizonDays:     horizonDays,
			MaxDays:         maxDays,
			DaysNeeded:      daysNeeded,
			TopicsRemaining: remaining,
		}
	}

	plan := &Plan{
		ID:               planID,
		StudentID:        studentID,
		SubjectID:        subjectID,
		StartDate:        start,
		HorizonDays:      horizonDays,
		CoverageExtended: coverageExtended,
		Sessions:         sessions,
	}
	if err := b.plans.Publish(ctx, plan.toRecord()); err != nil {
		return nil, fmt.Errorf("publish plan: %w", err)
	}
	return plan, nil
}

// GetPlan returns a plan by ID. Reads are idempotent; the stored plan
// never changes after publish.
func (b *Builder) GetPlan(ctx context.Context, planID string) (*Plan, error) {
	rec, err := b.plans.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, &ValidationError{Field: "plan_id", Reason: fmt.Sprintf("unknown plan %q", planID)}
	}
	return planFromRecord(rec), nil
}

// CurrentPlan returns the student's non-archived plan for a subject,
// or nil if none has been created yet.
func (b *Builder) CurrentPlan(ctx context.Context, studentID, subjectID string) (*Plan, error) {
	rec, err := b.plans.Current(ctx, studentID, subjectID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return planFromRecord(rec), nil
}

func (b *Builder) plannerFor(s *syllabus.Syllabus) *planner.Planner {
	cfg := b.cfg
	if s.DailyBudgetMins > 0 {
		cfg.DailyBudgetMins = s.DailyBudgetMins
	}
	return planner.New(cfg)
}

func hasPersistedDue(pool []candidate) bool {
	for _, c := range pool {
		if !c.projected {
			return true
		}
	}
	return false
}
