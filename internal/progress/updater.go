// Package progress receives study-session outcomes and folds them into
// mastery state and the review event log.
package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/revisio/revisio/internal/mastery"
	"github.com/revisio/revisio/internal/schedule"
	"github.com/revisio/revisio/internal/sm2"
	"github.com/revisio/revisio/internal/store"
	"github.com/revisio/revisio/internal/syllabus"
)

// casRetries bounds the reload-and-retry loop on write conflicts.
// Conflicts need two devices grading the same topic in the same
// instant, so one or two retries is already generous.
const casRetries = 5

// Updater applies completion and missed signals for scheduled
// sessions. Signals are idempotent at the event level: every call
// appends to the log, and mastery moves only on completions.
type Updater struct {
	catalog *syllabus.Catalog
	tracker *mastery.Tracker
	plans   store.PlanRepo
	events  store.EventRepo
}

// NewUpdater creates an updater over the given collaborators.
func NewUpdater(catalog *syllabus.Catalog, tracker *mastery.Tracker, plans store.PlanRepo, events store.EventRepo) *Updater {
	return &Updater{catalog: catalog, tracker: tracker, plans: plans, events: events}
}

// MarkComplete records that the student finished the scheduled session
// with the given performance percentage. The percentage maps to an
// SM-2 quality through the subject's grading bands, the mastery state
// advances under compare-and-set, and a completion event is appended.
// The updated state is returned.
func (u *Updater) MarkComplete(ctx context.Context, planID string, dayIndex int, topicID string, performancePct float64, now time.Time) (*mastery.State, error) {
	if performancePct < 0 || performancePct > 100 {
		return nil, &schedule.ValidationError{
			Field:  "performance_pct",
			Reason: fmt.Sprintf("must be between 0 and 100, got %g", performancePct),
		}
	}

	plan, sess, err := u.resolveSession(ctx, planID, dayIndex, topicID)
	if err != nil {
		return nil, err
	}

	subject, err := u.catalog.Subject(plan.SubjectID)
	if err != nil {
		return nil, err
	}
	qm, err := subject.QualityMap()
	if err != nil {
		return nil, err
	}
	quality := qm.Quality(performancePct)

	var updated *mastery.State
	var res sm2.Result
	for attempt := 0; ; attempt++ {
		st, err := u.tracker.GetOrCreate(ctx, plan.StudentID, topicID, now)
		if err != nil {
			return nil, err
		}
		res, err = sm2.Compute(st.SM2(), quality)
		if err != nil {
			return nil, err
		}
		updated, err = u.tracker.ApplyUpdate(ctx, st, res, quality, now)
		if err == nil {
			break
		}
		var conflict *store.ConflictError
		if !errors.As(err, &conflict) || attempt+1 >= casRetries {
			return nil, fmt.Errorf("update mastery for %s: %w", topicID, err)
		}
	}

	if err := u.events.AppendReview(ctx, store.ReviewEventData{
		PlanID:         planID,
		StudentID:      plan.StudentID,
		TopicID:        topicID,
		DayIndex:       sess.DayIndex,
		Outcome:        store.OutcomeCompleted,
		PerformancePct: performancePct,
		Quality:        quality,
		IntervalDays:   res.IntervalDays,
		Easiness:       res.Easiness,
	}); err != nil {
		return nil, fmt.Errorf("append review event: %w", err)
	}
	return updated, nil
}

// MarkMissed records that the scheduled session did not happen. The
// mastery state is left untouched; the topic simply stays due, and
// the regenerated plan will reschedule it.
func (u *Updater) MarkMissed(ctx context.Context, planID string, dayIndex int, topicID string, now time.Time) error {
	plan, sess, err := u.resolveSession(ctx, planID, dayIndex, topicID)
	if err != nil {
		return err
	}

	data := store.ReviewEventData{
		PlanID:    planID,
		StudentID: plan.StudentID,
		TopicID:   topicID,
		DayIndex:  sess.DayIndex,
		Outcome:   store.OutcomeMissed,
		Quality:   -1,
	}
	// Snapshot the state the topic stays at, when there is one.
	if st, err := u.tracker.Get(ctx, plan.StudentID, topicID); err == nil {
		data.IntervalDays = st.IntervalDays
		data.Easiness = st.Easiness
	}

	if err := u.events.AppendReview(ctx, data); err != nil {
		return fmt.Errorf("append review event: %w", err)
	}
	return nil
}

// History returns the student's most recent review events for a topic,
// newest first.
func (u *Updater) History(ctx context.Context, studentID, topicID string, limit int) ([]store.ReviewEventRecord, error) {
	return u.events.ReviewHistory(ctx, studentID, topicID, limit)
}

func (u *Updater) resolveSession(ctx context.Context, planID string, dayIndex int, topicID string) (*store.PlanRecord, *store.SessionRecord, error) {
	plan, err := u.plans.Get(ctx, planID)
	if err != nil {
		return nil, nil, err
	}
	if plan == nil {
		return nil, nil, &schedule.ValidationError{Field: "plan_id", Reason: fmt.Sprintf("unknown plan %q", planID)}
	}
	sess, err := u.plans.FindSession(ctx, planID, dayIndex, topicID)
	if err != nil {
		return nil, nil, err
	}
	if sess == nil {
		return nil, nil, &schedule.ValidationError{
			Field:  "session",
			Reason: fmt.Sprintf("plan %s has no session for topic %s on day %d", planID, topicID, dayIndex),
		}
	}
	return plan, sess, nil
}
