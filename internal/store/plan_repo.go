package store

import (
	"context"
	"fmt"

	"github.com/revisio/revisio/ent"
	"github.com/revisio/revisio/ent/scheduledsession"
	"github.com/revisio/revisio/ent/studyplan"
)

// planRepo implements PlanRepo on the ent client.
type planRepo struct {
	client *ent.Client
}

// Publish inserts the plan and its sessions and archives every prior
// plan of the same (student, subject) in one transaction. The swap is
// the last step of build-then-switch: a failed build never reaches
// this method, so the previous plan stays current.
func (r *planRepo) Publish(ctx context.Context, plan *PlanRecord) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	_, err = tx.StudyPlan.Create().
		SetPlanID(plan.PlanID).
		SetStudentID(plan.StudentID).
		SetSubjectID(plan.SubjectID).
		SetStartDate(plan.StartDate).
		SetHorizonDays(plan.HorizonDays).
		SetCoverageExtended(plan.CoverageExtended).
		Save(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("create plan: %w", err))
	}

	builders := make([]*ent.ScheduledSessionCreate, len(plan.Sessions))
	for i, sess := range plan.Sessions {
		builders[i] = tx.ScheduledSession.Create().
			SetPlanID(plan.PlanID).
			SetDayIndex(sess.DayIndex).
			SetTopicID(sess.TopicID).
			SetRole(sess.Role).
			SetEstimatedMins(sess.EstimatedMins)
	}
	if _, err := tx.ScheduledSession.CreateBulk(builders...).Save(ctx); err != nil {
		return rollback(tx, fmt.Errorf("create sessions: %w", err))
	}

	_, err = tx.StudyPlan.Update().
		Where(
			studyplan.StudentID(plan.StudentID),
			studyplan.SubjectID(plan.SubjectID),
			studyplan.PlanIDNEQ(plan.PlanID),
			studyplan.Archived(false),
		).
		SetArchived(true).
		Save(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("archive previous plans: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit publish: %w", err)
	}
	return nil
}

func (r *planRepo) Get(ctx context.Context, planID string) (*PlanRecord, error) {
	row, err := r.client.StudyPlan.Query().
		Where(studyplan.PlanID(planID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query plan: %w", err)
	}
	return r.withSessions(ctx, row)
}

func (r *planRepo) Current(ctx context.Context, studentID, subjectID string) (*PlanRecord, error) {
	row, err := r.client.StudyPlan.Query().
		Where(
			studyplan.StudentID(studentID),
			studyplan.SubjectID(subjectID),
			studyplan.Archived(false),
		).
		Order(ent.Desc(studyplan.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query current plan: %w", err)
	}
	return r.withSessions(ctx, row)
}

func (r *planRepo) FindSession(ctx context.Context, planID string, dayIndex int, topicID string) (*SessionRecord, error) {
	row, err := r.client.ScheduledSession.Query().
		Where(
			scheduledsession.PlanID(planID),
			scheduledsession.DayIndex(dayIndex),
			scheduledsession.TopicID(topicID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return &SessionRecord{
		PlanID:        row.PlanID,
		DayIndex:      row.DayIndex,
		TopicID:       row.TopicID,
		Role:          row.Role,
		EstimatedMins: row.EstimatedMins,
	}, nil
}

func (r *planRepo) withSessions(ctx context.Context, row *ent.StudyPlan) (*PlanRecord, error) {
	sessions, err := r.client.ScheduledSession.Query().
		Where(scheduledsession.PlanID(row.PlanID)).
		Order(
			ent.Asc(scheduledsession.FieldDayIndex),
			ent.Asc(scheduledsession.FieldID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plan sessions: %w", err)
	}

	rec := &PlanRecord{
		PlanID:           row.PlanID,
		StudentID:        row.StudentID,
		SubjectID:        row.SubjectID,
		StartDate:        row.StartDate,
		HorizonDays:      row.HorizonDays,
		CoverageExtended: row.CoverageExtended,
		Archived:         row.Archived,
		Sessions:         make([]SessionRecord, len(sessions)),
	}
	for i, sess := range sessions {
		rec.Sessions[i] = SessionRecord{
			PlanID:        sess.PlanID,
			DayIndex:      sess.DayIndex,
			TopicID:       sess.TopicID,
			Role:          sess.Role,
			EstimatedMins: sess.EstimatedMins,
		}
	}
	return rec, nil
}

// rollback rolls the transaction back and joins any rollback failure
// onto the original error.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}
