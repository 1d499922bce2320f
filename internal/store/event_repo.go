package store

import (
	"context"
	"fmt"

	"github.com/revisio/revisio/ent"
	"github.com/revisio/revisio/ent/reviewevent"
)

// eventRepo implements EventRepo on the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendReview(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetPlanID(data.PlanID).
		SetStudentID(data.StudentID).
		SetTopicID(data.TopicID).
		SetDayIndex(data.DayIndex).
		SetOutcome(data.Outcome).
		SetPerformancePct(data.PerformancePct).
		SetQuality(data.Quality).
		SetIntervalDays(data.IntervalDays).
		SetEasiness(data.Easiness).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) ReviewHistory(ctx context.Context, studentID, topicID string, limit int) ([]ReviewEventRecord, error) {
	q := r.client.ReviewEvent.Query().
		Where(
			reviewevent.StudentID(studentID),
			reviewevent.TopicID(topicID),
		).
		Order(ent.Desc(reviewevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review history: %w", err)
	}

	out := make([]ReviewEventRecord, len(rows))
	for i, row := range rows {
		out[i] = ReviewEventRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			ReviewEventData: ReviewEventData{
				PlanID:         row.PlanID,
				StudentID:      row.StudentID,
				TopicID:        row.TopicID,
				DayIndex:       row.DayIndex,
				Outcome:        row.Outcome,
				PerformancePct: row.PerformancePct,
				Quality:        row.Quality,
				IntervalDays:   row.IntervalDays,
				Easiness:       row.Easiness,
			},
		}
	}
	return out, nil
}
