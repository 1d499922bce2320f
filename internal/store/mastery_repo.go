package store

import (
	"context"
	"fmt"

	"github.com/revisio/revisio/ent"
	"github.com/revisio/revisio/ent/masterystate"
)

// masteryRepo implements MasteryRepo on the ent client.
type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Get(ctx context.Context, studentID, topicID string) (*MasteryRecord, error) {
	row, err := r.client.MasteryState.Query().
		Where(
			masterystate.StudentID(studentID),
			masterystate.TopicID(topicID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query mastery state: %w", err)
	}
	return entToMasteryRecord(row), nil
}

func (r *masteryRepo) Create(ctx context.Context, rec *MasteryRecord) (*MasteryRecord, error) {
	row, err := r.client.MasteryState.Create().
		SetStudentID(rec.StudentID).
		SetTopicID(rec.TopicID).
		SetEasiness(rec.Easiness).
		SetIntervalDays(rec.IntervalDays).
		SetRepetitions(rec.Repetitions).
		SetDue(rec.Due).
		SetLastQuality(rec.LastQuality).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create mastery state: %w", err)
	}
	return entToMasteryRecord(row), nil
}

func (r *masteryRepo) UpdateCAS(ctx context.Context, rec *MasteryRecord) (*MasteryRecord, error) {
	n, err := r.client.MasteryState.Update().
		Where(
			masterystate.StudentID(rec.StudentID),
			masterystate.TopicID(rec.TopicID),
			masterystate.Version(rec.Version),
		).
		SetEasiness(rec.Easiness).
		SetIntervalDays(rec.IntervalDays).
		SetRepetitions(rec.Repetitions).
		SetDue(rec.Due).
		SetLastQuality(rec.LastQuality).
		SetVersion(rec.Version + 1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update mastery state: %w", err)
	}
	if n == 0 {
		return nil, &ConflictError{
			StudentID: rec.StudentID,
			TopicID:   rec.TopicID,
			Version:   rec.Version,
		}
	}
	return r.Get(ctx, rec.StudentID, rec.TopicID)
}

func (r *masteryRepo) List(ctx context.Context, studentID string) ([]*MasteryRecord, error) {
	rows, err := r.client.MasteryState.Query().
		Where(masterystate.StudentID(studentID)).
		Order(ent.Asc(masterystate.FieldTopicID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mastery states: %w", err)
	}
	out := make([]*MasteryRecord, len(rows))
	for i, row := range rows {
		out[i] = entToMasteryRecord(row)
	}
	return out, nil
}

func entToMasteryRecord(row *ent.MasteryState) *MasteryRecord {
	return &MasteryRecord{
		ID:           row.ID,
		StudentID:    row.StudentID,
		TopicID:      row.TopicID,
		Easiness:     row.Easiness,
		IntervalDays: row.IntervalDays,
		Repetitions:  row.Repetitions,
		Due:          row.Due,
		LastQuality:  row.LastQuality,
		Version:      row.Version,
	}
}
