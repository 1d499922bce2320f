// Package mastery is the durable per-(student, topic) learning state
// container. It holds no scheduling logic: intervals and easiness come
// in from the SM-2 calculator and go out to the store, nothing more.
package mastery

import (
	"context"
	"fmt"
	"time"

	"github.com/revisio/revisio/internal/sm2"
	"github.com/revisio/revisio/internal/store"
)

// State is one student's learning state for one topic.
type State struct {
	StudentID    string
	TopicID      string
	Easiness     float64
	IntervalDays int
	Repetitions  int
	Due          time.Time
	LastQuality  int
	Version      int64
}

// SM2 returns the slice of state the interval calculator consumes.
func (s *State) SM2() sm2.State {
	return sm2.State{
		Easiness:     s.Easiness,
		IntervalDays: s.IntervalDays,
		Repetitions:  s.Repetitions,
	}
}

// Reviewed reports whether the topic has ever been successfully
// introduced (at least one repetition on record).
func (s *State) Reviewed() bool {
	return s.Repetitions > 0 || s.IntervalDays > 0
}

// Tracker provides get-or-create and compare-and-set access to
// mastery states.
type Tracker struct {
	repo store.MasteryRepo
}

// NewTracker creates a tracker over the given repository.
func NewTracker(repo store.MasteryRepo) *Tracker {
	return &Tracker{repo: repo}
}

// GetOrCreate returns the state for (studentID, topicID), creating the
// initial state (EF 2.5, zero interval, due today) on first contact.
// Concurrent first contacts are resolved by the unique index: the
// loser of the insert race re-reads the winner's row.
func (t *Tracker) GetOrCreate(ctx context.Context, studentID, topicID string, now time.Time) (*State, error) {
	rec, err := t.repo.Get(ctx, studentID, topicID)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		return fromRecord(rec), nil
	}

	created, err := t.repo.Create(ctx, &store.MasteryRecord{
		StudentID:   studentID,
		TopicID:     topicID,
		Easiness:    sm2.InitialEasiness,
		Due:         DateOf(now),
		LastQuality: -1,
	})
	if err != nil {
		// Lost the insert race; the winner's row is authoritative.
		if existing, gerr := t.repo.Get(ctx, studentID, topicID); gerr == nil && existing != nil {
			return fromRecord(existing), nil
		}
		return nil, err
	}
	return fromRecord(created), nil
}

// ApplyUpdate writes one SM-2 result to the state: interval, easiness,
// repetition count, due date and last quality land atomically, or not
// at all. The write is a compare-and-set on the version the state was
// read at; a lost race surfaces as *store.ConflictError for the caller
// to retry with fresh state.
func (t *Tracker) ApplyUpdate(ctx context.Context, st *State, res sm2.Result, quality int, now time.Time) (*State, error) {
	updated, err := t.repo.UpdateCAS(ctx, &store.MasteryRecord{
		StudentID:    st.StudentID,
		TopicID:      st.TopicID,
		Easiness:     res.Easiness,
		IntervalDays: res.IntervalDays,
		Repetitions:  res.Repetitions,
		Due:          DateOf(now).AddDate(0, 0, res.IntervalDays),
		LastQuality:  quality,
		Version:      st.Version,
	})
	if err != nil {
		return nil, err
	}
	return fromRecord(updated), nil
}

// Get returns the state, or an error if none exists yet.
func (t *Tracker) Get(ctx context.Context, studentID, topicID string) (*State, error) {
	rec, err := t.repo.Get(ctx, studentID, topicID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("no mastery state for (%s, %s)", studentID, topicID)
	}
	return fromRecord(rec), nil
}

// All returns every state the student has, ordered by topic ID.
func (t *Tracker) All(ctx context.Context, studentID string) ([]*State, error) {
	recs, err := t.repo.List(ctx, studentID)
	if err != nil {
		return nil, err
	}
	out := make([]*State, len(recs))
	for i, rec := range recs {
		out[i] = fromRecord(rec)
	}
	return out, nil
}

// DateOf truncates a time to its UTC calendar date. Due dates are
// whole days; two updates on the same day land on the same date.
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func fromRecord(rec *store.MasteryRecord) *State {
	return &State{
		StudentID:    rec.StudentID,
		TopicID:      rec.TopicID,
		Easiness:     rec.Easiness,
		IntervalDays: rec.IntervalDays,
		Repetitions:  rec.Repetitions,
		Due:          rec.Due,
		LastQuality:  rec.LastQuality,
		Version:      rec.Version,
	}
}
