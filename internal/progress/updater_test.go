package progress

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/revisio/revisio/internal/mastery"
	"github.com/revisio/revisio/internal/schedule"
	"github.com/revisio/revisio/internal/store"
	"github.com/revisio/revisio/internal/syllabus"
)

var reviewTime = time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)

type fakeMasteryRepo struct {
	rows      map[string]*store.MasteryRecord
	conflicts int // UpdateCAS calls to fail before succeeding
	casCalls  int
}

func newFakeMasteryRepo() *fakeMasteryRepo {
	return &fakeMasteryRepo{rows: make(map[string]*store.MasteryRecord)}
}

func mkey(studentID, topicID string) string { return studentID + "/" + topicID }

func (f *fakeMasteryRepo) Get(_ context.Context, studentID, topicID string) (*store.MasteryRecord, error) {
	rec, ok := f.rows[mkey(studentID, topicID)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeMasteryRepo) Create(_ context.Context, rec *store.MasteryRecord) (*store.MasteryRecord, error) {
	cp := *rec
	cp.Version = 1
	f.rows[mkey(rec.StudentID, rec.TopicID)] = &cp
	out := cp
	return &out, nil
}

func (f *fakeMasteryRepo) UpdateCAS(_ context.Context, rec *store.MasteryRecord) (*store.MasteryRecord, error) {
	f.casCalls++
	if f.conflicts > 0 {
		f.conflicts--
		return nil, &store.ConflictError{StudentID: rec.StudentID, TopicID: rec.TopicID, Version: rec.Version}
	}
	k := mkey(rec.StudentID, rec.TopicID)
	current, ok := f.rows[k]
	if !ok || current.Version != rec.Version {
		return nil, &store.ConflictError{StudentID: rec.StudentID, TopicID: rec.TopicID, Version: rec.Version}
	}
	cp := *rec
	cp.Version = rec.Version + 1
	f.rows[k] = &cp
	out := cp
	return &out, nil
}

func (f *fakeMasteryRepo) List(context.Context, string) ([]*store.MasteryRecord, error) {
	return nil, nil
}

type fakePlanRepo struct {
	plan *store.PlanRecord
}

func (f *fakePlanRepo) Publish(context.Context, *store.PlanRecord) error { return nil }

func (f *fakePlanRepo) Get(_ context.Context, planID string) (*store.PlanRecord, error) {
	if f.plan != nil && f.plan.PlanID == planID {
		cp := *f.plan
		return &cp, nil
	}
	return nil, nil
}

func (f *fakePlanRepo) Current(context.Context, string, string) (*store.PlanRecord, error) {
	return nil, nil
}

func (f *fakePlanRepo) FindSession(_ context.Context, planID string, dayIndex int, topicID string) (*store.SessionRecord, error) {
	if f.plan == nil || f.plan.PlanID != planID {
		return nil, nil
	}
	for _, s := range f.plan.Sessions {
		if s.DayIndex == dayIndex && s.TopicID == topicID {
			cp := s
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeEventRepo struct {
	appended []store.ReviewEventData
}

func (f *fakeEventRepo) AppendReview(_ context.Context, data store.ReviewEventData) error {
	f.appended = append(f.appended, data)
	return nil
}

func (f *fakeEventRepo) ReviewHistory(context.Context, string, string, int) ([]store.ReviewEventRecord, error) {
	return nil, nil
}

func testCatalog(t *testing.T) *syllabus.Catalog {
	t.Helper()
	doc := map[string]any{
		"subject_id": "gcse-bio",
		"name":       "GCSE Biology",
		"sections":   []map[string]any{{"id": "cells", "name": "Cells"}},
		"topics": []map[string]any{
			{"id": "t00", "section_id": "cells", "sequence_index": 0, "name": "Cell structure", "estimated_mins": 20},
			{"id": "t01", "section_id": "cells", "sequence_index": 1, "name": "Transport", "estimated_mins": 20},
		},
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	s, err := syllabus.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	return syllabus.NewCatalog(s)
}

func newTestUpdater(t *testing.T) (*Updater, *fakeMasteryRepo, *fakeEventRepo) {
	t.Helper()
	mrepo := newFakeMasteryRepo()
	events := &fakeEventRepo{}
	plans := &fakePlanRepo{plan: &store.PlanRecord{
		PlanID:    "plan-1",
		StudentID: "alice",
		SubjectID: "gcse-bio",
		Sessions: []store.SessionRecord{
			{PlanID: "plan-1", DayIndex: 0, TopicID: "t00", Role: store.RoleNew, EstimatedMins: 20},
			{PlanID: "plan-1", DayIndex: 1, TopicID: "t00", Role: store.RoleReview, EstimatedMins: 20},
			{PlanID: "plan-1", DayIndex: 0, TopicID: "t01", Role: store.RoleNew, EstimatedMins: 20},
		},
	}}
	u := NewUpdater(testCatalog(t), mastery.NewTracker(mrepo), plans, events)
	return u, mrepo, events
}

func TestMarkCompleteFirstReview(t *testing.T) {
	u, _, events := newTestUpdater(t)

	st, err := u.MarkComplete(context.Background(), "plan-1", 0, "t00", 95, reviewTime)
	if err != nil {
		t.Fatalf("mark complete: %v", err)
	}
	if st.Repetitions != 1 || st.IntervalDays != 1 {
		t.Errorf("state = reps %d, interval %d; want 1, 1", st.Repetitions, st.IntervalDays)
	}
	if st.Easiness != 2.5 {
		t.Errorf("easiness = %v, want clamp at 2.5", st.Easiness)
	}
	wantDue := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	if !st.Due.Equal(wantDue) {
		t.Errorf("due = %v, want %v", st.Due, wantDue)
	}

	if len(events.appended) != 1 {
		t.Fatalf("appended %d events, want 1", len(events.appended))
	}
	ev := events.appended[0]
	if ev.Outcome != store.OutcomeCompleted || ev.Quality != 5 || ev.IntervalDays != 1 {
		t.Errorf("event = %+v", ev)
	}
	if ev.StudentID != "alice" || ev.PlanID != "plan-1" || ev.DayIndex != 0 {
		t.Errorf("event identity = %+v", ev)
	}
}

func TestMarkCompleteFailureResetsRepetitions(t *testing.T) {
	u, mrepo, events := newTestUpdater(t)
	mrepo.rows[mkey("alice", "t00")] = &store.MasteryRecord{
		StudentID: "alice", TopicID: "t00",
		Easiness: 2.1, IntervalDays: 6, Repetitions: 2,
		Due: reviewTime, Version: 3,
	}

	st, err := u.MarkComplete(context.Background(), "plan-1", 1, "t00", 10, reviewTime)
	if err != nil {
		t.Fatalf("mark complete: %v", err)
	}
	if st.Repetitions != 0 || st.IntervalDays != 1 {
		t.Errorf("state = reps %d, interval %d; want reset to 0, 1", st.Repetitions, st.IntervalDays)
	}
	if math.Abs(st.Easiness-1.3) > 1e-9 {
		t.Errorf("easiness = %v, want floor 1.3", st.Easiness)
	}
	if events.appended[0].Quality != 0 {
		t.Errorf("quality = %d, want 0", events.appended[0].Quality)
	}
}

func TestMarkCompleteValidation(t *testing.T) {
	u, _, events := newTestUpdater(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		plan  string
		day   int
		topic string
		pct   float64
	}{
		{"negative pct", "plan-1", 0, "t00", -1},
		{"pct above 100", "plan-1", 0, "t00", 101},
		{"unknown plan", "plan-9", 0, "t00", 80},
		{"no such session", "plan-1", 5, "t00", 80},
		{"wrong topic", "plan-1", 1, "t01", 80},
	}
	for _, tt := range tests {
		_, err := u.MarkComplete(ctx, tt.plan, tt.day, tt.topic, tt.pct, reviewTime)
		var verr *schedule.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: got %v, want ValidationError", tt.name, err)
		}
	}
	if len(events.appended) != 0 {
		t.Error("rejected signals must not reach the event log")
	}
}

func TestMarkCompleteRetriesOnConflict(t *testing.T) {
	u, mrepo, events := newTestUpdater(t)
	mrepo.conflicts = 2

	st, err := u.MarkComplete(context.Background(), "plan-1", 0, "t00", 80, reviewTime)
	if err != nil {
		t.Fatalf("mark complete: %v", err)
	}
	if mrepo.casCalls != 3 {
		t.Errorf("cas calls = %d, want 3", mrepo.casCalls)
	}
	if st.Repetitions != 1 {
		t.Errorf("repetitions = %d, want 1", st.Repetitions)
	}
	if len(events.appended) != 1 {
		t.Errorf("appended %d events, want exactly 1 despite retries", len(events.appended))
	}
}

func TestMarkCompleteGivesUpAfterRetries(t *testing.T) {
	u, mrepo, events := newTestUpdater(t)
	mrepo.conflicts = 100

	_, err := u.MarkComplete(context.Background(), "plan-1", 0, "t00", 80, reviewTime)
	var conflict *store.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("got %v, want wrapped ConflictError", err)
	}
	if mrepo.casCalls != 5 {
		t.Errorf("cas calls = %d, want bounded at 5", mrepo.casCalls)
	}
	if len(events.appended) != 0 {
		t.Error("failed update must not append an event")
	}
}

func TestMarkMissedLeavesMasteryAlone(t *testing.T) {
	u, mrepo, events := newTestUpdater(t)
	mrepo.rows[mkey("alice", "t00")] = &store.MasteryRecord{
		StudentID: "alice", TopicID: "t00",
		Easiness: 2.2, IntervalDays: 6, Repetitions: 2,
		Due: reviewTime, Version: 4,
	}

	if err := u.MarkMissed(context.Background(), "plan-1", 1, "t00", reviewTime); err != nil {
		t.Fatalf("mark missed: %v", err)
	}

	rec := mrepo.rows[mkey("alice", "t00")]
	if rec.Version != 4 || rec.Repetitions != 2 || rec.IntervalDays != 6 {
		t.Errorf("mastery state changed by a missed signal: %+v", rec)
	}
	if len(events.appended) != 1 {
		t.Fatalf("appended %d events, want 1", len(events.appended))
	}
	ev := events.appended[0]
	if ev.Outcome != store.OutcomeMissed || ev.Quality != -1 {
		t.Errorf("event = %+v", ev)
	}
	if ev.IntervalDays != 6 {
		t.Errorf("event interval snapshot = %d, want 6", ev.IntervalDays)
	}
}

func TestMarkMissedUnknownSession(t *testing.T) {
	u, _, _ := newTestUpdater(t)

	err := u.MarkMissed(context.Background(), "plan-1", 9, "t00", reviewTime)
	var verr *schedule.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
}
