package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL falls back to "memory" for in-memory databases, so
		// journal_mode is only meaningful against file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMasteryCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	missing, err := repo.Get(ctx, "alice", "topic-1")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing state")
	}

	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, &MasteryRecord{
		StudentID:   "alice",
		TopicID:     "topic-1",
		Easiness:    2.5,
		Due:         due,
		LastQuality: -1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Version != 1 {
		t.Errorf("new record version = %d, want 1", created.Version)
	}

	got, err := repo.Get(ctx, "alice", "topic-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Easiness != 2.5 || !got.Due.Equal(due) {
		t.Errorf("get returned %+v", got)
	}

	// Second insert for the same key must hit the unique index.
	if _, err := repo.Create(ctx, &MasteryRecord{
		StudentID: "alice", TopicID: "topic-1", Easiness: 2.5, Due: due,
	}); err == nil {
		t.Error("expected unique constraint violation")
	}
}

func TestMasteryUpdateCAS(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	rec, err := repo.Create(ctx, &MasteryRecord{
		StudentID: "bob", TopicID: "topic-9", Easiness: 2.5,
		Due: time.Now().UTC(), LastQuality: -1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	rec.Easiness = 2.36
	rec.IntervalDays = 1
	rec.Repetitions = 1
	rec.LastQuality = 4
	updated, err := repo.UpdateCAS(ctx, rec)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Version != 2 {
		t.Errorf("version after update = %d, want 2", updated.Version)
	}
	if updated.Easiness != 2.36 || updated.Repetitions != 1 {
		t.Errorf("update lost fields: %+v", updated)
	}

	// Writing with the stale version must fail with ConflictError and
	// leave the row alone.
	stale := *rec // still carries version 1
	stale.Easiness = 1.3
	_, err = repo.UpdateCAS(ctx, &stale)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("stale write: got %v, want ConflictError", err)
	}
	after, err := repo.Get(ctx, "bob", "topic-9")
	if err != nil {
		t.Fatalf("get after conflict: %v", err)
	}
	if after.Easiness != 2.36 || after.Version != 2 {
		t.Errorf("conflicting write mutated the row: %+v", after)
	}
}

func testPlan(planID, studentID string) *PlanRecord {
	return &PlanRecord{
		PlanID:      planID,
		StudentID:   studentID,
		SubjectID:   "gcse-bio",
		StartDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		HorizonDays: 30,
		Sessions: []SessionRecord{
			{PlanID: planID, DayIndex: 0, TopicID: "t1", Role: RoleNew, EstimatedMins: 20},
			{PlanID: planID, DayIndex: 1, TopicID: "t1", Role: RoleReview, EstimatedMins: 20},
			{PlanID: planID, DayIndex: 1, TopicID: "t2", Role: RoleNew, EstimatedMins: 25},
		},
	}
}

func TestPlanPublishGetAndSwap(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	if err := repo.Publish(ctx, testPlan("plan-a", "carol")); err != nil {
		t.Fatalf("publish: %v", err)
	}

	got, err := repo.Get(ctx, "plan-a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || len(got.Sessions) != 3 {
		t.Fatalf("get returned %+v", got)
	}
	if got.Sessions[0].DayIndex != 0 || got.Sessions[0].Role != RoleNew {
		t.Errorf("sessions out of order: %+v", got.Sessions)
	}

	// Publishing a second plan archives the first.
	if err := repo.Publish(ctx, testPlan("plan-b", "carol")); err != nil {
		t.Fatalf("publish second: %v", err)
	}
	current, err := repo.Current(ctx, "carol", "gcse-bio")
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current == nil || current.PlanID != "plan-b" {
		t.Fatalf("current = %+v, want plan-b", current)
	}
	old, err := repo.Get(ctx, "plan-a")
	if err != nil {
		t.Fatalf("get old: %v", err)
	}
	if !old.Archived {
		t.Error("previous plan was not archived")
	}

	// Another student's plans are untouched.
	if err := repo.Publish(ctx, testPlan("plan-c", "dave")); err != nil {
		t.Fatalf("publish other student: %v", err)
	}
	stillCurrent, err := repo.Current(ctx, "carol", "gcse-bio")
	if err != nil {
		t.Fatalf("current after other publish: %v", err)
	}
	if stillCurrent.PlanID != "plan-b" {
		t.Errorf("carol's current plan changed to %s", stillCurrent.PlanID)
	}
}

func TestPlanFindSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	if err := repo.Publish(ctx, testPlan("plan-x", "erin")); err != nil {
		t.Fatalf("publish: %v", err)
	}

	sess, err := repo.FindSession(ctx, "plan-x", 1, "t2")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if sess == nil || sess.Role != RoleNew || sess.EstimatedMins != 25 {
		t.Errorf("find returned %+v", sess)
	}

	missing, err := repo.FindSession(ctx, "plan-x", 7, "t2")
	if err != nil {
		t.Fatalf("find missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unscheduled slot, got %+v", missing)
	}
}

func TestEventAppendAndHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, outcome := range []string{OutcomeCompleted, OutcomeMissed, OutcomeCompleted} {
		err := repo.AppendReview(ctx, ReviewEventData{
			PlanID:         "plan-a",
			StudentID:      "frank",
			TopicID:        "t1",
			DayIndex:       i,
			Outcome:        outcome,
			PerformancePct: float64(50 + i),
			Quality:        3,
			IntervalDays:   i + 1,
			Easiness:       2.5,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.ReviewHistory(ctx, "frank", "t1", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("history length = %d, want 3", len(events))
	}
	// Newest first, sequences strictly decreasing.
	for i := 1; i < len(events); i++ {
		if events[i].Sequence >= events[i-1].Sequence {
			t.Errorf("history not ordered: %d then %d", events[i-1].Sequence, events[i].Sequence)
		}
	}
	if events[0].DayIndex != 2 || events[0].Outcome != OutcomeCompleted {
		t.Errorf("newest event = %+v", events[0])
	}

	limited, err := repo.ReviewHistory(ctx, "frank", "t1", 1)
	if err != nil {
		t.Fatalf("limited history: %v", err)
	}
	if len(limited) != 1 || limited[0].DayIndex != 2 {
		t.Errorf("limited history = %+v", limited)
	}
}
