package mastery

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/revisio/revisio/internal/sm2"
	"github.com/revisio/revisio/internal/store"
)

// fakeRepo is an in-memory MasteryRepo with the same versioning
// semantics as the SQL implementation.
type fakeRepo struct {
	rows       map[string]*store.MasteryRecord
	failCreate bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[string]*store.MasteryRecord)}
}

func key(studentID, topicID string) string { return studentID + "/" + topicID }

func (f *fakeRepo) Get(_ context.Context, studentID, topicID string) (*store.MasteryRecord, error) {
	rec, ok := f.rows[key(studentID, topicID)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeRepo) Create(_ context.Context, rec *store.MasteryRecord) (*store.MasteryRecord, error) {
	k := key(rec.StudentID, rec.TopicID)
	if f.failCreate {
		return nil, fmt.Errorf("simulated insert failure")
	}
	if _, exists := f.rows[k]; exists {
		return nil, fmt.Errorf("unique constraint violation")
	}
	cp := *rec
	cp.Version = 1
	f.rows[k] = &cp
	out := cp
	return &out, nil
}

func (f *fakeRepo) UpdateCAS(_ context.Context, rec *store.MasteryRecord) (*store.MasteryRecord, error) {
	k := key(rec.StudentID, rec.TopicID)
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

func (f *fakeRepo) List(_ context.Context, studentID string) ([]*store.MasteryRecord, error) {
	var out []*store.MasteryRecord
	for _, rec := range f.rows {
		if rec.StudentID == studentID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

var day0 = time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)

func TestGetOrCreateInitialState(t *testing.T) {
	tr := NewTracker(newFakeRepo())
	ctx := context.Background()

	st, err := tr.GetOrCreate(ctx, "alice", "t1", day0)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if st.Easiness != sm2.InitialEasiness {
		t.Errorf("easiness = %v, want %v", st.Easiness, sm2.InitialEasiness)
	}
	if st.IntervalDays != 0 || st.Repetitions != 0 {
		t.Errorf("fresh state not zeroed: %+v", st)
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !st.Due.Equal(want) {
		t.Errorf("due = %v, want start of day %v", st.Due, want)
	}
	if st.LastQuality != -1 {
		t.Errorf("last quality = %d, want -1", st.LastQuality)
	}

	// Second call returns the same state, not a new one.
	again, err := tr.GetOrCreate(ctx, "alice", "t1", day0.Add(48*time.Hour))
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if !again.Due.Equal(st.Due) || again.Version != st.Version {
		t.Errorf("second call changed state: %+v vs %+v", again, st)
	}
}

func TestGetOrCreateLosesInsertRace(t *testing.T) {
	repo := newFakeRepo()
	tr := NewTracker(repo)
	ctx := context.Background()

	// Simulate the race: the insert fails, but by the time we re-read,
	// another writer's row is there.
	repo.failCreate = true
	repo.rows[key("bob", "t2")] = &store.MasteryRecord{
		StudentID: "bob", TopicID: "t2", Easiness: 2.2,
		IntervalDays: 6, Repetitions: 2, Version: 3,
	}

	st, err := tr.GetOrCreate(ctx, "bob", "t2", day0)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if st.Easiness != 2.2 || st.Version != 3 {
		t.Errorf("expected the winner's row, got %+v", st)
	}
}

func TestApplyUpdateSetsDueFromInterval(t *testing.T) {
	tr := NewTracker(newFakeRepo())
	ctx := context.Background()

	st, err := tr.GetOrCreate(ctx, "carol", "t3", day0)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}

	res, err := sm2.Compute(st.SM2(), 4)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	updated, err := tr.ApplyUpdate(ctx, st, res, 4, day0)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if updated.IntervalDays != 1 || updated.Repetitions != 1 {
		t.Errorf("updated state %+v", updated)
	}
	wantDue := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if !updated.Due.Equal(wantDue) {
		t.Errorf("due = %v, want %v", updated.Due, wantDue)
	}
	if updated.LastQuality != 4 {
		t.Errorf("last quality = %d, want 4", updated.LastQuality)
	}
	if updated.Version != st.Version+1 {
		t.Errorf("version = %d, want %d", updated.Version, st.Version+1)
	}
}

func TestApplyUpdateDueMonotonicOnSuccess(t *testing.T) {
	tr := NewTracker(newFakeRepo())
	ctx := context.Background()

	st, err := tr.GetOrCreate(ctx, "dave", "t4", day0)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}

	now := day0
	prevDue := st.Due
	for i := 0; i < 6; i++ {
		res, err := sm2.Compute(st.SM2(), 5)
		if err != nil {
			t.Fatalf("compute %d: %v", i, err)
		}
		st, err = tr.ApplyUpdate(ctx, st, res, 5, now)
		if err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
		if st.Due.Before(prevDue) {
			t.Fatalf("step %d: due moved backwards, %v -> %v", i, prevDue, st.Due)
		}
		prevDue = st.Due
		now = st.Due // next review happens when due
	}
}

func TestApplyUpdateConflictPassesThrough(t *testing.T) {
	repo := newFakeRepo()
	tr := NewTracker(repo)
	ctx := context.Background()

	st, err := tr.GetOrCreate(ctx, "erin", "t5", day0)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}

	// Another writer bumps the version under us.
	repo.rows[key("erin", "t5")].Version = 7

	res, err := sm2.Compute(st.SM2(), 3)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	_, err = tr.ApplyUpdate(ctx, st, res, 3, day0)
	var conflict *store.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("got %v, want ConflictError", err)
	}
}
