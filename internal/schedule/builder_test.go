package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/revisio/revisio/internal/mastery"
	"github.com/revisio/revisio/internal/planner"
	"github.com/revisio/revisio/internal/store"
	"github.com/revisio/revisio/internal/syllabus"
)

var planStart = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// fakeMasteryRepo is an in-memory MasteryRepo with real versioning.
type fakeMasteryRepo struct {
	rows map[string]*store.MasteryRecord
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
	k := mkey(rec.StudentID, rec.TopicID)
	if _, exists := f.rows[k]; exists {
		return nil, fmt.Errorf("unique constraint violation")
	}
	cp := *rec
	cp.Version = 1
	f.rows[k] = &cp
	out := cp
	return &out, nil
}

func (f *fakeMasteryRepo) UpdateCAS(_ context.Context, rec *store.MasteryRecord) (*store.MasteryRecord, error) {
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

func (f *fakeMasteryRepo) List(_ context.Context, studentID string) ([]*store.MasteryRecord, error) {
	var out []*store.MasteryRecord
	for _, rec := range f.rows {
		if rec.StudentID == studentID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakePlanRepo stores published plans in memory.
type fakePlanRepo struct {
	published []*store.PlanRecord
}

func (f *fakePlanRepo) Publish(_ context.Context, plan *store.PlanRecord) error {
	for _, p := range f.published {
		if p.StudentID == plan.StudentID && p.SubjectID == plan.SubjectID {
			p.Archived = true
		}
	}
	cp := *plan
	f.published = append(f.published, &cp)
	return nil
}

func (f *fakePlanRepo) Get(_ context.Context, planID string) (*store.PlanRecord, error) {
	for _, p := range f.published {
		if p.PlanID == planID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakePlanRepo) Current(_ context.Context, studentID, subjectID string) (*store.PlanRecord, error) {
	for i := len(f.published) - 1; i >= 0; i-- {
		p := f.published[i]
		if p.StudentID == studentID && p.SubjectID == subjectID && !p.Archived {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakePlanRepo) FindSession(_ context.Context, planID string, dayIndex int, topicID string) (*store.SessionRecord, error) {
	for _, p := range f.published {
		if p.PlanID != planID {
			continue
		}
		for _, s := range p.Sessions {
			if s.DayIndex == dayIndex && s.TopicID == topicID {
				cp := s
				return &cp, nil
			}
		}
	}
	return nil, nil
}

// testSyllabus builds n 20-minute topics spread over four sections in
// contiguous blocks, the way a real syllabus orders them.
func testSyllabus(n int) *syllabus.Syllabus {
	secIDs := []string{"cells", "organisation", "infection", "bioenergetics"}
	var sections []syllabus.Section
	for _, id := range secIDs {
		sections = append(sections, syllabus.Section{ID: id, Name: id})
	}
	per := (n + len(secIDs) - 1) / len(secIDs)
	var topics []syllabus.Topic
	for i := 0; i < n; i++ {
		topics = append(topics, syllabus.Topic{
			ID:            fmt.Sprintf("t%02d", i),
			SectionID:     secIDs[i/per],
			SequenceIndex: i,
			Name:          fmt.Sprintf("Topic %d", i),
			EstimatedMins: 20,
		})
	}
	doc := struct {
		SubjectID       string             `json:"subject_id"`
		Name            string             `json:"name"`
		DailyBudgetMins int                `json:"daily_budget_mins"`
		Sections        []syllabus.Section `json:"sections"`
		Topics          []syllabus.Topic   `json:"topics"`
	}{"gcse-bio", "GCSE Biology", 60, sections, topics}
	raw, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	s, err := syllabus.Parse(raw)
	if err != nil {
		panic(err)
	}
	return s
}

func newTestBuilder(n int) (*Builder, *fakeMasteryRepo, *fakePlanRepo) {
	mrepo := newFakeMasteryRepo()
	prepo := &fakePlanRepo{}
	b := NewBuilder(
		syllabus.NewCatalog(testSyllabus(n)),
		mastery.NewTracker(mrepo),
		prepo,
		planner.DefaultConfig(),
	)
	return b, mrepo, prepo
}

func TestCreatePlanValidation(t *testing.T) {
	b, _, prepo := newTestBuilder(8)
	ctx := context.Background()

	tests := []struct {
		name    string
		student string
		subject string
		horizon int
	}{
		{"zero horizon", "alice", "gcse-bio", 0},
		{"negative horizon", "alice", "gcse-bio", -3},
		{"empty student", "", "gcse-bio", 30},
		{"unknown subject", "alice", "a-level-maths", 30},
	}
	for _, tt := range tests {
		_, err := b.CreatePlan(ctx, tt.student, tt.subject, tt.horizon, planStart)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: got %v, want ValidationError", tt.name, err)
		}
	}
	if len(prepo.published) != 0 {
		t.Error("validation failure must not persist anything")
	}
}

func TestCreatePlanCoversFullSyllabus(t *testing.T) {
	// 40 topics at 20 minutes, 60 minutes per day, 30-day horizon:
	// everything fits without extension.
	b, _, prepo := newTestBuilder(40)
	ctx := context.Background()

	plan, err := b.CreatePlan(ctx, "alice", "gcse-bio", 30, planStart)
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	if plan.CoverageExtended {
		t.Error("coverage_extended set on a feasible plan")
	}

	introduced := make(map[string]int)
	for _, s := range plan.Sessions {
		if s.Role == store.RoleNew {
			introduced[s.TopicID] = s.DayIndex
		}
	}
	if len(introduced) != 40 {
		t.Fatalf("introduced %d topics, want 40", len(introduced))
	}
	for id, day := range introduced {
		if day >= 30 {
			t.Errorf("topic %s introduced on day %d, past the horizon", id, day)
		}
	}
	if len(prepo.published) != 1 {
		t.Fatalf("published %d plans, want 1", len(prepo.published))
	}
}

func TestCreatePlanRespectsDailyInvariants(t *testing.T) {
	b, _, _ := newTestBuilder(40)
	ctx := context.Background()

	plan, err := b.CreatePlan(ctx, "alice", "gcse-bio", 30, planStart)
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}

	syl := testSyllabus(40)
	for day := 0; day < plan.Days(); day++ {
		mins := 0
		perSection := make(map[string]int)
		for _, s := range plan.SessionsForDay(day) {
			mins += s.EstimatedMins
			topic, ok := syl.TopicByID(s.TopicID)
			if !ok {
				t.Fatalf("day %d: unknown topic %s", day, s.TopicID)
			}
			perSection[topic.SectionID]++
		}
		if mins > 60 {
			t.Errorf("day %d: %d minutes exceeds budget", day, mins)
		}
		for sec, n := range perSection {
			if n > 3 {
				t.Errorf("day %d: %d topics from section %s exceeds cap", day, n, sec)
			}
		}
	}
}

func TestGetPlanIdempotent(t *testing.T) {
	b, _, _ := newTestBuilder(12)
	ctx := context.Background()

	plan, err := b.CreatePlan(ctx, "alice", "gcse-bio", 30, planStart)
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}

	first, err := b.GetPlan(ctx, plan.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	second, err := b.GetPlan(ctx, plan.ID)
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if len(first.Sessions) != len(second.Sessions) {
		t.Fatalf("session counts differ: %d vs %d", len(first.Sessions), len(second.Sessions))
	}
	for i := range first.Sessions {
		if first.Sessions[i] != second.Sessions[i] {
			t.Fatalf("session %d differs across reads", i)
		}
	}

	if _, err := b.GetPlan(ctx, "no-such-plan"); err == nil {
		t.Error("expected error for unknown plan")
	}
}

func TestCreatePlanExtendsForCoverage(t *testing.T) {
	// Nine topics over a 4-day horizon: introductions alternate with
	// first reviews, so coverage needs the extension days.
	b, _, _ := newTestBuilder(9)
	ctx := context.Background()

	plan, err := b.CreatePlan(ctx, "alice", "gcse-bio", 4, planStart)
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}
	if !plan.CoverageExtended {
		t.Error("expected coverage_extended on a tight horizon")
	}

	introduced := make(map[string]bool)
	for _, s := range plan.Sessions {
		if s.Role == store.RoleNew {
			introduced[s.TopicID] = true
		}
	}
	if len(introduced) != 9 {
		t.Errorf("introduced %d topics, want all 9", len(introduced))
	}
	// Extension is bounded at horizon + ceil(horizon/2).
	if got := plan.Days(); got > 6 {
		t.Errorf("plan spans %d days, beyond the extension bound", got)
	}
}

func TestCreatePlanInfeasible(t *testing.T) {
	b, _, prepo := newTestBuilder(40)
	ctx := context.Background()

	_, err := b.CreatePlan(ctx, "alice", "gcse-bio", 3, planStart)
	var inf *InfeasibleError
	if !errors.As(err, &inf) {
		t.Fatalf("got %v, want InfeasibleError", err)
	}
	if len(inf.TopicsRemaining) == 0 {
		t.Error("infeasible error carries no shortfall detail")
	}
	if inf.DaysNeeded <= inf.HorizonDays {
		t.Errorf("days needed %d should exceed horizon %d", inf.DaysNeeded, inf.HorizonDays)
	}
	if len(prepo.published) != 0 {
		t.Error("no partial plan may be stored on infeasibility")
	}
}

func TestCreatePlanInfeasibleOversizedTopic(t *testing.T) {
	mrepo := newFakeMasteryRepo()
	prepo := &fakePlanRepo{}
	syl := testSyllabus(4)
	syl.Topics[2].EstimatedMins = 90 // larger than the 60-minute budget
	b := NewBuilder(syllabus.NewCatalog(syl), mastery.NewTracker(mrepo), prepo, planner.DefaultConfig())

	_, err := b.CreatePlan(context.Background(), "alice", "gcse-bio", 30, planStart)
	var inf *InfeasibleError
	if !errors.As(err, &inf) {
		t.Fatalf("got %v, want InfeasibleError", err)
	}
	if len(inf.Oversized) != 1 || inf.Oversized[0] != "t02" {
		t.Errorf("oversized = %v", inf.Oversized)
	}
}

func TestCreatePlanSchedulesPersistedDueReviews(t *testing.T) {
	b, mrepo, _ := newTestBuilder(8)
	ctx := context.Background()

	// One topic with history due at plan start, one due far past the
	// horizon, the other six fresh.
	mrepo.rows[mkey("alice", "t00")] = &store.MasteryRecord{
		StudentID: "alice", TopicID: "t00", Easiness: 2.5,
		IntervalDays: 6, Repetitions: 2,
		Due: planStart.AddDate(0, 0, -2), Version: 3,
	}
	mrepo.rows[mkey("alice", "t01")] = &store.MasteryRecord{
		StudentID: "alice", TopicID: "t01", Easiness: 2.5,
		IntervalDays: 120, Repetitions: 5,
		Due: planStart.AddDate(0, 0, 120), Version: 6,
	}

	plan, err := b.CreatePlan(ctx, "alice", "gcse-bio", 10, planStart)
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}

	var t00Role string
	t00Day := -1
	for _, s := range plan.Sessions {
		switch s.TopicID {
		case "t00":
			if t00Day == -1 {
				t00Role, t00Day = s.Role, s.DayIndex
			}
		case "t01":
			t.Errorf("topic due past the horizon was scheduled on day %d", s.DayIndex)
		}
	}
	if t00Role != store.RoleReview || t00Day != 0 {
		t.Errorf("overdue topic scheduled as (%s, day %d), want review on day 0", t00Role, t00Day)
	}
}

func TestRegenerationArchivesPreviousPlan(t *testing.T) {
	b, _, _ := newTestBuilder(8)
	ctx := context.Background()

	first, err := b.CreatePlan(ctx, "alice", "gcse-bio", 20, planStart)
	if err != nil {
		t.Fatalf("first plan: %v", err)
	}
	second, err := b.CreatePlan(ctx, "alice", "gcse-bio", 20, planStart.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("second plan: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("regeneration reused the plan ID")
	}

	current, err := b.CurrentPlan(ctx, "alice", "gcse-bio")
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current == nil || current.ID != second.ID {
		t.Fatalf("current plan = %+v, want the regenerated one", current)
	}
	old, err := b.GetPlan(ctx, first.ID)
	if err != nil {
		t.Fatalf("get old: %v", err)
	}
	if !old.Archived {
		t.Error("previous plan was not archived")
	}
}
