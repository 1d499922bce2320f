package planner

import (
	"testing"

	"github.com/revisio/revisio/internal/syllabus"
)

func topic(id, section string, seq, mins int) syllabus.Topic {
	return syllabus.Topic{ID: id, SectionID: section, SequenceIndex: seq, Name: id, EstimatedMins: mins}
}

func sections(entries []Entry) map[string]int {
	out := make(map[string]int)
	for _, e := range entries {
		out[e.Topic.SectionID]++
	}
	return out
}

func TestSelectDayCapsDueFromOneSection(t *testing.T) {
	// Five due topics from one section with cap 3: exactly three are
	// picked and the remainder carries over untouched.
	p := New(Config{SectionCap: 3, DailyBudgetMins: 600})
	var due []Candidate
	for i := 0; i < 5; i++ {
		due = append(due, Candidate{Topic: topic(string(rune('a'+i)), "algebra", i, 20), DueDay: 0})
	}

	sel := p.SelectDay(due, nil)
	if len(sel.Entries) != 3 {
		t.Fatalf("picked %d, want 3", len(sel.Entries))
	}
	if len(sel.LeftoverDue) != 2 {
		t.Fatalf("leftover %d, want 2", len(sel.LeftoverDue))
	}
	for _, c := range sel.LeftoverDue {
		if c.DueDay != 0 {
			t.Errorf("leftover due day mutated: %+v", c)
		}
	}
}

func TestSelectDayOrdersDueMostOverdueFirst(t *testing.T) {
	p := New(Config{SectionCap: 2, DailyBudgetMins: 60})
	due := []Candidate{
		{Topic: topic("late", "a", 0, 20), DueDay: 5},
		{Topic: topic("later", "b", 1, 20), DueDay: 8},
		{Topic: topic("oldest", "c", 2, 20), DueDay: 1},
	}

	sel := p.SelectDay(due, nil)
	if len(sel.Entries) != 2 {
		t.Fatalf("picked %d, want 2", len(sel.Entries))
	}
	got := map[string]bool{}
	for _, e := range sel.Entries {
		got[e.Topic.ID] = true
	}
	if !got["oldest"] || !got["late"] {
		t.Errorf("picked %v, want the two most overdue", got)
	}
	if len(sel.LeftoverDue) != 1 || sel.LeftoverDue[0].Topic.ID != "later" {
		t.Errorf("leftover = %+v", sel.LeftoverDue)
	}
}

func TestSelectDayRespectsBudget(t *testing.T) {
	p := New(Config{SectionCap: 3, DailyBudgetMins: 60})
	due := []Candidate{
		{Topic: topic("r1", "a", 0, 25), DueDay: 0},
		{Topic: topic("r2", "b", 1, 25), DueDay: 0},
		{Topic: topic("r3", "c", 2, 25), DueDay: 0}, // would exceed 60
	}

	sel := p.SelectDay(due, nil)
	total := 0
	for _, e := range sel.Entries {
		total += e.Topic.EstimatedMins
	}
	if total > 60 {
		t.Errorf("day total %d exceeds budget", total)
	}
	if len(sel.Entries) != 2 || len(sel.LeftoverDue) != 1 {
		t.Errorf("entries %d leftover %d, want 2/1", len(sel.Entries), len(sel.LeftoverDue))
	}
}

func TestSelectDayFillsWithFreshInSequence(t *testing.T) {
	p := New(Config{SectionCap: 3, DailyBudgetMins: 60})
	due := []Candidate{{Topic: topic("rev", "a", 0, 20), DueDay: 0}}
	fresh := []syllabus.Topic{
		topic("n1", "b", 1, 20),
		topic("n2", "c", 2, 30), // does not fit after rev+n1: stop here
		topic("n3", "d", 3, 10), // fits but must not jump the queue
	}

	sel := p.SelectDay(due, fresh)
	var roles []string
	ids := map[string]bool{}
	for _, e := range sel.Entries {
		roles = append(roles, e.Role)
		ids[e.Topic.ID] = true
	}
	if len(sel.Entries) != 2 || !ids["rev"] || !ids["n1"] {
		t.Fatalf("entries = %v", ids)
	}
	if ids["n3"] {
		t.Error("fresh fill skipped ahead of an unplaceable topic")
	}
	if len(sel.LeftoverFresh) != 2 || sel.LeftoverFresh[0].ID != "n2" {
		t.Errorf("leftover fresh = %+v", sel.LeftoverFresh)
	}
	_ = roles
}

func TestSelectDayFreshRespectsSectionCap(t *testing.T) {
	p := New(Config{SectionCap: 2, DailyBudgetMins: 600})
	fresh := []syllabus.Topic{
		topic("n1", "a", 0, 10),
		topic("n2", "a", 1, 10),
		topic("n3", "a", 2, 10), // third from section a: blocked by cap
		topic("n4", "b", 3, 10),
	}

	sel := p.SelectDay(nil, fresh)
	if got := sections(sel.Entries)["a"]; got > 2 {
		t.Errorf("section a count = %d, want <= 2", got)
	}
	if len(sel.LeftoverFresh) != 2 {
		t.Errorf("leftover fresh = %+v", sel.LeftoverFresh)
	}
}

func TestInterleaveAvoidsAdjacency(t *testing.T) {
	p := New(Config{SectionCap: 2, DailyBudgetMins: 600})
	due := []Candidate{
		{Topic: topic("a1", "alg", 0, 10), DueDay: 0},
		{Topic: topic("a2", "alg", 1, 10), DueDay: 0},
	}
	fresh := []syllabus.Topic{topic("g1", "geom", 2, 10)}

	sel := p.SelectDay(due, fresh)
	if len(sel.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(sel.Entries))
	}
	// Two algebra topics and one geometry topic: the only valid shape
	// is alg, geom, alg.
	for i := 1; i < len(sel.Entries); i++ {
		if sel.Entries[i].Topic.SectionID == sel.Entries[i-1].Topic.SectionID {
			t.Fatalf("adjacent same-section entries at %d: %+v", i, sel.Entries)
		}
	}
}

func TestInterleaveSingleSectionUnchanged(t *testing.T) {
	entries := []Entry{
		{Topic: topic("a1", "alg", 0, 10), Role: RoleReview},
		{Topic: topic("a2", "alg", 1, 10), Role: RoleReview},
		{Topic: topic("a3", "alg", 2, 10), Role: RoleNew},
	}
	out := interleave(entries)
	for i := range entries {
		if out[i].Topic.ID != entries[i].Topic.ID {
			t.Fatalf("single-section day reordered: %+v", out)
		}
	}
}

func TestDaysNeeded(t *testing.T) {
	p := New(Config{SectionCap: 3, DailyBudgetMins: 60})

	// Forty 20-minute topics at 60 min/day need 14 days of raw time.
	var topics []syllabus.Topic
	for i := 0; i < 40; i++ {
		topics = append(topics, topic(string(rune('a'+i%4))+"-t", "s"+string(rune('0'+i%4)), i, 20))
		topics[i].ID = topics[i].ID + string(rune('0'+i/4))
	}
	days, oversized := p.DaysNeeded(topics)
	if len(oversized) != 0 {
		t.Fatalf("oversized = %v", oversized)
	}
	if days != 14 {
		t.Errorf("days = %d, want 14", days)
	}
}

func TestDaysNeededSectionBound(t *testing.T) {
	// Ten tiny topics in one section: the budget would allow one day,
	// but the cap of 3 per section forces four.
	p := New(Config{SectionCap: 3, DailyBudgetMins: 600})
	var topics []syllabus.Topic
	for i := 0; i < 10; i++ {
		topics = append(topics, topic("t"+string(rune('0'+i)), "only", i, 5))
	}
	days, _ := p.DaysNeeded(topics)
	if days != 4 {
		t.Errorf("days = %d, want 4", days)
	}
}

func TestDaysNeededFlagsOversizedTopics(t *testing.T) {
	p := New(Config{SectionCap: 3, DailyBudgetMins: 60})
	topics := []syllabus.Topic{
		topic("ok", "a", 0, 30),
		topic("huge", "a", 1, 90),
	}
	_, oversized := p.DaysNeeded(topics)
	if len(oversized) != 1 || oversized[0] != "huge" {
		t.Errorf("oversized = %v", oversized)
	}
}
