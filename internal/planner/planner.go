// Package planner selects which topics occupy a study day: due
// reviews first, ordered by how overdue they are, then new topics in
// syllabus sequence, all inside a per-day minute budget and a
// per-section cap. Whatever does not fit carries to the next day;
// nothing is ever dropped.
package planner

import "github.com/revisio/revisio/internal/syllabus"

// Roles a topic can hold within a day.
const (
	RoleNew    = "new"
	RoleReview = "review"
)

// Config are the interleaving knobs. They are per-subject
// configuration, never constants baked into the selection logic.
type Config struct {
	// SectionCap bounds both the number of due reviews per day and the
	// number of same-section topics per day.
	SectionCap int
	// DailyBudgetMins is the study time available per day.
	DailyBudgetMins int
}

// DefaultConfig returns the standard pace: three reviews, one hour.
func DefaultConfig() Config {
	return Config{SectionCap: 3, DailyBudgetMins: 60}
}

// Candidate is a topic due for review, tagged with the plan-relative
// day it became due. Earlier due days are picked first.
type Candidate struct {
	Topic  syllabus.Topic
	DueDay int
}

// Entry is one scheduled slot within a day.
type Entry struct {
	Topic syllabus.Topic
	Role  string
}

// Selection is the outcome of one day's planning. LeftoverDue and
// LeftoverFresh are the carry-over pools for the following day, with
// due dates untouched.
type Selection struct {
	Entries       []Entry
	LeftoverDue   []Candidate
	LeftoverFresh []syllabus.Topic
}

// Planner implements the interleaving day selection.
type Planner struct {
	cfg Config
}

// New creates a planner. Zero or negative knobs fall back to defaults.
func New(cfg Config) *Planner {
	def := DefaultConfig()
	if cfg.SectionCap <= 0 {
		cfg.SectionCap = def.SectionCap
	}
	if cfg.DailyBudgetMins <= 0 {
		cfg.DailyBudgetMins = def.DailyBudgetMins
	}
	return &Planner{cfg: cfg}
}

// Config returns the effective configuration.
func (p *Planner) Config() Config {
	return p.cfg
}

// SelectDay fills one day. Due candidates are considered most-overdue
// first (section then sequence as tiebreak) and at most SectionCap of
// them are taken; remaining budget is filled with fresh topics in
// strict syllabus order. The day's entries come back interleaved so
// that same-section topics are non-adjacent whenever any valid
// arrangement exists.
func (p *Planner) SelectDay(due []Candidate, fresh []syllabus.Topic) Selection {
	cands := make([]Candidate, len(due))
	copy(cands, due)
	sortCandidates(cands)

	budget := p.cfg.DailyBudgetMins
	perSection := make(map[string]int)
	var picked []Entry
	var leftoverDue []Candidate
	reviews := 0

	for _, c := range cands {
		t := c.Topic
		if reviews >= p.cfg.SectionCap ||
			t.EstimatedMins > budget ||
			perSection[t.SectionID] >= p.cfg.SectionCap {
			leftoverDue = append(leftoverDue, c)
			continue
		}
		picked = append(picked, Entry{Topic: t, Role: RoleReview})
		perSection[t.SectionID]++
		budget -= t.EstimatedMins
		reviews++
	}

	// Fresh topics must keep syllabus order, so the fill stops at the
	// first topic that cannot be placed rather than skipping ahead.
	cut := len(fresh)
	for i, t := range fresh {
		if t.EstimatedMins > budget || perSection[t.SectionID] >= p.cfg.SectionCap {
			cut = i
			break
		}
		picked = append(picked, Entry{Topic: t, Role: RoleNew})
		perSection[t.SectionID]++
		budget -= t.EstimatedMins
	}

	return Selection{
		Entries:       interleave(picked),
		LeftoverDue:   leftoverDue,
		LeftoverFresh: fresh[cut:],
	}
}

// DaysNeeded estimates how many days the whole topic set requires at
// the configured pace: total minutes against the daily budget, and the
// largest section against the per-day section cap, whichever is worse.
// Topics whose single-session estimate exceeds the daily budget can
// never be scheduled and are returned separately.
func (p *Planner) DaysNeeded(topics []syllabus.Topic) (days int, oversized []string) {
	total := 0
	bySection := make(map[string]int)
	for _, t := range topics {
		if t.EstimatedMins > p.cfg.DailyBudgetMins {
			oversized = append(oversized, t.ID)
			continue
		}
		total += t.EstimatedMins
		bySection[t.SectionID]++
	}

	days = ceilDiv(total, p.cfg.DailyBudgetMins)
	for _, n := range bySection {
		if d := ceilDiv(n, p.cfg.SectionCap); d > days {
			days = d
		}
	}
	return days, oversized
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
