package schedule

import (
	"time"

	"github.com/revisio/revisio/internal/store"
)

// Session is one scheduled (day, topic) slot. Sessions are immutable
// once the plan is published; completion lives in the review log.
type Session struct {
	PlanID        string
	DayIndex      int
	TopicID       string
	Role          string // store.RoleNew or store.RoleReview
	EstimatedMins int
}

// Plan is a full-horizon study plan. Regeneration creates a new plan
// ID and archives this one; plans are never mutated in place.
type Plan struct {
	ID               string
	StudentID        string
	SubjectID        string
	StartDate        time.Time
	HorizonDays      int
	CoverageExtended bool
	Archived         bool
	Sessions         []Session
}

// Days returns the number of distinct days the plan actually spans,
// which exceeds HorizonDays when coverage was extended.
func (p *Plan) Days() int {
	last := -1
	for _, s := range p.Sessions {
		if s.DayIndex > last {
			last = s.DayIndex
		}
	}
	return last + 1
}

// SessionsForDay returns the sessions of one day in scheduled order.
func (p *Plan) SessionsForDay(day int) []Session {
	var out []Session
	for _, s := range p.Sessions {
		if s.DayIndex == day {
			out = append(out, s)
		}
	}
	return out
}

func (p *Plan) toRecord() *store.PlanRecord {
	rec := &store.PlanRecord{
		PlanID:           p.ID,
		StudentID:        p.StudentID,
		SubjectID:        p.SubjectID,
		StartDate:        p.StartDate,
		HorizonDays:      p.HorizonDays,
		CoverageExtended: p.CoverageExtended,
		Archived:         p.Archived,
		Sessions:         make([]store.SessionRecord, len(p.Sessions)),
	}
	for i, s := range p.Sessions {
		rec.Sessions[i] = store.SessionRecord{
			PlanID:        s.PlanID,
			DayIndex:      s.DayIndex,
			TopicID:       s.TopicID,
			Role:          s.Role,
			EstimatedMins: s.EstimatedMins,
		}
	}
	return rec
}

func planFromRecord(rec *store.PlanRecord) *Plan {
	p := &Plan{
		ID:               rec.PlanID,
		StudentID:        rec.StudentID,
		SubjectID:        rec.SubjectID,
		StartDate:        rec.StartDate,
		HorizonDays:      rec.HorizonDays,
		CoverageExtended: rec.CoverageExtended,
		Archived:         rec.Archived,
		Sessions:         make([]Session, len(rec.Sessions)),
	}
	for i, s := range rec.Sessions {
		p.Sessions[i] = Session{
			PlanID:        s.PlanID,
			DayIndex:      s.DayIndex,
			TopicID:       s.TopicID,
			Role:          s.Role,
			EstimatedMins: s.EstimatedMins,
		}
	}
	return p
}
