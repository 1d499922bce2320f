package store

import (
	"context"
	"time"
)

// Session roles.
const (
	RoleNew    = "new"
	RoleReview = "review"
)

// Review event outcomes.
const (
	OutcomeCompleted = "completed"
	OutcomeMissed    = "missed"
)

// MasteryRecord is the persisted SM-2 state for one (student, topic).
type MasteryRecord struct {
	ID           int
	StudentID    string
	TopicID      string
	Easiness     float64
	IntervalDays int
	Repetitions  int
	Due          time.Time
	LastQuality  int
	Version      int64
}

// MasteryRepo persists mastery states with optimistic versioning.
type MasteryRepo interface {
	// Get returns the record for (studentID, topicID), or nil if none exists.
	Get(ctx context.Context, studentID, topicID string) (*MasteryRecord, error)

	// Create inserts a fresh record. The unique (student, topic) index
	// rejects a second insert for the same key.
	Create(ctx context.Context, rec *MasteryRecord) (*MasteryRecord, error)

	// UpdateCAS writes the record if and only if the stored version still
	// equals rec.Version, bumping the version by one. A lost race returns
	// *ConflictError and leaves the row untouched.
	UpdateCAS(ctx context.Context, rec *MasteryRecord) (*MasteryRecord, error)

	// List returns all records for a student, ordered by topic ID.
	List(ctx context.Context, studentID string) ([]*MasteryRecord, error)
}

// SessionRecord is one scheduled (day, topic) slot of a plan.
type SessionRecord struct {
	PlanID        string
	DayIndex      int
	TopicID       string
	Role          string
	EstimatedMins int
}

// PlanRecord is a full study plan with its sessions.
type PlanRecord struct {
	PlanID           string
	StudentID        string
	SubjectID        string
	StartDate        time.Time
	HorizonDays      int
	CoverageExtended bool
	Archived         bool
	Sessions         []SessionRecord
}

// PlanRepo persists study plans. Plans are append-only; Publish is the
// only write and performs the build-then-switch swap.
type PlanRepo interface {
	// Publish inserts the plan with its sessions and archives every other
	// plan of the same (student, subject) in one transaction.
	Publish(ctx context.Context, plan *PlanRecord) error

	// Get returns the plan with its sessions, or nil if the ID is unknown.
	Get(ctx context.Context, planID string) (*PlanRecord, error)

	// Current returns the non-archived plan for (student, subject), or nil.
	Current(ctx context.Context, studentID, subjectID string) (*PlanRecord, error)

	// FindSession returns one scheduled slot, or nil if the plan has no
	// session for that (day, topic).
	FindSession(ctx context.Context, planID string, dayIndex int, topicID string) (*SessionRecord, error)
}

// ReviewEventData is the payload for one completion or missed signal.
type ReviewEventData struct {
	PlanID         string
	StudentID      string
	TopicID        string
	DayIndex       int
	Outcome        string
	PerformancePct float64
	Quality        int
	IntervalDays   int
	Easiness       float64
}

// ReviewEventRecord is a stored review event.
type ReviewEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	ReviewEventData
}

// EventRepo appends and reads the review event log.
type EventRepo interface {
	// AppendReview records a completion or missed signal.
	AppendReview(ctx context.Context, data ReviewEventData) error

	// ReviewHistory returns the most recent events for a student's topic,
	// newest first. limit <= 0 means no limit.
	ReviewHistory(ctx context.Context, studentID, topicID string, limit int) ([]ReviewEventRecord, error)
}
