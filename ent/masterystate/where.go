// Code generated by ent, DO NOT EDIT.

package masterystate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/revisio/revisio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldStudentID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldTopicID, v))
}

// Easiness applies equality check predicate on the "easiness" field. It's identical to EasinessEQ.
func Easiness(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldEasiness, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldIntervalDays, v))
}

// Repetitions applies equality check predicate on the "repetitions" field. It's identical to RepetitionsEQ.
func Repetitions(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldRepetitions, v))
}

// Due applies equality check predicate on the "due" field. It's identical to DueEQ.
func Due(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldDue, v))
}

// LastQuality applies equality check predicate on the "last_quality" field. It's identical to LastQualityEQ.
func LastQuality(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldLastQuality, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldVersion, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldContainsFold(FieldStudentID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldContainsFold(FieldTopicID, v))
}

// EasinessEQ applies the EQ predicate on the "easiness" field.
func EasinessEQ(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldEasiness, v))
}

// EasinessNEQ applies the NEQ predicate on the "easiness" field.
func EasinessNEQ(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldEasiness, v))
}

// EasinessIn applies the In predicate on the "easiness" field.
func EasinessIn(vs ...float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldEasiness, vs...))
}

// EasinessNotIn applies the NotIn predicate on the "easiness" field.
func EasinessNotIn(vs ...float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldEasiness, vs...))
}

// EasinessGT applies the GT predicate on the "easiness" field.
func EasinessGT(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldEasiness, v))
}

// EasinessGTE applies the GTE predicate on the "easiness" field.
func EasinessGTE(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldEasiness, v))
}

// EasinessLT applies the LT predicate on the "easiness" field.
func EasinessLT(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldEasiness, v))
}

// EasinessLTE applies the LTE predicate on the "easiness" field.
func EasinessLTE(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldEasiness, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldIntervalDays, v))
}

// RepetitionsEQ applies the EQ predicate on the "repetitions" field.
func RepetitionsEQ(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldRepetitions, v))
}

// RepetitionsNEQ applies the NEQ predicate on the "repetitions" field.
func RepetitionsNEQ(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldRepetitions, v))
}

// RepetitionsIn applies the In predicate on the "repetitions" field.
func RepetitionsIn(vs ...int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldRepetitions, vs...))
}

// RepetitionsNotIn applies the NotIn predicate on the "repetitions" field.
func RepetitionsNotIn(vs ...int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldRepetitions, vs...))
}

// RepetitionsGT applies the GT predicate on the "repetitions" field.
func RepetitionsGT(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldRepetitions, v))
}

// RepetitionsGTE applies the GTE predicate on the "repetitions" field.
func RepetitionsGTE(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldRepetitions, v))
}

// RepetitionsLT applies the LT predicate on the "repetitions" field.
func RepetitionsLT(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldRepetitions, v))
}

// RepetitionsLTE applies the LTE predicate on the "repetitions" field.
func RepetitionsLTE(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldRepetitions, v))
}

// DueEQ applies the EQ predicate on the "due" field.
func DueEQ(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldDue, v))
}

// DueNEQ applies the NEQ predicate on the "due" field.
func DueNEQ(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldDue, v))
}

// DueIn applies the In predicate on the "due" field.
func DueIn(vs ...time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldDue, vs...))
}

// DueNotIn applies the NotIn predicate on the "due" field.
func DueNotIn(vs ...time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldDue, vs...))
}

// DueGT applies the GT predicate on the "due" field.
func DueGT(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldDue, v))
}

// DueGTE applies the GTE predicate on the "due" field.
func DueGTE(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldDue, v))
}

// DueLT applies the LT predicate on the "due" field.
func DueLT(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldDue, v))
}

// DueLTE applies the LTE predicate on the "due" field.
func DueLTE(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldDue, v))
}

// LastQualityEQ applies the EQ predicate on the "last_quality" field.
func LastQualityEQ(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldLastQuality, v))
}

// LastQualityNEQ applies the NEQ predicate on the "last_quality" field.
func LastQualityNEQ(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldLastQuality, v))
}

// LastQualityIn applies the In predicate on the "last_quality" field.
func LastQualityIn(vs ...int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldLastQuality, vs...))
}

// LastQualityNotIn applies the NotIn predicate on the "last_quality" field.
func LastQualityNotIn(vs ...int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldLastQuality, vs...))
}

// LastQualityGT applies the GT predicate on the "last_quality" field.
func LastQualityGT(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldLastQuality, v))
}

// LastQualityGTE applies the GTE predicate on the "last_quality" field.
func LastQualityGTE(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldLastQuality, v))
}

// LastQualityLT applies the LT predicate on the "last_quality" field.
func LastQualityLT(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldLastQuality, v))
}

// LastQualityLTE applies the LTE predicate on the "last_quality" field.
func LastQualityLTE(v int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldLastQuality, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldVersion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MasteryState) predicate.MasteryState {
	return predicate.MasteryState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MasteryState) predicate.MasteryState {
	return predicate.MasteryState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MasteryState) predicate.MasteryState {
	return predicate.MasteryState(sql.NotPredicates(p))
}
