// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/revisio/revisio/ent/masterystate"
	"github.com/revisio/revisio/ent/reviewevent"
	"github.com/revisio/revisio/ent/scheduledsession"
	"github.com/revisio/revisio/ent/schema"
	"github.com/revisio/revisio/ent/studyplan"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	masterystateFields := schema.MasteryState{}.Fields()
	_ = masterystateFields
	// masterystateDescStudentID is the schema descriptor for student_id field.
	masterystateDescStudentID := masterystateFields[0].Descriptor()
	// masterystate.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	masterystate.StudentIDValidator = masterystateDescStudentID.Validators[0].(func(string) error)
	// masterystateDescTopicID is the schema descriptor for topic_id field.
	masterystateDescTopicID := masterystateFields[1].Descriptor()
	// masterystate.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	masterystate.TopicIDValidator = masterystateDescTopicID.Validators[0].(func(string) error)
	// masterystateDescIntervalDays is the schema descriptor for interval_days field.
	masterystateDescIntervalDays := masterystateFields[3].Descriptor()
	// masterystate.IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	masterystate.IntervalDaysValidator = masterystateDescIntervalDays.Validators[0].(func(int) error)
	// masterystateDescRepetitions is the schema descriptor for repetitions field.
	masterystateDescRepetitions := masterystateFields[4].Descriptor()
	// masterystate.RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	masterystate.RepetitionsValidator = masterystateDescRepetitions.Validators[0].(func(int) error)
	// masterystateDescLastQuality is the schema descriptor for last_quality field.
	masterystateDescLastQuality := masterystateFields[6].Descriptor()
	// masterystate.DefaultLastQuality holds the default value on creation for the last_quality field.
	masterystate.DefaultLastQuality = masterystateDescLastQuality.Default.(int)
	// masterystateDescVersion is the schema descriptor for version field.
	masterystateDescVersion := masterystateFields[7].Descriptor()
	// masterystate.DefaultVersion holds the default value on creation for the version field.
	masterystate.DefaultVersion = masterystateDescVersion.Default.(int64)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescPlanID is the schema descriptor for plan_id field.
	revieweventDescPlanID := revieweventFields[0].Descriptor()
	// reviewevent.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	reviewevent.PlanIDValidator = revieweventDescPlanID.Validators[0].(func(string) error)
	// revieweventDescStudentID is the schema descriptor for student_id field.
	revieweventDescStudentID := revieweventFields[1].Descriptor()
	// reviewevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	reviewevent.StudentIDValidator = revieweventDescStudentID.Validators[0].(func(string) error)
	// revieweventDescTopicID is the schema descriptor for topic_id field.
	revieweventDescTopicID := revieweventFields[2].Descriptor()
	// reviewevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	reviewevent.TopicIDValidator = revieweventDescTopicID.Validators[0].(func(string) error)
	// revieweventDescDayIndex is the schema descriptor for day_index field.
	revieweventDescDayIndex := revieweventFields[3].Descriptor()
	// reviewevent.DayIndexValidator is a validator for the "day_index" field. It is called by the builders before save.
	reviewevent.DayIndexValidator = revieweventDescDayIndex.Validators[0].(func(int) error)
	// revieweventDescOutcome is the schema descriptor for outcome field.
	revieweventDescOutcome := revieweventFields[4].Descriptor()
	// reviewevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	reviewevent.OutcomeValidator = revieweventDescOutcome.Validators[0].(func(string) error)
	// revieweventDescPerformancePct is the schema descriptor for performance_pct field.
	revieweventDescPerformancePct := revieweventFields[5].Descriptor()
	// reviewevent.DefaultPerformancePct holds the default value on creation for the performance_pct field.
	reviewevent.DefaultPerformancePct = revieweventDescPerformancePct.Default.(float64)
	// revieweventDescQuality is the schema descriptor for quality field.
	revieweventDescQuality := revieweventFields[6].Descriptor()
	// reviewevent.DefaultQuality holds the default value on creation for the quality field.
	reviewevent.DefaultQuality = revieweventDescQuality.Default.(int)
	// revieweventDescIntervalDays is the schema descriptor for interval_days field.
	revieweventDescIntervalDays := revieweventFields[7].Descriptor()
	// reviewevent.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewevent.DefaultIntervalDays = revieweventDescIntervalDays.Default.(int)
	// revieweventDescEasiness is the schema descriptor for easiness field.
	revieweventDescEasiness := revieweventFields[8].Descriptor()
	// reviewevent.DefaultEasiness holds the default value on creation for the easiness field.
	reviewevent.DefaultEasiness = revieweventDescEasiness.Default.(float64)
	scheduledsessionFields := schema.ScheduledSession{}.Fields()
	_ = scheduledsessionFields
	// scheduledsessionDescPlanID is the schema descriptor for plan_id field.
	scheduledsessionDescPlanID := scheduledsessionFields[0].Descriptor()
	// scheduledsession.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	scheduledsession.PlanIDValidator = scheduledsessionDescPlanID.Validators[0].(func(string) error)
	// scheduledsessionDescDayIndex is the schema descriptor for day_index field.
	scheduledsessionDescDayIndex := scheduledsessionFields[1].Descriptor()
	// scheduledsession.DayIndexValidator is a validator for the "day_index" field. It is called by the builders before save.
	scheduledsession.DayIndexValidator = scheduledsessionDescDayIndex.Validators[0].(func(int) error)
	// scheduledsessionDescTopicID is the schema descriptor for topic_id field.
	scheduledsessionDescTopicID := scheduledsessionFields[2].Descriptor()
	// scheduledsession.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	scheduledsession.TopicIDValidator = scheduledsessionDescTopicID.Validators[0].(func(string) error)
	// scheduledsessionDescRole is the schema descriptor for role field.
	scheduledsessionDescRole := scheduledsessionFields[3].Descriptor()
	// scheduledsession.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	scheduledsession.RoleValidator = scheduledsessionDescRole.Validators[0].(func(string) error)
	// scheduledsessionDescEstimatedMins is the schema descriptor for estimated_mins field.
	scheduledsessionDescEstimatedMins := scheduledsessionFields[4].Descriptor()
	// scheduledsession.EstimatedMinsValidator is a validator for the "estimated_mins" field. It is called by the builders before save.
	scheduledsession.EstimatedMinsValidator = scheduledsessionDescEstimatedMins.Validators[0].(func(int) error)
	studyplanFields := schema.StudyPlan{}.Fields()
	_ = studyplanFields
	// studyplanDescPlanID is the schema descriptor for plan_id field.
	studyplanDescPlanID := studyplanFields[0].Descriptor()
	// studyplan.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	studyplan.PlanIDValidator = studyplanDescPlanID.Validators[0].(func(string) error)
	// studyplanDescStudentID is the schema descriptor for student_id field.
	studyplanDescStudentID := studyplanFields[1].Descriptor()
	// studyplan.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	studyplan.StudentIDValidator = studyplanDescStudentID.Validators[0].(func(string) error)
	// studyplanDescSubjectID is the schema descriptor for subject_id field.
	studyplanDescSubjectID := studyplanFields[2].Descriptor()
	// studyplan.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	studyplan.SubjectIDValidator = studyplanDescSubjectID.Validators[0].(func(string) error)
	// studyplanDescHorizonDays is the schema descriptor for horizon_days field.
	studyplanDescHorizonDays := studyplanFields[4].Descriptor()
	// studyplan.HorizonDaysValidator is a validator for the "horizon_days" field. It is called by the builders before save.
	studyplan.HorizonDaysValidator = studyplanDescHorizonDays.Validators[0].(func(int) error)
	// studyplanDescCoverageExtended is the schema descriptor for coverage_extended field.
	studyplanDescCoverageExtended := studyplanFields[5].Descriptor()
	// studyplan.DefaultCoverageExtended holds the default value on creation for the coverage_extended field.
	studyplan.DefaultCoverageExtended = studyplanDescCoverageExtended.Default.(bool)
	// studyplanDescArchived is the schema descriptor for archived field.
	studyplanDescArchived := studyplanFields[6].Descriptor()
	// studyplan.DefaultArchived holds the default value on creation for the archived field.
	studyplan.DefaultArchived = studyplanDescArchived.Default.(bool)
	// studyplanDescCreatedAt is the schema descriptor for created_at field.
	studyplanDescCreatedAt := studyplanFields[7].Descriptor()
	// studyplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	studyplan.DefaultCreatedAt = studyplanDescCreatedAt.Default.(func() time.Time)
}
