// Code generated by ent, DO NOT EDIT.

package scheduledsession

import (
	"entgo.io/ent/dialect/sql"
	"github.com/revisio/revisio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLTE(FieldID, id))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldPlanID, v))
}

// DayIndex applies equality check predicate on the "day_index" field. It's identical to DayIndexEQ.
func DayIndex(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldDayIndex, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldTopicID, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldRole, v))
}

// EstimatedMins applies equality check predicate on the "estimated_mins" field. It's identical to EstimatedMinsEQ.
func EstimatedMins(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldEstimatedMins, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldContainsFold(FieldPlanID, v))
}

// DayIndexEQ applies the EQ predicate on the "day_index" field.
func DayIndexEQ(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldDayIndex, v))
}

// DayIndexNEQ applies the NEQ predicate on the "day_index" field.
func DayIndexNEQ(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNEQ(FieldDayIndex, v))
}

// DayIndexIn applies the In predicate on the "day_index" field.
func DayIndexIn(vs ...int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldIn(FieldDayIndex, vs...))
}

// DayIndexNotIn applies the NotIn predicate on the "day_index" field.
func DayIndexNotIn(vs ...int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNotIn(FieldDayIndex, vs...))
}

// DayIndexGT applies the GT predicate on the "day_index" field.
func DayIndexGT(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGT(FieldDayIndex, v))
}

// DayIndexGTE applies the GTE predicate on the "day_index" field.
func DayIndexGTE(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGTE(FieldDayIndex, v))
}

// DayIndexLT applies the LT predicate on the "day_index" field.
func DayIndexLT(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLT(FieldDayIndex, v))
}

// DayIndexLTE applies the LTE predicate on the "day_index" field.
func DayIndexLTE(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLTE(FieldDayIndex, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldContainsFold(FieldTopicID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldContainsFold(FieldRole, v))
}

// EstimatedMinsEQ applies the EQ predicate on the "estimated_mins" field.
func EstimatedMinsEQ(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldEstimatedMins, v))
}

// EstimatedMinsNEQ applies the NEQ predicate on the "estimated_mins" field.
func EstimatedMinsNEQ(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNEQ(FieldEstimatedMins, v))
}

// EstimatedMinsIn applies the In predicate on the "estimated_mins" field.
func EstimatedMinsIn(vs ...int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldIn(FieldEstimatedMins, vs...))
}

// EstimatedMinsNotIn applies the NotIn predicate on the "estimated_mins" field.
func EstimatedMinsNotIn(vs ...int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNotIn(FieldEstimatedMins, vs...))
}

// EstimatedMinsGT applies the GT predicate on the "estimated_mins" field.
func EstimatedMinsGT(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGT(FieldEstimatedMins, v))
}

// EstimatedMinsGTE applies the GTE predicate on the "estimated_mins" field.
func EstimatedMinsGTE(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGTE(FieldEstimatedMins, v))
}

// EstimatedMinsLT applies the LT predicate on the "estimated_mins" field.
func EstimatedMinsLT(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLT(FieldEstimatedMins, v))
}

// EstimatedMinsLTE applies the LTE predicate on the "estimated_mins" field.
func EstimatedMinsLTE(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLTE(FieldEstimatedMins, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledSession) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledSession) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledSession) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.NotPredicates(p))
}
