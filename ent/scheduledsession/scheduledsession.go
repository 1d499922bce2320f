// Code generated by ent, DO NOT EDIT.

package scheduledsession

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scheduledsession type in the database.
	Label = "scheduled_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldDayIndex holds the string denoting the day_index field in the database.
	FieldDayIndex = "day_index"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldEstimatedMins holds the string denoting the estimated_mins field in the database.
	FieldEstimatedMins = "estimated_mins"
	// Table holds the table name of the scheduledsession in the database.
	Table = "scheduled_sessions"
)

// Columns holds all SQL columns for scheduledsession fields.
var Columns = []string{
	FieldID,
	FieldPlanID,
	FieldDayIndex,
	FieldTopicID,
	FieldRole,
	FieldEstimatedMins,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	PlanIDValidator func(string) error
	// DayIndexValidator is a validator for the "day_index" field. It is called by the builders before save.
	DayIndexValidator func(int) error
	// TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	TopicIDValidator func(string) error
	// RoleValidator is a validator for the "role" field. It is called by the builders before save.
	RoleValidator func(string) error
	// EstimatedMinsValidator is a validator for the "estimated_mins" field. It is called by the builders before save.
	EstimatedMinsValidator func(int) error
)

// OrderOption defines the ordering options for the ScheduledSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByDayIndex orders the results by the day_index field.
func ByDayIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDayIndex, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByEstimatedMins orders the results by the estimated_mins field.
func ByEstimatedMins(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedMins, opts...).ToFunc()
}
