// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/revisio/revisio/ent/scheduledsession"
)

// ScheduledSession is the model entity for the ScheduledSession schema.
type ScheduledSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PlanID holds the value of the "plan_id" field.
	PlanID string `json:"plan_id,omitempty"`
	// DayIndex holds the value of the "day_index" field.
	DayIndex int `json:"day_index,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// Either "new" (first introduction) or "review"
	Role string `json:"role,omitempty"`
	// EstimatedMins holds the value of the "estimated_mins" field.
	EstimatedMins int `json:"estimated_mins,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduledSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduledsession.FieldID, scheduledsession.FieldDayIndex, scheduledsession.FieldEstimatedMins:
			values[i] = new(sql.NullInt64)
		case scheduledsession.FieldPlanID, scheduledsession.FieldTopicID, scheduledsession.FieldRole:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduledSession fields.
func (_m *ScheduledSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduledsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scheduledsession.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = value.String
			}
		case scheduledsession.FieldDayIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_index", values[i])
			} else if value.Valid {
				_m.DayIndex = int(value.Int64)
			}
		case scheduledsession.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case scheduledsession.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case scheduledsession.FieldEstimatedMins:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_mins", values[i])
			} else if value.Valid {
				_m.EstimatedMins = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduledSession.
// This includes values selected through modifiers, order, etc.
func (_m *ScheduledSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScheduledSession.
// Note that you need to call ScheduledSession.Unwrap() before calling this method if this ScheduledSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScheduledSession) Update() *ScheduledSessionUpdateOne {
	return NewScheduledSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScheduledSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScheduledSession) Unwrap() *ScheduledSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduledSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScheduledSession) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduledSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(_m.PlanID)
	builder.WriteString(", ")
	builder.WriteString("day_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayIndex))
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("estimated_mins=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedMins))
	builder.WriteByte(')')
	return builder.String()
}

// ScheduledSessions is a parsable slice of ScheduledSession.
type ScheduledSessions []*ScheduledSession
