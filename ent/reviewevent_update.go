// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/revisio/revisio/ent/predicate"
	"github.com/revisio/revisio/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *ReviewEventUpdate) SetPlanID(v string) *ReviewEventUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillablePlanID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *ReviewEventUpdate) SetStudentID(v string) *ReviewEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableStudentID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ReviewEventUpdate) SetTopicID(v string) *ReviewEventUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableTopicID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetDayIndex sets the "day_index" field.
func (_u *ReviewEventUpdate) SetDayIndex(v int) *ReviewEventUpdate {
	_u.mutation.ResetDayIndex()
	_u.mutation.SetDayIndex(v)
	return _u
}

// SetNillableDayIndex sets the "day_index" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableDayIndex(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetDayIndex(*v)
	}
	return _u
}

// AddDayIndex adds value to the "day_index" field.
func (_u *ReviewEventUpdate) AddDayIndex(v int) *ReviewEventUpdate {
	_u.mutation.AddDayIndex(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ReviewEventUpdate) SetOutcome(v string) *ReviewEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableOutcome(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetPerformancePct sets the "performance_pct" field.
func (_u *ReviewEventUpdate) SetPerformancePct(v float64) *ReviewEventUpdate {
	_u.mutation.ResetPerformancePct()
	_u.mutation.SetPerformancePct(v)
	return _u
}

// SetNillablePerformancePct sets the "performance_pct" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillablePerformancePct(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetPerformancePct(*v)
	}
	return _u
}

// AddPerformancePct adds value to the "performance_pct" field.
func (_u *ReviewEventUpdate) AddPerformancePct(v float64) *ReviewEventUpdate {
	_u.mutation.AddPerformancePct(v)
	return _u
}

// SetQuality sets the "quality" field.
func (_u *ReviewEventUpdate) SetQuality(v int) *ReviewEventUpdate {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableQuality(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *ReviewEventUpdate) AddQuality(v int) *ReviewEventUpdate {
	_u.mutation.AddQuality(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewEventUpdate) SetIntervalDays(v int) *ReviewEventUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableIntervalDays(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewEventUpdate) AddIntervalDays(v int) *ReviewEventUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEasiness sets the "easiness" field.
func (_u *ReviewEventUpdate) SetEasiness(v float64) *ReviewEventUpdate {
	_u.mutation.ResetEasiness()
	_u.mutation.SetEasiness(v)
	return _u
}

// SetNillableEasiness sets the "easiness" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableEasiness(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetEasiness(*v)
	}
	return _u
}

// AddEasiness adds value to the "easiness" field.
func (_u *ReviewEventUpdate) AddEasiness(v float64) *ReviewEventUpdate {
	_u.mutation.AddEasiness(v)
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdate) check() error {
	if v, ok := _u.mutation.PlanID(); ok {
		if err := reviewevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := reviewevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := reviewevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DayIndex(); ok {
		if err := reviewevent.DayIndexValidator(v); err != nil {
			return &ValidationError{Name: "day_index", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.day_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := reviewevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(reviewevent.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(reviewevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(reviewevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DayIndex(); ok {
		_spec.SetField(reviewevent.FieldDayIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayIndex(); ok {
		_spec.AddField(reviewevent.FieldDayIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(reviewevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.PerformancePct(); ok {
		_spec.SetField(reviewevent.FieldPerformancePct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPerformancePct(); ok {
		_spec.AddField(reviewevent.FieldPerformancePct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Easiness(); ok {
		_spec.SetField(reviewevent.FieldEasiness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEasiness(); ok {
		_spec.AddField(reviewevent.FieldEasiness, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetPlanID sets the "plan_id" field.
func (_u *ReviewEventUpdateOne) SetPlanID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillablePlanID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *ReviewEventUpdateOne) SetStudentID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableStudentID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ReviewEventUpdateOne) SetTopicID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableTopicID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetDayIndex sets the "day_index" field.
func (_u *ReviewEventUpdateOne) SetDayIndex(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetDayIndex()
	_u.mutation.SetDayIndex(v)
	return _u
}

// SetNillableDayIndex sets the "day_index" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableDayIndex(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetDayIndex(*v)
	}
	return _u
}

// AddDayIndex adds value to the "day_index" field.
func (_u *ReviewEventUpdateOne) AddDayIndex(v int) *ReviewEventUpdateOne {
	_u.mutation.AddDayIndex(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *ReviewEventUpdateOne) SetOutcome(v string) *ReviewEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableOutcome(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetPerformancePct sets the "performance_pct" field.
func (_u *ReviewEventUpdateOne) SetPerformancePct(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetPerformancePct()
	_u.mutation.SetPerformancePct(v)
	return _u
}

// SetNillablePerformancePct sets the "performance_pct" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillablePerformancePct(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetPerformancePct(*v)
	}
	return _u
}

// AddPerformancePct adds value to the "performance_pct" field.
func (_u *ReviewEventUpdateOne) AddPerformancePct(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddPerformancePct(v)
	return _u
}

// SetQuality sets the "quality" field.
func (_u *ReviewEventUpdateOne) SetQuality(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableQuality(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *ReviewEventUpdateOne) AddQuality(v int) *ReviewEventUpdateOne {
	_u.mutation.AddQuality(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewEventUpdateOne) SetIntervalDays(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableIntervalDays(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewEventUpdateOne) AddIntervalDays(v int) *ReviewEventUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEasiness sets the "easiness" field.
func (_u *ReviewEventUpdateOne) SetEasiness(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetEasiness()
	_u.mutation.SetEasiness(v)
	return _u
}

// SetNillableEasiness sets the "easiness" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableEasiness(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetEasiness(*v)
	}
	return _u
}

// AddEasiness adds value to the "easiness" field.
func (_u *ReviewEventUpdateOne) AddEasiness(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddEasiness(v)
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.PlanID(); ok {
		if err := reviewevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := reviewevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := reviewevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DayIndex(); ok {
		if err := reviewevent.DayIndexValidator(v); err != nil {
			return &ValidationError{Name: "day_index", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.day_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := reviewevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(reviewevent.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(reviewevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(reviewevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DayIndex(); ok {
		_spec.SetField(reviewevent.FieldDayIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayIndex(); ok {
		_spec.AddField(reviewevent.FieldDayIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(reviewevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.PerformancePct(); ok {
		_spec.SetField(reviewevent.FieldPerformancePct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPerformancePct(); ok {
		_spec.AddField(reviewevent.FieldPerformancePct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Easiness(); ok {
		_spec.SetField(reviewevent.FieldEasiness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEasiness(); ok {
		_spec.AddField(reviewevent.FieldEasiness, field.TypeFloat64, value)
	}
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
