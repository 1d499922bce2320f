// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/revisio/revisio/ent/masterystate"
	"github.com/revisio/revisio/ent/predicate"
)

// MasteryStateUpdate is the builder for updating MasteryState entities.
type MasteryStateUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryStateMutation
}

// Where appends a list predicates to the MasteryStateUpdate builder.
func (_u *MasteryStateUpdate) Where(ps ...predicate.MasteryState) *MasteryStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *MasteryStateUpdate) SetStudentID(v string) *MasteryStateUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableStudentID(v *string) *MasteryStateUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *MasteryStateUpdate) SetTopicID(v string) *MasteryStateUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableTopicID(v *string) *MasteryStateUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetEasiness sets the "easiness" field.
func (_u *MasteryStateUpdate) SetEasiness(v float64) *MasteryStateUpdate {
	_u.mutation.ResetEasiness()
	_u.mutation.SetEasiness(v)
	return _u
}

// SetNillableEasiness sets the "easiness" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableEasiness(v *float64) *MasteryStateUpdate {
	if v != nil {
		_u.SetEasiness(*v)
	}
	return _u
}

// AddEasiness adds value to the "easiness" field.
func (_u *MasteryStateUpdate) AddEasiness(v float64) *MasteryStateUpdate {
	_u.mutation.AddEasiness(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *MasteryStateUpdate) SetIntervalDays(v int) *MasteryStateUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableIntervalDays(v *int) *MasteryStateUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *MasteryStateUpdate) AddIntervalDays(v int) *MasteryStateUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *MasteryStateUpdate) SetRepetitions(v int) *MasteryStateUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableRepetitions(v *int) *MasteryStateUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *MasteryStateUpdate) AddRepetitions(v int) *MasteryStateUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetDue sets the "due" field.
func (_u *MasteryStateUpdate) SetDue(v time.Time) *MasteryStateUpdate {
	_u.mutation.SetDue(v)
	return _u
}

// SetNillableDue sets the "due" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableDue(v *time.Time) *MasteryStateUpdate {
	if v != nil {
		_u.SetDue(*v)
	}
	return _u
}

// SetLastQuality sets the "last_quality" field.
func (_u *MasteryStateUpdate) SetLastQuality(v int) *MasteryStateUpdate {
	_u.mutation.ResetLastQuality()
	_u.mutation.SetLastQuality(v)
	return _u
}

// SetNillableLastQuality sets the "last_quality" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableLastQuality(v *int) *MasteryStateUpdate {
	if v != nil {
		_u.SetLastQuality(*v)
	}
	return _u
}

// AddLastQuality adds value to the "last_quality" field.
func (_u *MasteryStateUpdate) AddLastQuality(v int) *MasteryStateUpdate {
	_u.mutation.AddLastQuality(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *MasteryStateUpdate) SetVersion(v int64) *MasteryStateUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *MasteryStateUpdate) SetNillableVersion(v *int64) *MasteryStateUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *MasteryStateUpdate) AddVersion(v int64) *MasteryStateUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the MasteryStateMutation object of the builder.
func (_u *MasteryStateUpdate) Mutation() *MasteryStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryStateUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := masterystate.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := masterystate.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := masterystate.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "MasteryState.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := masterystate.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "MasteryState.repetitions": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masterystate.Table, masterystate.Columns, sqlgraph.NewFieldSpec(masterystate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(masterystate.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(masterystate.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Easiness(); ok {
		_spec.SetField(masterystate.FieldEasiness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEasiness(); ok {
		_spec.AddField(masterystate.FieldEasiness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(masterystate.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(masterystate.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(masterystate.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(masterystate.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Due(); ok {
		_spec.SetField(masterystate.FieldDue, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastQuality(); ok {
		_spec.SetField(masterystate.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastQuality(); ok {
		_spec.AddField(masterystate.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(masterystate.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(masterystate.FieldVersion, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masterystate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryStateUpdateOne is the builder for updating a single MasteryState entity.
type MasteryStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryStateMutation
}

// SetStudentID sets the "student_id" field.
func (_u *MasteryStateUpdateOne) SetStudentID(v string) *MasteryStateUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableStudentID(v *string) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *MasteryStateUpdateOne) SetTopicID(v string) *MasteryStateUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableTopicID(v *string) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetEasiness sets the "easiness" field.
func (_u *MasteryStateUpdateOne) SetEasiness(v float64) *MasteryStateUpdateOne {
	_u.mutation.ResetEasiness()
	_u.mutation.SetEasiness(v)
	return _u
}

// SetNillableEasiness sets the "easiness" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableEasiness(v *float64) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetEasiness(*v)
	}
	return _u
}

// AddEasiness adds value to the "easiness" field.
func (_u *MasteryStateUpdateOne) AddEasiness(v float64) *MasteryStateUpdateOne {
	_u.mutation.AddEasiness(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *MasteryStateUpdateOne) SetIntervalDays(v int) *MasteryStateUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableIntervalDays(v *int) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *MasteryStateUpdateOne) AddIntervalDays(v int) *MasteryStateUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *MasteryStateUpdateOne) SetRepetitions(v int) *MasteryStateUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableRepetitions(v *int) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *MasteryStateUpdateOne) AddRepetitions(v int) *MasteryStateUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetDue sets the "due" field.
func (_u *MasteryStateUpdateOne) SetDue(v time.Time) *MasteryStateUpdateOne {
	_u.mutation.SetDue(v)
	return _u
}

// SetNillableDue sets the "due" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableDue(v *time.Time) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetDue(*v)
	}
	return _u
}

// SetLastQuality sets the "last_quality" field.
func (_u *MasteryStateUpdateOne) SetLastQuality(v int) *MasteryStateUpdateOne {
	_u.mutation.ResetLastQuality()
	_u.mutation.SetLastQuality(v)
	return _u
}

// SetNillableLastQuality sets the "last_quality" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableLastQuality(v *int) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetLastQuality(*v)
	}
	return _u
}

// AddLastQuality adds value to the "last_quality" field.
func (_u *MasteryStateUpdateOne) AddLastQuality(v int) *MasteryStateUpdateOne {
	_u.mutation.AddLastQuality(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *MasteryStateUpdateOne) SetVersion(v int64) *MasteryStateUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *MasteryStateUpdateOne) SetNillableVersion(v *int64) *MasteryStateUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *MasteryStateUpdateOne) AddVersion(v int64) *MasteryStateUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the MasteryStateMutation object of the builder.
func (_u *MasteryStateUpdateOne) Mutation() *MasteryStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryStateUpdate builder.
func (_u *MasteryStateUpdateOne) Where(ps ...predicate.MasteryState) *MasteryStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryStateUpdateOne) Select(field string, fields ...string) *MasteryStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryState entity.
func (_u *MasteryStateUpdateOne) Save(ctx context.Context) (*MasteryState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryStateUpdateOne) SaveX(ctx context.Context) *MasteryState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryStateUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := masterystate.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := masterystate.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "MasteryState.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := masterystate.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "MasteryState.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := masterystate.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "MasteryState.repetitions": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryStateUpdateOne) sqlSave(ctx context.Context) (_node *MasteryState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masterystate.Table, masterystate.Columns, sqlgraph.NewFieldSpec(masterystate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masterystate.FieldID)
		for _, f := range fields {
			if !masterystate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masterystate.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(masterystate.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(masterystate.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Easiness(); ok {
		_spec.SetField(masterystate.FieldEasiness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEasiness(); ok {
		_spec.AddField(masterystate.FieldEasiness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(masterystate.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(masterystate.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(masterystate.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(masterystate.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Due(); ok {
		_spec.SetField(masterystate.FieldDue, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastQuality(); ok {
		_spec.SetField(masterystate.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastQuality(); ok {
		_spec.AddField(masterystate.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(masterystate.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(masterystate.FieldVersion, field.TypeInt64, value)
	}
	_node = &MasteryState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masterystate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
