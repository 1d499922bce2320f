// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/revisio/revisio/ent/studyplan"
)

// StudyPlanCreate is the builder for creating a StudyPlan entity.
type StudyPlanCreate struct {
	config
	mutation *StudyPlanMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *StudyPlanCreate) SetPlanID(v string) *StudyPlanCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *StudyPlanCreate) SetStudentID(v string) *StudyPlanCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *StudyPlanCreate) SetSubjectID(v string) *StudyPlanCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *StudyPlanCreate) SetStartDate(v time.Time) *StudyPlanCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetHorizonDays sets the "horizon_days" field.
func (_c *StudyPlanCreate) SetHorizonDays(v int) *StudyPlanCreate {
	_c.mutation.SetHorizonDays(v)
	return _c
}

// SetCoverageExtended sets the "coverage_extended" field.
func (_c *StudyPlanCreate) SetCoverageExtended(v bool) *StudyPlanCreate {
	_c.mutation.SetCoverageExtended(v)
	return _c
}

// SetNillableCoverageExtended sets the "coverage_extended" field if the given value is not nil.
func (_c *StudyPlanCreate) SetNillableCoverageExtended(v *bool) *StudyPlanCreate {
	if v != nil {
		_c.SetCoverageExtended(*v)
	}
	return _c
}

// SetArchived sets the "archived" field.
func (_c *StudyPlanCreate) SetArchived(v bool) *StudyPlanCreate {
	_c.mutation.SetArchived(v)
	return _c
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_c *StudyPlanCreate) SetNillableArchived(v *bool) *StudyPlanCreate {
	if v != nil {
		_c.SetArchived(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudyPlanCreate) SetCreatedAt(v time.Time) *StudyPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudyPlanCreate) SetNillableCreatedAt(v *time.Time) *StudyPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the StudyPlanMutation object of the builder.
func (_c *StudyPlanCreate) Mutation() *StudyPlanMutation {
	return _c.mutation
}

// Save creates the StudyPlan in the database.
func (_c *StudyPlanCreate) Save(ctx context.Context) (*StudyPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudyPlanCreate) SaveX(ctx context.Context) *StudyPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudyPlanCreate) defaults() {
	if _, ok := _c.mutation.CoverageExtended(); !ok {
		v := studyplan.DefaultCoverageExtended
		_c.mutation.SetCoverageExtended(v)
	}
	if _, ok := _c.mutation.Archived(); !ok {
		v := studyplan.DefaultArchived
		_c.mutation.SetArchived(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := studyplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudyPlanCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "StudyPlan.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := studyplan.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "StudyPlan.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := studyplan.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "StudyPlan.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := studyplan.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "StudyPlan.start_date"`)}
	}
	if _, ok := _c.mutation.HorizonDays(); !ok {
		return &ValidationError{Name: "horizon_days", err: errors.New(`ent: missing required field "StudyPlan.horizon_days"`)}
	}
	if v, ok := _c.mutation.HorizonDays(); ok {
		if err := studyplan.HorizonDaysValidator(v); err != nil {
			return &ValidationError{Name: "horizon_days", err: fmt.Errorf(`ent: validator failed for field "StudyPlan.horizon_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CoverageExtended(); !ok {
		return &ValidationError{Name: "coverage_extended", err: errors.New(`ent: missing required field "StudyPlan.coverage_extended"`)}
	}
	if _, ok := _c.mutation.Archived(); !ok {
		return &ValidationError{Name: "archived", err: errors.New(`ent: missing required field "StudyPlan.archived"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StudyPlan.created_at"`)}
	}
	return nil
}

func (_c *StudyPlanCreate) sqlSave(ctx context.Context) (*StudyPlan, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudyPlanCreate) createSpec() (*StudyPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &StudyPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studyplan.Table, sqlgraph.NewFieldSpec(studyplan.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(studyplan.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(studyplan.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(studyplan.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(studyplan.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.HorizonDays(); ok {
		_spec.SetField(studyplan.FieldHorizonDays, field.TypeInt, value)
		_node.HorizonDays = value
	}
	if value, ok := _c.mutation.CoverageExtended(); ok {
		_spec.SetField(studyplan.FieldCoverageExtended, field.TypeBool, value)
		_node.CoverageExtended = value
	}
	if value, ok := _c.mutation.Archived(); ok {
		_spec.SetField(studyplan.FieldArchived, field.TypeBool, value)
		_node.Archived = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(studyplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StudyPlanCreateBulk is the builder for creating many StudyPlan entities in bulk.
type StudyPlanCreateBulk struct {
	config
	err      error
	builders []*StudyPlanCreate
}

// Save creates the StudyPlan entities in the database.
func (_c *StudyPlanCreateBulk) Save(ctx context.Context) ([]*StudyPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudyPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyPlanMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StudyPlanCreateBulk) SaveX(ctx context.Context) []*StudyPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
