// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smartjects/importer/gen/ent/businessfunction"
	"github.com/smartjects/importer/gen/ent/predicate"
)

// BusinessFunctionDelete is the builder for deleting a BusinessFunction entity.
type BusinessFunctionDelete struct {
	config
	hooks    []Hook
	mutation *BusinessFunctionMutation
}

// Where appends a list predicates to the BusinessFunctionDelete builder.
func (_d *BusinessFunctionDelete) Where(ps ...predicate.BusinessFunction) *BusinessFunctionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BusinessFunctionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BusinessFunctionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BusinessFunctionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(businessfunction.Table, sqlgraph.NewFieldSpec(businessfunction.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// BusinessFunctionDeleteOne is the builder for deleting a single BusinessFunction entity.
type BusinessFunctionDeleteOne struct {
	_d *BusinessFunctionDelete
}

// Where appends a list predicates to the BusinessFunctionDelete builder.
func (_d *BusinessFunctionDeleteOne) Where(ps ...predicate.BusinessFunction) *BusinessFunctionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BusinessFunctionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{businessfunction.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BusinessFunctionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
