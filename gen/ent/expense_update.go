// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/homecrew/homecrew-backend/gen/ent/expense"
	"github.com/homecrew/homecrew-backend/gen/ent/household"
	"github.com/homecrew/homecrew-backend/gen/ent/predicate"
	"github.com/homecrew/homecrew-backend/internal/entity"
)

// ExpenseUpdate is the builder for updating Expense entities.
type ExpenseUpdate struct {
	config
	hooks    []Hook
	mutation *ExpenseMutation
}

// Where appends a list predicates to the ExpenseUpdate builder.
func (_u *ExpenseUpdate) Where(ps ...predicate.Expense) *ExpenseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHouseholdID sets the "household_id" field.
func (_u *ExpenseUpdate) SetHouseholdID(v uuid.UUID) *ExpenseUpdate {
	_u.mutation.SetHouseholdID(v)
	return _u
}

// SetNillableHouseholdID sets the "household_id" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableHouseholdID(v *uuid.UUID) *ExpenseUpdate {
	if v != nil {
		_u.SetHouseholdID(*v)
	}
	return _u
}

// SetMerchantName sets the "merchant_name" field.
func (_u *ExpenseUpdate) SetMerchantName(v string) *ExpenseUpdate {
	_u.mutation.SetMerchantName(v)
	return _u
}

// SetNillableMerchantName sets the "merchant_name" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableMerchantName(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetMerchantName(*v)
	}
	return _u
}

// SetTxDate sets the "tx_date" field.
func (_u *ExpenseUpdate) SetTxDate(v time.Time) *ExpenseUpdate {
	_u.mutation.SetTxDate(v)
	return _u
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableTxDate(v *time.Time) *ExpenseUpdate {
	if v != nil {
		_u.SetTxDate(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *ExpenseUpdate) SetTotal(v float64) *ExpenseUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableTotal(v *float64) *ExpenseUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ExpenseUpdate) AddTotal(v float64) *ExpenseUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *ExpenseUpdate) SetCurrencyCode(v string) *ExpenseUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableCurrencyCode(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExpenseUpdate) SetCategory(v string) *ExpenseUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableCategory(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExpenseUpdate) SetConfidence(v float64) *ExpenseUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableConfidence(v *float64) *ExpenseUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExpenseUpdate) AddConfidence(v float64) *ExpenseUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ExpenseUpdate) SetNeedsReview(v bool) *ExpenseUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableNeedsReview(v *bool) *ExpenseUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ExpenseUpdate) SetRawText(v string) *ExpenseUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableRawText(v *string) *ExpenseUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ExpenseUpdate) ClearRawText() *ExpenseUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetLineItems sets the "line_items" field.
func (_u *ExpenseUpdate) SetLineItems(v []entity.ExpenseItem) *ExpenseUpdate {
	_u.mutation.SetLineItems(v)
	return _u
}

// AppendLineItems appends value to the "line_items" field.
func (_u *ExpenseUpdate) AppendLineItems(v []entity.ExpenseItem) *ExpenseUpdate {
	_u.mutation.AppendLineItems(v)
	return _u
}

// ClearLineItems clears the value of the "line_items" field.
func (_u *ExpenseUpdate) ClearLineItems() *ExpenseUpdate {
	_u.mutation.ClearLineItems()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExpenseUpdate) SetCreatedAt(v time.Time) *ExpenseUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExpenseUpdate) SetNillableCreatedAt(v *time.Time) *ExpenseUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExpenseUpdate) SetUpdatedAt(v time.Time) *ExpenseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetHousehold sets the "household" edge to the Household entity.
func (_u *ExpenseUpdate) SetHousehold(v *Household) *ExpenseUpdate {
	return _u.SetHouseholdID(v.ID)
}

// Mutation returns the ExpenseMutation object of the builder.
func (_u *ExpenseUpdate) Mutation() *ExpenseMutation {
	return _u.mutation
}

// ClearHousehold clears the "household" edge to the Household entity.
func (_u *ExpenseUpdate) ClearHousehold() *ExpenseUpdate {
	_u.mutation.ClearHousehold()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExpenseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExpenseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExpenseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExpenseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExpenseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := expense.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExpenseUpdate) check() error {
	if v, ok := _u.mutation.MerchantName(); ok {
		if err := expense.MerchantNameValidator(v); err != nil {
			return &ValidationError{Name: "merchant_name", err: fmt.Errorf(`ent: validator failed for field "Expense.merchant_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := expense.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Expense.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := expense.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Expense.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := expense.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Expense.confidence": %w`, err)}
		}
	}
	if _u.mutation.HouseholdCleared() && len(_u.mutation.HouseholdIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Expense.household"`)
	}
	return nil
}

func (_u *ExpenseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(expense.Table, expense.Columns, sqlgraph.NewFieldSpec(expense.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MerchantName(); ok {
		_spec.SetField(expense.FieldMerchantName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TxDate(); ok {
		_spec.SetField(expense.FieldTxDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(expense.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(expense.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(expense.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(expense.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(expense.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(expense.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(expense.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(expense.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(expense.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.LineItems(); ok {
		_spec.SetField(expense.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, expense.FieldLineItems, value)
		})
	}
	if _u.mutation.LineItemsCleared() {
		_spec.ClearField(expense.FieldLineItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(expense.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(expense.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.HouseholdCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   expense.HouseholdTable,
			Columns: []string{expense.HouseholdColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HouseholdIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   expense.HouseholdTable,
			Columns: []string{expense.HouseholdColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{expense.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExpenseUpdateOne is the builder for updating a single Expense entity.
type ExpenseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExpenseMutation
}

// SetHouseholdID sets the "household_id" field.
func (_u *ExpenseUpdateOne) SetHouseholdID(v uuid.UUID) *ExpenseUpdateOne {
	_u.mutation.SetHouseholdID(v)
	return _u
}

// SetNillableHouseholdID sets the "household_id" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableHouseholdID(v *uuid.UUID) *ExpenseUpdateOne {
	if v != nil {
		_u.SetHouseholdID(*v)
	}
	return _u
}

// SetMerchantName sets the "merchant_name" field.
func (_u *ExpenseUpdateOne) SetMerchantName(v string) *ExpenseUpdateOne {
	_u.mutation.SetMerchantName(v)
	return _u
}

// SetNillableMerchantName sets the "merchant_name" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableMerchantName(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetMerchantName(*v)
	}
	return _u
}

// SetTxDate sets the "tx_date" field.
func (_u *ExpenseUpdateOne) SetTxDate(v time.Time) *ExpenseUpdateOne {
	_u.mutation.SetTxDate(v)
	return _u
}

// SetNillableTxDate sets the "tx_date" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableTxDate(v *time.Time) *ExpenseUpdateOne {
	if v != nil {
		_u.SetTxDate(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *ExpenseUpdateOne) SetTotal(v float64) *ExpenseUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableTotal(v *float64) *ExpenseUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ExpenseUpdateOne) AddTotal(v float64) *ExpenseUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *ExpenseUpdateOne) SetCurrencyCode(v string) *ExpenseUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableCurrencyCode(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExpenseUpdateOne) SetCategory(v string) *ExpenseUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableCategory(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExpenseUpdateOne) SetConfidence(v float64) *ExpenseUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableConfidence(v *float64) *ExpenseUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExpenseUpdateOne) AddConfidence(v float64) *ExpenseUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ExpenseUpdateOne) SetNeedsReview(v bool) *ExpenseUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableNeedsReview(v *bool) *ExpenseUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ExpenseUpdateOne) SetRawText(v string) *ExpenseUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableRawText(v *string) *ExpenseUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ExpenseUpdateOne) ClearRawText() *ExpenseUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetLineItems sets the "line_items" field.
func (_u *ExpenseUpdateOne) SetLineItems(v []entity.ExpenseItem) *ExpenseUpdateOne {
	_u.mutation.SetLineItems(v)
	return _u
}

// AppendLineItems appends value to the "line_items" field.
func (_u *ExpenseUpdateOne) AppendLineItems(v []entity.ExpenseItem) *ExpenseUpdateOne {
	_u.mutation.AppendLineItems(v)
	return _u
}

// ClearLineItems clears the value of the "line_items" field.
func (_u *ExpenseUpdateOne) ClearLineItems() *ExpenseUpdateOne {
	_u.mutation.ClearLineItems()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExpenseUpdateOne) SetCreatedAt(v time.Time) *ExpenseUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExpenseUpdateOne) SetNillableCreatedAt(v *time.Time) *ExpenseUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExpenseUpdateOne) SetUpdatedAt(v time.Time) *ExpenseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetHousehold sets the "household" edge to the Household entity.
func (_u *ExpenseUpdateOne) SetHousehold(v *Household) *ExpenseUpdateOne {
	return _u.SetHouseholdID(v.ID)
}

// Mutation returns the ExpenseMutation object of the builder.
func (_u *ExpenseUpdateOne) Mutation() *ExpenseMutation {
	return _u.mutation
}

// ClearHousehold clears the "household" edge to the Household entity.
func (_u *ExpenseUpdateOne) ClearHousehold() *ExpenseUpdateOne {
	_u.mutation.ClearHousehold()
	return _u
}

// Where appends a list predicates to the ExpenseUpdate builder.
func (_u *ExpenseUpdateOne) Where(ps ...predicate.Expense) *ExpenseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExpenseUpdateOne) Select(field string, fields ...string) *ExpenseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Expense entity.
func (_u *ExpenseUpdateOne) Save(ctx context.Context) (*Expense, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExpenseUpdateOne) SaveX(ctx context.Context) *Expense {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExpenseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExpenseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExpenseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := expense.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExpenseUpdateOne) check() error {
	if v, ok := _u.mutation.MerchantName(); ok {
		if err := expense.MerchantNameValidator(v); err != nil {
			return &ValidationError{Name: "merchant_name", err: fmt.Errorf(`ent: validator failed for field "Expense.merchant_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := expense.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Expense.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := expense.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Expense.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := expense.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Expense.confidence": %w`, err)}
		}
	}
	if _u.mutation.HouseholdCleared() && len(_u.mutation.HouseholdIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Expense.household"`)
	}
	return nil
}

func (_u *ExpenseUpdateOne) sqlSave(ctx context.Context) (_node *Expense, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(expense.Table, expense.Columns, sqlgraph.NewFieldSpec(expense.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Expense.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, expense.FieldID)
		for _, f := range fields {
			if !expense.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != expense.FieldID {
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
	if value, ok := _u.mutation.MerchantName(); ok {
		_spec.SetField(expense.FieldMerchantName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TxDate(); ok {
		_spec.SetField(expense.FieldTxDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(expense.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(expense.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(expense.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(expense.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(expense.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(expense.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(expense.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(expense.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(expense.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.LineItems(); ok {
		_spec.SetField(expense.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, expense.FieldLineItems, value)
		})
	}
	if _u.mutation.LineItemsCleared() {
		_spec.ClearField(expense.FieldLineItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(expense.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(expense.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.HouseholdCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   expense.HouseholdTable,
			Columns: []string{expense.HouseholdColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HouseholdIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   expense.HouseholdTable,
			Columns: []string{expense.HouseholdColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Expense{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{expense.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
