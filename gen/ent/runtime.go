// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/homecrew/homecrew-backend/db/ent/schema"
	"github.com/homecrew/homecrew-backend/gen/ent/expense"
	"github.com/homecrew/homecrew-backend/gen/ent/household"
	"github.com/homecrew/homecrew-backend/gen/ent/merchant"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	expenseFields := schema.Expense{}.Fields()
	_ = expenseFields
	// expenseDescMerchantName is the schema descriptor for merchant_name field.
	expenseDescMerchantName := expenseFields[2].Descriptor()
	// expense.MerchantNameValidator is a validator for the "merchant_name" field. It is called by the builders before save.
	expense.MerchantNameValidator = func() func(string) error {
		validators := expenseDescMerchantName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(merchant_name string) error {
			for _, fn := range fns {
				if err := fn(merchant_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// expenseDescCurrencyCode is the schema descriptor for currency_code field.
	expenseDescCurrencyCode := expenseFields[5].Descriptor()
	// expense.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	expense.CurrencyCodeValidator = func() func(string) error {
		validators := expenseDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// expenseDescCategory is the schema descriptor for category field.
	expenseDescCategory := expenseFields[6].Descriptor()
	// expense.DefaultCategory holds the default value on creation for the category field.
	expense.DefaultCategory = expenseDescCategory.Default.(string)
	// expense.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	expense.CategoryValidator = expenseDescCategory.Validators[0].(func(string) error)
	// expenseDescConfidence is the schema descriptor for confidence field.
	expenseDescConfidence := expenseFields[7].Descriptor()
	// expense.DefaultConfidence holds the default value on creation for the confidence field.
	expense.DefaultConfidence = expenseDescConfidence.Default.(float64)
	// expense.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	expense.ConfidenceValidator = func() func(float64) error {
		validators := expenseDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// expenseDescNeedsReview is the schema descriptor for needs_review field.
	expenseDescNeedsReview := expenseFields[8].Descriptor()
	// expense.DefaultNeedsReview holds the default value on creation for the needs_review field.
	expense.DefaultNeedsReview = expenseDescNeedsReview.Default.(bool)
	// expenseDescCreatedAt is the schema descriptor for created_at field.
	expenseDescCreatedAt := expenseFields[11].Descriptor()
	// expense.DefaultCreatedAt holds the default value on creation for the created_at field.
	expense.DefaultCreatedAt = expenseDescCreatedAt.Default.(func() time.Time)
	// expenseDescUpdatedAt is the schema descriptor for updated_at field.
	expenseDescUpdatedAt := expenseFields[12].Descriptor()
	// expense.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	expense.DefaultUpdatedAt = expenseDescUpdatedAt.Default.(func() time.Time)
	// expense.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	expense.UpdateDefaultUpdatedAt = expenseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// expenseDescID is the schema descriptor for id field.
	expenseDescID := expenseFields[0].Descriptor()
	// expense.DefaultID holds the default value on creation for the id field.
	expense.DefaultID = expenseDescID.Default.(func() uuid.UUID)
	householdFields := schema.Household{}.Fields()
	_ = householdFields
	// householdDescName is the schema descriptor for name field.
	householdDescName := householdFields[1].Descriptor()
	// household.NameValidator is a validator for the "name" field. It is called by the builders before save.
	household.NameValidator = householdDescName.Validators[0].(func(string) error)
	// householdDescDefaultCurrency is the schema descriptor for default_currency field.
	householdDescDefaultCurrency := householdFields[2].Descriptor()
	// household.DefaultDefaultCurrency holds the default value on creation for the default_currency field.
	household.DefaultDefaultCurrency = householdDescDefaultCurrency.Default.(string)
	// household.DefaultCurrencyValidator is a validator for the "default_currency" field. It is called by the builders before save.
	household.DefaultCurrencyValidator = func() func(string) error {
		validators := householdDescDefaultCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(default_currency string) error {
			for _, fn := range fns {
				if err := fn(default_currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// householdDescCreatedAt is the schema descriptor for created_at field.
	householdDescCreatedAt := householdFields[3].Descriptor()
	// household.DefaultCreatedAt holds the default value on creation for the created_at field.
	household.DefaultCreatedAt = householdDescCreatedAt.Default.(func() time.Time)
	// householdDescUpdatedAt is the schema descriptor for updated_at field.
	householdDescUpdatedAt := householdFields[4].Descriptor()
	// household.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	household.DefaultUpdatedAt = householdDescUpdatedAt.Default.(func() time.Time)
	// household.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	household.UpdateDefaultUpdatedAt = householdDescUpdatedAt.UpdateDefault.(func() time.Time)
	// householdDescID is the schema descriptor for id field.
	householdDescID := householdFields[0].Descriptor()
	// household.DefaultID holds the default value on creation for the id field.
	household.DefaultID = householdDescID.Default.(func() uuid.UUID)
	merchantFields := schema.Merchant{}.Fields()
	_ = merchantFields
	// merchantDescName is the schema descriptor for name field.
	merchantDescName := merchantFields[2].Descriptor()
	// merchant.NameValidator is a validator for the "name" field. It is called by the builders before save.
	merchant.NameValidator = func() func(string) error {
		validators := merchantDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// merchantDescCreatedAt is the schema descriptor for created_at field.
	merchantDescCreatedAt := merchantFields[3].Descriptor()
	// merchant.DefaultCreatedAt holds the default value on creation for the created_at field.
	merchant.DefaultCreatedAt = merchantDescCreatedAt.Default.(func() time.Time)
	// merchantDescID is the schema descriptor for id field.
	merchantDescID := merchantFields[0].Descriptor()
	// merchant.DefaultID holds the default value on creation for the id field.
	merchant.DefaultID = merchantDescID.Default.(func() uuid.UUID)
}
