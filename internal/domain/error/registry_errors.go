// Package error defines domain-specific errors for the BK Finance backend.
package error

import "errors"

// Reference-table (supplier, category, bank) errors.
var (
	// ErrSupplierNotFound is returned when a supplier is not found.
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrSupplierNameRequired is returned when a supplier is created without a name.
	ErrSupplierNameRequired = errors.New("supplier name is required")

	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameRequired is returned when a category is created without a name.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrCategoryAlreadyExists is returned when a (flow type, name) pair is already taken.
	ErrCategoryAlreadyExists = errors.New("category already exists")

	// ErrSubcategoryNotFound is returned when a subcategory is not found.
	ErrSubcategoryNotFound = errors.New("subcategory not found")

	// ErrSubcategoryAlreadyExists is returned when a (category, name) pair is already taken.
	ErrSubcategoryAlreadyExists = errors.New("subcategory already exists")

	// ErrBankNotFound is returned when a bank account is not found.
	ErrBankNotFound = errors.New("bank account not found")

	// ErrBankNameRequired is returned when a bank account is created without a name.
	ErrBankNameRequired = errors.New("bank name is required")
)
