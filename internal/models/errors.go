package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrUnauthenticated  = errors.New("you need to be logged in to access this resource")
)

// User and session errors
var (
	ErrInvalidCredentials = errors.New("the email or password is not correct")
	ErrEmailInUse         = errors.New("the email address is already in use")
	ErrUsernameInUse      = errors.New("the username is already in use")
	ErrEmailInvalid       = errors.New("the email address is not valid")
	ErrUsernameEmpty      = errors.New("the username must not be empty")
	ErrPasswordTooShort   = errors.New("the password must have at least 8 characters")
)

// Category errors
var (
	ErrCategoryNameNotUnique = errors.New("the category name must be unique for the transaction type")
	ErrCategoryNameEmpty     = errors.New("the category name must not be empty")
	ErrCategoryInUse         = errors.New("the category is used by transactions and cannot be deleted")
)

// Transaction and allocation errors
var (
	ErrTransactionTypeInvalid       = errors.New("the transaction type must be one of 'income' or 'expense'")
	ErrTransactionAmountNotPositive = errors.New("the transaction amount must be positive")
	ErrTransactionDateMissing       = errors.New("the transaction date must be set")
	ErrCategoryTypeMismatch         = errors.New("the category type does not match the transaction type")
	ErrExpenseAllocation            = errors.New("only income transactions can be allocated to a savings target")
	ErrAllocationPercentage         = errors.New("the allocation percentage must be greater than 0 and at most 100")
	ErrTransactionAlreadyAllocated  = errors.New("the transaction is already allocated to a savings target")
	ErrReferenceNotFound            = errors.New("a referenced resource does not exist")
)

// Savings target errors
var (
	ErrTargetNameEmpty                 = errors.New("the savings target name must not be empty")
	ErrTargetAmountNotPositive         = errors.New("the target amount must be positive")
	ErrTargetDateMissing               = errors.New("the target date must be set")
	ErrInitialInvestmentNegative       = errors.New("the initial investment must not be negative")
	ErrMonthlyContributionNegative     = errors.New("the monthly contribution must not be negative")
	ErrAllocationPercentageOutOfBounds = errors.New("the allocation percentage must be between 0 and 100")
)
