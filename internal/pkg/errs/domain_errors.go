package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Lookup errors
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrUserNotFound      = errors.New("user not found")

	// Relation errors
	ErrDanglingReference = errors.New("referenced entity does not exist")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
