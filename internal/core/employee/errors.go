package employee

import "errors"

var (
	ErrInvalidID           = errors.New("employee: invalid id")
	ErrInvalidFullName     = errors.New("employee: invalid full name")
	ErrInvalidGender       = errors.New("employee: invalid gender")
	ErrInvalidDateOfBirth  = errors.New("employee: invalid date of birth")
	ErrInvalidState        = errors.New("employee: invalid state")
	ErrInvalidStatusFilter = errors.New("employee: invalid status filter")
	ErrEmployeeNotFound    = errors.New("employee: not found")
	ErrNotLoaded           = errors.New("employee: view model not loaded")
)
