package models

import "errors"

var (
	ErrPermissionDenied   = errors.New("permission denied")
	ErrEvergreenProtected = errors.New("the evergreen event cannot be rescheduled or deleted")
	ErrMissingDates       = errors.New("start and end dates are required")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
	ErrInvalidDate        = errors.New("invalid date")
	ErrEmptyName          = errors.New("event name is required")
	ErrOtherRoleSlot      = errors.New("cannot write the other person's fields")
)
