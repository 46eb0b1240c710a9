package domain

import "errors"

var (
	ErrCarNotFound     = errors.New("car not found")
	ErrDriverNotFound  = errors.New("driver not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrBookingConflict   = errors.New("car is not available for the requested window")
	ErrInvalidWindow     = errors.New("booking end must not be before its start")
	ErrInactiveRequester = errors.New("requester account is not active")
	ErrInactiveCar       = errors.New("car is not active")
	ErrInactiveDriver    = errors.New("driver is not active")
	ErrAlreadyApproved   = errors.New("booking is already approved")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrPlateTaken    = errors.New("plate number is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
