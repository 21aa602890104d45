package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserSuspended      = errors.New("account is suspended")
	ErrEmailTaken         = errors.New("email already registered")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrJobNotFound        = errors.New("job not found")
	ErrTimesheetNotFound  = errors.New("timesheet not found")
)
