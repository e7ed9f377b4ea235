package services

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrMealNotFound            = errors.New("meal not found")
	ErrInvalidCredentials      = errors.New("e-mail or password wrong")
	ErrEmailTaken              = errors.New("e-mail already registered")
	ErrCurrentPasswordRequired = errors.New("current password is required")
	ErrCurrentPasswordMismatch = errors.New("current password does not match")
)
