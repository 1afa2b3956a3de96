package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidPage         = errors.New("invalid page parameter")
	ErrInvalidPageSize     = errors.New("invalid page size parameter")
	ErrDatabaseError       = errors.New("database error")
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrItineraryNotFound   = errors.New("itinerary not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrVersionNotFound     = errors.New("version not found")
	ErrCollaboratorExists  = errors.New("collaborator already added")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrInvalidInviteToken  = errors.New("invite token invalid or expired")
)
