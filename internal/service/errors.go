package service

import "errors"

// Sentinel errors mapped by handlers onto HTTP statuses. Validation errors
// carry the user-visible notice text directly.
var (
	ErrNotFound           = errors.New("not found")
	ErrNotEvent           = errors.New("This post is not an event.")
	ErrNoClub             = errors.New("No club is linked to this account.")
	ErrMissingEventFields = errors.New("Event title, date and location are required.")
)
