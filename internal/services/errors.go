package services

import "errors"

// Domain errors returned by the services. Handlers map them onto HTTP
// status codes with errors.Is.
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrCollectionNotFound     = errors.New("collection not found")
	ErrRecommendationNotFound = errors.New("recommendation not found")

	// ErrOwnerMismatch reports an attempt to add a recommendation to a
	// collection owned by a different user.
	ErrOwnerMismatch = errors.New("recommendation belongs to a different user")

	ErrAlreadyInCollection = errors.New("recommendation is already in the collection")
	ErrNotInCollection     = errors.New("recommendation is not in the collection")
)
