package utils

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")

	ErrPlaceNotFound   = errors.New("place not found")
	ErrGeocodeNotFound = errors.New("location not found")

	// ErrNoCandidates: the catalog produced zero usable places for the request.
	ErrNoCandidates = errors.New("no places found for the given preferences")

	// ErrInfeasible: candidates exist but none fit the budget and time
	// constraints. Kept distinct from ErrNoCandidates so callers can suggest
	// raising the budget or shortening the trip.
	ErrInfeasible = errors.New("no feasible plan within the given budget and time")
)
