package domain

import "errors"

// Profiles
var (
	ErrProfileNotFound           = errors.New("personality profile not found")
	ErrInvalidCommunicationStyle = errors.New("invalid communication style")
)

// Interactions
var (
	ErrCannotInteractWithSelf = errors.New("cannot interact with yourself")
	ErrInteractionNotFound    = errors.New("interaction not found")
	ErrInvalidInteractionType = errors.New("invalid interaction type")
	ErrRequestNotFound        = errors.New("no match request from this user")
	ErrInvalidResponseType    = errors.New("invalid response type: must be 'accept' or 'decline'")
	ErrRequestAlreadyAnswered = errors.New("match request was already answered differently")
)

// Matches
var (
	ErrMatchNotFound           = errors.New("match not found")
	ErrNotParticipant          = errors.New("user is not a participant of this match")
	ErrLivingSpaceAttached     = errors.New("match has a shared living space; detach or delete the space before unmatching")
	ErrInvalidStatusTransition = errors.New("invalid match status transition")
)

// Validation
var (
	ErrInvalidRequest = errors.New("invalid request")
)

// Auth
var (
	ErrInvalidToken = errors.New("invalid token")
)
