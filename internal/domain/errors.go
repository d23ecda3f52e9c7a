package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Schedina errors
	ErrMsgSchedinaNotFound   = "schedina not found"
	ErrMsgSchedinaIncomplete = "schedina is incomplete"
	ErrMsgSchedinaLocked     = "schedina is already locked"
	ErrMsgSchedinaNotLocked  = "schedina is not locked"

	// Prediction errors
	ErrMsgInvalidBetType = "invalid bet type"
	ErrMsgInvalidOutcome = "invalid outcome"

	// Match errors
	ErrMsgMatchNotFound = "match not found"

	// Prize errors
	ErrMsgJoinWindowClosed    = "join window closed"
	ErrMsgNoParticipants      = "no participants"
	ErrMsgRoundNotScored      = "round not scored"
	ErrMsgRoundAlreadySettled = "round already settled"

	// Configuration errors
	ErrMsgInvalidTournamentConfig = "invalid tournament config"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Schedina errors
	ErrSchedinaNotFound   = errors.New(ErrMsgSchedinaNotFound)
	ErrSchedinaIncomplete = errors.New(ErrMsgSchedinaIncomplete)
	ErrSchedinaLocked     = errors.New(ErrMsgSchedinaLocked)
	ErrSchedinaNotLocked  = errors.New(ErrMsgSchedinaNotLocked)

	// Prediction errors
	ErrInvalidBetType = errors.New(ErrMsgInvalidBetType)
	ErrInvalidOutcome = errors.New(ErrMsgInvalidOutcome)

	// Match errors
	ErrMatchNotFound = errors.New(ErrMsgMatchNotFound)

	// Prize errors
	ErrJoinWindowClosed    = errors.New(ErrMsgJoinWindowClosed)
	ErrNoParticipants      = errors.New(ErrMsgNoParticipants)
	ErrRoundNotScored      = errors.New(ErrMsgRoundNotScored)
	ErrRoundAlreadySettled = errors.New(ErrMsgRoundAlreadySettled)

	// Configuration errors
	ErrInvalidTournamentConfig = errors.New(ErrMsgInvalidTournamentConfig)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
