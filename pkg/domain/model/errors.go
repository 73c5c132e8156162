package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for run and demotion operations
var (
	// Input errors
	ErrEmptyInput    = goerr.New("no token input")
	ErrNoCredentials = goerr.New("no valid token found in input")
	ErrInvalidRole   = goerr.New("invalid role")

	// Run controller state errors
	ErrRunInProgress = goerr.New("a run is already in progress")
	ErrClearRejected = goerr.New("still processing, wait for the run to finish")
	ErrNoActiveRun   = goerr.New("no run in progress")

	// Demotion proxy errors
	ErrInvalidSession  = goerr.New("invalid JSON format")
	ErrMissingToken    = goerr.New("accessToken not found in session data")
	ErrMissingUserID   = goerr.New("unable to extract user_id, provide the full session JSON")
	ErrMissingAccount  = goerr.New("unable to extract account_id, provide the full session JSON")
	ErrUnauthorized    = goerr.New("unauthorized")
	ErrLoginNotEnabled = goerr.New("admin password not configured")
)
