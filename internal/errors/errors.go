// Package errors defines sentinel errors shared across Movey commands.
package errors

import "errors"

// Credential errors indicate issues with the saved registry credential.
var (
	// ErrNoCredentialFile indicates no credential file exists in the Movey home.
	ErrNoCredentialFile = errors.New("no credential file found")

	// ErrTokenNotFound indicates the credential file has no saved registry token.
	ErrTokenNotFound = errors.New("no registry token saved")
)
