package models

import "errors"

var (
	// ErrInvalidEnvironment rejects environment arguments outside the
	// closed staging/production set.
	ErrInvalidEnvironment = errors.New("invalid environment")

	// ErrToolMissing means the gcloud binary is not on PATH.
	ErrToolMissing = errors.New("gcloud CLI not found")

	// ErrNoCredential means no active credential exists even after the
	// interactive login flow ran.
	ErrNoCredential = errors.New("no active gcloud credential")

	// ErrDeclined means the operator answered the confirmation prompt
	// negatively. It is a normal termination, not a failure.
	ErrDeclined = errors.New("deployment declined")
)
