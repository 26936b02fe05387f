package dispatch

import "errors"

var (
	// ErrAlreadyRunning indicates Start was called while a job is active.
	ErrAlreadyRunning = errors.New("a dispatch job is already running")

	// ErrNoRows indicates the job has no data rows to send.
	ErrNoRows = errors.New("dispatch job has no rows")

	// ErrNoAddressColumn indicates no recipient-address column was identified.
	ErrNoAddressColumn = errors.New("no recipient address column identified")

	// ErrNilTemplate indicates the job carries no parsed template.
	ErrNilTemplate = errors.New("dispatch job has no template")
)
