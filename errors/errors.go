package errors

import "fmt"

var (
	ErrMissingCredential = fmt.Errorf("missing credential")
	ErrRemote            = fmt.Errorf("remote error")
	ErrNoMessage         = fmt.Errorf("no message or function provided")
	ErrArgumentMismatch  = fmt.Errorf("describer arguments mismatch")
	ErrActionPanic       = fmt.Errorf("action panic")

	ErrGate               = fmt.Errorf("gate")
	ErrMissingRoom        = fmt.Errorf("%w: missing room", ErrGate)
	ErrMissingPeople      = fmt.Errorf("%w: missing people", ErrGate)
	ErrInvalidUser        = fmt.Errorf("%w: invalid user", ErrGate)
	ErrVerificationFailed = fmt.Errorf("%w: verification failed", ErrGate)
)

// RemoteError carries the message of an error envelope returned by the chat endpoint.
type RemoteError struct {
	Operation string
	Code      int
	Message   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("error when %s: %s", e.Operation, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return ErrRemote
}
