package domain

import (
	"fmt"
	"time"

	"chat-gate/errors"
)

type Color string

const (
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorPurple Color = "purple"
	ColorGray   Color = "gray"
	ColorRandom Color = "random"

	FailureColor = ColorRed
)

type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

type Phase string

const (
	PhaseStart              Phase = "start"
	PhaseSucceeded          Phase = "succeeded"
	PhaseFailed             Phase = "failed"
	PhaseVerificationFailed Phase = "verification_failed"
	PhaseManual             Phase = "manual"
)

const (
	DefaultVerb        = "deploy"
	StartVerb          = "start"
	VerificationVerb   = "verify"
	DefaultSenderLabel = "Fabric"
)

// Describer builds the "thing" part of a derived message from the action arguments.
type Describer func(args Args) (string, error)

// FixedArity wraps fn so that it refuses any call whose positional count differs from n.
func FixedArity(n int, fn func(positional ...any) string) Describer {
	return func(args Args) (string, error) {
		if len(args.Positional) != n {
			return "", fmt.Errorf("%w: want %d, got %d", errors.ErrArgumentMismatch, n, len(args.Positional))
		}
		return fn(args.Positional...), nil
	}
}

// Subject describes what the notification is about: a literal or a Describer.
type Subject struct {
	Literal   string
	Describer Describer
}

func (s Subject) IsZero() bool {
	return s.Literal == "" && s.Describer == nil
}

// Notification holds everything needed to announce one lifecycle step.
// It is built per invocation and dropped once delivered.
type Notification struct {
	Message     string
	Subject     Subject
	Room        RoomID
	Rooms       []RoomID
	Color       Color  `validate:"omitempty,oneof=yellow red green purple gray random"`
	Format      Format `validate:"omitempty,oneof=text html"`
	Notify      bool
	Failure     bool
	SenderLabel string
	Verb        string
	Phase       Phase
	ActionName  string
	Args        Args
}

// OutgoingMessage is a fully formatted message for a single room.
type OutgoingMessage struct {
	Room   RoomID
	Sender string
	Body   string
	Color  Color
	Format Format
	Notify bool
}

type Ack struct {
	Status string
}

const (
	AckSent   = "sent"
	AckDryRun = "dry-run"
)

// Delivery is the outcome of posting to one room.
// Err is never propagated, it only reaches the logs and the history.
type Delivery struct {
	OutgoingMessage
	Status string
	Err    error
	At     time.Time
}

// SendReport collects the deliveries of one notification.
type SendReport struct {
	Phase      Phase
	Deliveries []Delivery
	Err        error
}

func (r SendReport) Failed() bool {
	if r.Err != nil {
		return true
	}
	for _, d := range r.Deliveries {
		if d.Err != nil {
			return true
		}
	}
	return false
}
