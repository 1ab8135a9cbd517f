package services

import (
	"chat-gate/domain"
	"chat-gate/errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// senderBudget is the longest sender name HipChat accepts.
const senderBudget = 15

const (
	unknownThing      = "<unknown>"
	abbreviatedSender = "Fab"
)

// Formatter turns a Notification into the messages posted to each room.
type Formatter struct {
	env domain.RunnerEnv
	log *slog.Logger
}

func NewFormatter(env domain.RunnerEnv, log *slog.Logger) Formatter {
	return Formatter{env: env, log: log}
}

func (f Formatter) Messages(n domain.Notification) ([]domain.OutgoingMessage, error) {
	body, err := f.Body(n)
	if err != nil {
		return nil, err
	}
	sender := f.Sender(n.SenderLabel)
	return lo.Map(f.Rooms(n), func(room domain.RoomID, _ int) domain.OutgoingMessage {
		return domain.OutgoingMessage{
			Room:   room,
			Sender: sender,
			Body:   body,
			Color:  f.Color(n),
			Format: lo.Ternary(n.Format == "", domain.FormatText, n.Format),
			Notify: n.Notify,
		}
	}), nil
}

// Body returns the explicit message, or derives "<Verb>ed <thing>." / "Failed to <verb> <thing>.".
func (f Formatter) Body(n domain.Notification) (string, error) {
	if n.Message != "" {
		return n.Message, nil
	}
	thing, err := f.thing(n)
	if err != nil {
		return "", err
	}
	verb := lo.Ternary(n.Verb == "", domain.DefaultVerb, n.Verb)
	prefix := capitalize(verb) + "ed"
	if n.Failure {
		prefix = "Failed to " + verb
	}
	return fmt.Sprintf("%s %s.", prefix, thing), nil
}

func (f Formatter) thing(n domain.Notification) (string, error) {
	switch {
	case n.Subject.Literal != "":
		return n.Subject.Literal, nil
	case n.Subject.Describer != nil:
		thing, err := n.Subject.Describer(n.Args.WithoutRouting())
		if err != nil {
			f.log.Warn("Describer specified has mismatching arguments", "action", n.ActionName, "error", err)
			return unknownThing, nil
		}
		return thing, nil
	case n.ActionName != "":
		return fmt.Sprintf("'%s'", n.ActionName), nil
	default:
		return "", errors.ErrNoMessage
	}
}

// Sender builds "<label> [<user>]" and shortens it until it fits the budget:
// "Fab [<user>]" for the default label, then the label alone, then "[<user>]",
// and finally the default label.
func (f Formatter) Sender(label string) string {
	label = lo.Ternary(label == "", domain.DefaultSenderLabel, label)
	if f.env.User == "" {
		return fitOrDefault(label, f.log)
	}
	suffix := fmt.Sprintf("[%s]", f.env.User)
	name := label + " " + suffix

	if tooLong(name) && label == domain.DefaultSenderLabel {
		f.log.Warn("Sender name too long, abbreviating label", "name", name)
		name = abbreviatedSender + " " + suffix
	}
	if tooLong(name) {
		f.log.Warn("Sender name too long, dropping user", "name", name)
		name = label
	}
	if tooLong(name) {
		f.log.Warn("Sender label too long, using user only", "name", name)
		name = suffix
	}
	return fitOrDefault(name, f.log)
}

func fitOrDefault(name string, log *slog.Logger) string {
	if !tooLong(name) {
		return name
	}
	log.Warn(fmt.Sprintf("Get a shorter username! %s is longer than %d characters", name, senderBudget),
		"fallback", domain.DefaultSenderLabel)
	return domain.DefaultSenderLabel
}

// Color forces the failure color whatever the caller asked for.
func (f Formatter) Color(n domain.Notification) domain.Color {
	if n.Failure {
		return domain.FailureColor
	}
	return lo.Ternary(n.Color == "", domain.ColorGreen, n.Color)
}

// Rooms returns the explicit room followed by the extra rooms, without duplicates.
func (f Formatter) Rooms(n domain.Notification) []domain.RoomID {
	room := lo.Ternary(n.Room == "", domain.DefaultRoom, n.Room)
	return lo.Uniq(lo.Compact(append([]domain.RoomID{room}, n.Rooms...)))
}

func tooLong(name string) bool {
	return utf8.RuneCountInString(name) > senderBudget
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(first)) + strings.ToLower(s[size:])
}
