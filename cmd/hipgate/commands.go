package main

import (
	"chat-gate/domain"
	"chat-gate/runtime"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
)

// notificationFlags registers the flags shared by send and run.
func notificationFlags(flags *pflag.FlagSet) func() domain.Notification {
	room := flags.String("room", string(domain.DefaultRoom), "room to notify")
	rooms := flags.StringSlice("rooms", nil, "additional rooms to notify")
	colour := flags.String("color", string(domain.ColorGreen), "message color (yellow, red, green, purple, gray, random)")
	format := flags.String("format", string(domain.FormatText), "message format (text or html)")
	notify := flags.Bool("notify", false, "trigger a notification for people in the room")
	label := flags.String("label", domain.DefaultSenderLabel, "sender label")

	return func() domain.Notification {
		return domain.Notification{
			Room:        domain.RoomID(*room),
			Rooms:       lo.Map(*rooms, func(r string, _ int) domain.RoomID { return domain.RoomID(r) }),
			Color:       domain.Color(*colour),
			Format:      domain.Format(*format),
			Notify:      *notify,
			SenderLabel: *label,
		}
	}
}

func (a *app) send(ctx context.Context, args []string) (int, error) {
	flags := pflag.NewFlagSet("send", pflag.ContinueOnError)
	build := notificationFlags(flags)
	failure := flags.Bool("failure", false, "send as a failure (forces red)")
	what := flags.String("what", "", "derive the message from this subject instead of a literal message")
	verb := flags.String("verb", domain.DefaultVerb, "verb used to derive the message")
	if err := flags.Parse(args); err != nil {
		return exitUsage, err
	}

	n := build()
	n.Message = strings.Join(flags.Args(), " ")
	n.Subject = domain.Subject{Literal: *what}
	n.Verb = *verb
	n.Failure = *failure
	n.Phase = domain.PhaseManual

	report := a.notifier.Send(ctx, n)
	if report.Failed() {
		return exitRuntime, errors.New("message not delivered, see logs")
	}
	return exitOK, nil
}

func (a *app) checkRoom(ctx context.Context, args []string) (int, error) {
	flags := pflag.NewFlagSet("check-room", pflag.ContinueOnError)
	people := flags.StringSlice("people", nil, "mention names, at least one must be present and available")
	room := flags.String("room", string(domain.DefaultRoom), "room to check")
	task := flags.String("task", "check_room", "task name used in messages")
	if err := flags.Parse(args); err != nil {
		return exitUsage, err
	}

	err := a.presence.Resolve(ctx, domain.GateRequest{
		People:   *people,
		Room:     domain.RoomID(*room),
		TaskName: *task,
	})
	if err != nil {
		color.Red.Println("✗", err)
		return exitGate, nil
	}
	color.Green.Println("✓ verified in room", *room)
	return exitOK, nil
}

func (a *app) runCommand(ctx context.Context, args []string) (int, error) {
	flags := pflag.NewFlagSet("run", pflag.ContinueOnError)
	build := notificationFlags(flags)
	gate := flags.Bool("gate", false, "only run when one of --people is present and available")
	people := flags.StringSlice("people", nil, "mention names for --gate")
	name := flags.String("name", "", "task name (defaults to the command)")
	what := flags.String("what", "", "what is being deployed (defaults to the task name)")
	verb := flags.String("verb", domain.DefaultVerb, "verb used in messages")
	if err := flags.Parse(args); err != nil {
		return exitUsage, err
	}
	argv := flags.Args()
	if len(argv) == 0 {
		return exitUsage, errors.New("run needs a command after --")
	}

	executed := false
	action := shellAction(lo.Ternary(*name == "", filepath.Base(argv[0]), *name), argv, &executed)

	template := build()
	template.Subject = domain.Subject{Literal: *what}
	template.Verb = *verb

	deps := runtime.Dependencies{
		Executor: runtime.NewDirectExecutor(a.log),
		Resolver: a.presence,
		Notifier: a.notifier,
		Log:      a.log,
	}
	variant := lo.Ternary(*gate, runtime.VariantGated, runtime.VariantNotifying)
	task, err := runtime.Compose(variant, action, deps, runtime.TaskOptions{
		Notification: template,
		People:       *people,
		Room:         template.Room,
	})
	if err != nil {
		return exitUsage, err
	}

	registry := runtime.NewTaskRegistry()
	if err = registry.Register(task); err != nil {
		return exitRuntime, err
	}

	positional := lo.Map(argv[1:], func(s string, _ int) any { return s })
	if _, err = task.Invoke(ctx, domain.Args{Positional: positional}); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return exitRuntime, err
	}
	if !executed {
		color.Red.Println("✗ deployment skipped:", task.Name())
		return exitGate, nil
	}
	return exitOK, nil
}

// shellAction runs argv with the terminal attached.
func shellAction(name string, argv []string, executed *bool) domain.Action {
	return domain.Action{
		Name:   name,
		Doc:    strings.Join(argv, " "),
		Module: "shell",
		Run: func(ctx context.Context, _ domain.Args) (any, error) {
			*executed = true
			cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
			cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
			if err := cmd.Run(); err != nil {
				return nil, err
			}
			return cmd.ProcessState.ExitCode(), nil
		},
	}
}

func (a *app) listHistory(args []string) (int, error) {
	flags := pflag.NewFlagSet("history", pflag.ContinueOnError)
	limit := flags.Int("limit", 20, "number of records to show, 0 for all")
	if err := flags.Parse(args); err != nil {
		return exitUsage, err
	}
	if a.history == nil {
		return exitConfig, errors.New("HISTORY_PATH is not set")
	}

	records, err := a.history.GetNotifications(*limit)
	if err != nil {
		return exitRuntime, fmt.Errorf("reading history: %w", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"At", "Phase", "Action", "Room", "Sender", "Status", "Message"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, r := range records {
		status := lo.Ternary(r.Error == "", r.Status, "error: "+r.Error)
		table.Append([]string{
			r.At.Local().Format(time.DateTime),
			string(r.Phase),
			r.Action,
			r.Room,
			r.Sender,
			status,
			strconv.Quote(r.Body),
		})
	}
	table.Render()
	return exitOK, nil
}
