package main

import (
	"chat-gate/internal"
	"log/slog"
	"os"
	"strings"

	"github.com/shirou/gopsutil/process"
)

// currentUser picks HIPGATE_USER, or the owner of this process.
func currentUser(config internal.Config, log *slog.Logger) string {
	if config.User != "" {
		return config.User
	}
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Cannot inspect current process", "error", err)
		return ""
	}
	name, err := p.Username()
	if err != nil {
		log.Warn("Cannot resolve current user", "error", err)
		return ""
	}
	// Windows reports DOMAIN\user.
	if i := strings.LastIndex(name, `\`); i >= 0 {
		name = name[i+1:]
	}
	return name
}
