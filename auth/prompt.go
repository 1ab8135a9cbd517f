package auth

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// PromptSource asks the user for a token.
// When in is a terminal the input is not echoed.
func PromptSource(in *os.File, out io.Writer, configPath string) Source {
	return func(context.Context) (string, error) {
		fmt.Fprintf(out, "Put a json config file at %s and hipgate will find it next time.\n", configPath)
		fmt.Fprint(out, "Please enter the hipchat token now: ")

		fd := int(in.Fd())
		if term.IsTerminal(fd) {
			raw, err := term.ReadPassword(fd)
			fmt.Fprintln(out)
			if err != nil {
				return "", err
			}
			return string(raw), nil
		}
		return readLine(in)
	}
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ErrNoToken
	}
	return line, nil
}
