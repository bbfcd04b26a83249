// Package command splits command lines into arguments.
package command

import (
	"errors"
	"strings"
)

var (
	// ErrUnbalancedQuotes is returned when a quoted argument is not closed.
	ErrUnbalancedQuotes = errors.New("unbalanced quotes in command line")
	// ErrEmptyCommand is returned when a command line holds no arguments.
	ErrEmptyCommand = errors.New("empty command")
)

// Split splits line into arguments separated by whitespace. Double-quoted
// arguments may contain whitespace and the escapes \" and \\.
func Split(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		inQuote bool
		escaped bool
		started bool
	)

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)

			escaped = false
		case inQuote && r == '\\':
			escaped = true
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && isSpace(r):
			if started {
				args = append(args, current.String())
				current.Reset()

				started = false
			}
		default:
			current.WriteRune(r)

			started = true
		}
	}

	if inQuote || escaped {
		return nil, ErrUnbalancedQuotes
	}

	if started {
		args = append(args, current.String())
	}

	return args, nil
}

// Name returns the command name, the first argument of line.
func Name(line string) (string, error) {
	args, err := Split(line)
	if err != nil {
		return "", err
	}

	if len(args) == 0 {
		return "", ErrEmptyCommand
	}

	return args[0], nil
}

// Join renders args as one command line, quoting arguments that need it.
func Join(args []string) string {
	parts := make([]string, 0, len(args))

	for _, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t\r\n\"\\") {
			escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(arg)
			parts = append(parts, `"`+escaped+`"`)

			continue
		}

		parts = append(parts, arg)
	}

	return strings.Join(parts, " ")
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
