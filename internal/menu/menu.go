// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package menu presents numbered selection prompts on a terminal.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Select prints prompt and the numbered options to w, marking the default,
// then reads one line from r. Empty input selects def. The returned choice
// is 1-based. A non-numeric or out-of-range selection is an error; callers
// abort rather than re-prompt.
//
// Select takes a *bufio.Reader so consecutive prompts can share one reader
// over stdin without losing buffered input.
func Select(r *bufio.Reader, w io.Writer, prompt string, def int, options []string) (int, error) {
	fmt.Fprintln(w, prompt)
	for i, op := range options {
		marker := ""
		if i+1 == def {
			marker = " (default)"
		}
		fmt.Fprintf(w, "[%d] %s%s\n", i+1, op, marker)
	}
	fmt.Fprint(w, "> ")

	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("reading selection: %w", err)
	}
	line = strings.TrimSpace(line)

	choice := def
	if line != "" {
		choice, err = strconv.Atoi(line)
		if err != nil {
			return 0, fmt.Errorf("invalid choice %q", line)
		}
	}
	if choice < 1 || choice > len(options) {
		return 0, fmt.Errorf("invalid choice %d", choice)
	}
	return choice, nil
}

// ReadLine prints prompt to w and reads one trimmed line from r.
func ReadLine(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
