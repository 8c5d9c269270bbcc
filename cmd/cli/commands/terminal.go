package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const loginHint = "You are not logged in. Run 'login --email <email>' to sign in."

// Terminal asks questions and shows notices on the console. It is the
// Prompter and Navigator for every controller.
type Terminal struct {
	in        *bufio.Reader
	out       io.Writer
	AssumeYes bool
}

// NewTerminal creates a terminal over in and out
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Out is the terminal's output stream
func (t *Terminal) Out() io.Writer {
	return t.out
}

// ReadLine prompts and reads one line without its trailing newline.
// io.EOF is returned once input is exhausted.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(t.out, prompt)
	}
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks a yes/no question, defaulting to no
func (t *Terminal) Confirm(message string) bool {
	if t.AssumeYes {
		fmt.Fprintf(t.out, "%s [y/N] y\n", message)
		return true
	}

	answer, err := t.ReadLine(message + " [y/N] ")
	if err != nil {
		fmt.Fprintln(t.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// Alert shows a notice
func (t *Terminal) Alert(message string) {
	fmt.Fprintf(t.out, "» %s\n", message)
}

// ToLogin tells the user to log in
func (t *Terminal) ToLogin() {
	fmt.Fprintln(t.out, loginHint)
}
