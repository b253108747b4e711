// Package prompt provides blocking yes/no question sources for the installer.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Normalize lower-cases and trims an answer.
func Normalize(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// IsYes reports whether a normalized answer is affirmative.
func IsYes(answer string) bool {
	switch Normalize(answer) {
	case "y", "yes":
		return true
	}
	return false
}

// LineReader asks questions on out and reads one line per answer from in.
// A single buffered reader is kept so consecutive prompts do not drop input.
type LineReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineReader returns a LineReader over in and out.
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	if out == nil {
		out = io.Discard
	}
	return &LineReader{in: bufio.NewReader(in), out: out}
}

// Ask writes question and blocks until a line is read. A closed stream
// yields whatever was typed before it closed, which is "" for a bare EOF.
func (r *LineReader) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(r.out, question); err != nil {
		return "", err
	}
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				// Keep the next prompt on its own line.
				_, _ = fmt.Fprintln(r.out)
			}
			return Normalize(line), nil
		}
		return "", err
	}
	return Normalize(line), nil
}

// Scripted replays fixed answers in order, then answers "" forever.
type Scripted struct {
	Answers   []string
	Questions []string
}

// Ask records question and returns the next scripted answer.
func (s *Scripted) Ask(question string) (string, error) {
	s.Questions = append(s.Questions, question)
	if len(s.Answers) == 0 {
		return "", nil
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return Normalize(answer), nil
}
