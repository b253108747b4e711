package install

// Prompter asks a question and blocks until an answer is available.
// Answers are lower-cased and trimmed; an empty answer means "no".
type Prompter interface {
	Ask(question string) (string, error)
}

// PromptFunc adapts a plain function into a Prompter.
type PromptFunc func(question string) (string, error)

// Ask calls f.
func (f PromptFunc) Ask(question string) (string, error) {
	return f(question)
}

// Logger receives installer status lines. Implementations must not fail.
type Logger interface {
	Info(msg string)
	Success(msg string)
	Warning(msg string)
	Error(msg string)
	Header(msg string)
	Line(msg string)
	Blank()
}
