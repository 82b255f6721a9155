package input

import "fmt"

// Kind classifies why user input was rejected
type Kind string

const (
	InvalidFormat Kind = "InvalidFormat"
	OutOfRange    Kind = "OutOfRange"
)

// InputError is returned for text that cannot become a canonical value
type InputError struct {
	Kind Kind
	Text string
	Err  error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %q: %v", e.Kind, e.Text, e.Err)
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Text)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Is matches another *InputError by kind, so errors.Is(err, ErrOutOfRange) works
func (e *InputError) Is(target error) bool {
	t, ok := target.(*InputError)
	return ok && t.Text == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidFormat = &InputError{Kind: InvalidFormat}
	ErrOutOfRange    = &InputError{Kind: OutOfRange}
)

func invalid(text string, err error) error {
	return &InputError{Kind: InvalidFormat, Text: text, Err: err}
}
