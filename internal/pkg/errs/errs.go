package errs

import (
	stderrors "errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark tags err with markErr for classification. The tag must be visible to
// plain errors.Is: cockroachdb marks are only recognized by that package's
// own Is, so the sentinel is exposed through a wrapper with an Is method.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &withMark{cause: cr.Mark(err, markErr), mark: markErr}
}

type withMark struct {
	cause error
	mark  error
}

func (e *withMark) Error() string { return e.cause.Error() }
func (e *withMark) Unwrap() error { return e.cause }

func (e *withMark) Is(target error) bool {
	return stderrors.Is(e.mark, target)
}

// keeps %+v (stack, chain) rendering through the cause
func (e *withMark) Format(s fmt.State, verb rune) {
	fmt.Fprintf(s, fmt.FormatString(s, verb), e.cause)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
