package palette

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError indicates that the requested color set does not exist.
// It is surfaced as a typed error so callers can keep startup diagnostics
// distinct from terminal I/O failures, and it names the valid sets.
type NotFoundError struct {
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	if e == nil || e.Name == "" {
		return "color set not found"
	}
	return fmt.Sprintf("unknown color set %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}
