package hoststring

import (
	"errors"
	"fmt"

	"github.com/arf-strings/arfstrings/arf"
)

// ErrInvalidEncoding is re-exported from arf so callers of this package
// never need to import arf directly to check a failure with errors.Is.
var ErrInvalidEncoding = arf.ErrInvalidEncoding

// ErrWrongPlatform is returned when a caller invokes the POSIX entry point
// with windows-flavored Options, or vice versa.
var ErrWrongPlatform = errors.New("hoststring: entry point does not match Options.Platform")

func wrongPlatform(want Platform, opts Options) error {
	return fmt.Errorf("hoststring: entry point requires Platform %q, got %q: %w", want, opts.Platform, ErrWrongPlatform)
}
