package winstr

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/arf-strings/arfstrings/arf"
)

// WindowsString is an owned sequence of UTF-16 code units ready to be
// passed to Windows-style APIs. It exists to make portable<->host round
// trips easy to express and to carry the "valid ARF or valid UTF-8"
// invariant in the type system.
type WindowsString struct {
	units []uint16
}

// FromPathBytes constructs a WindowsString from bytes that must be valid
// UTF-8, and which must either contain no NUL bytes or be a well-formed
// ARF message. It returns arf.ErrInvalidEncoding otherwise.
func FromPathBytes(b []byte) (*WindowsString, error) {
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("winstr: not valid UTF-8: %w", arf.ErrInvalidEncoding)
	}
	return FromPathStr(string(b))
}

// FromPathStr constructs a WindowsString from s, which must either
// contain no NUL scalars or be a well-formed ARF message.
func FromPathStr(s string) (*WindowsString, error) {
	if !strings.ContainsRune(s, 0) {
		return &WindowsString{units: utf16.Encode([]rune(s))}, nil
	}
	units, err := fromARF(s)
	if err != nil {
		return nil, err
	}
	return &WindowsString{units: units}, nil
}

// Units returns the string's UTF-16 code units.
func (w *WindowsString) Units() []uint16 {
	return w.units
}
