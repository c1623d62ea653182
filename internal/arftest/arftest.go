// Package arftest holds small property-test helpers shared by posixstr
// and winstr, so each package's test suite does not redefine
// the same seed corpora and assertion shape.
package arftest

import (
	"errors"
	"testing"
)

// InvalidPosixSeeds are byte sequences covering the invalid-UTF-8 shapes a
// POSIX codec must handle: a byte that never occurs in UTF-8 (0xFE), an
// overlong lead byte followed by an invalid byte (0xC0 0xFF), a truncated
// multi-byte sequence (0xE6 0x96), and a literal BOM that
// must NOT be mistaken for the ARF marker when it is a content byte
// rather than a message prefix.
func InvalidPosixSeeds() [][]byte {
	return [][]byte{
		{0xfe},
		{0xc0, 0xff},
		{0xe6, 0x96},
		{0xef, 0xbb, 0xbf},
	}
}

// InvalidWindowsSeeds are UTF-16 code-unit sequences covering the
// unpaired-surrogate shapes a Windows codec must handle: a lone high
// surrogate, a lone low surrogate, and a high surrogate followed by a
// non-surrogate unit.
func InvalidWindowsSeeds() [][]uint16 {
	return [][]uint16{
		{0xd800},
		{0xdfff},
		{0xd800, 'x'},
	}
}

// RequireIs fails the test unless errors.Is(err, target) holds, reporting
// both the context string and the error chain for easier diagnosis than a
// bare require.ErrorIs call when the chain is deep.
func RequireIs(t *testing.T, err error, target error, context string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error wrapping %v, got nil", context, target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("%s: error %v does not wrap %v", context, err, target)
	}
}
