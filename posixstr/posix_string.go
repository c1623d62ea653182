package posixstr

import (
	"fmt"
	"unicode/utf8"

	"github.com/arf-strings/arfstrings/arf"
)

// PosixString is an owned, NUL-terminated byte buffer ready to be passed
// to POSIX-style APIs that expect a C string. It exists to make
// portable<->host round trips easy to express and to carry the "valid
// ARF or valid UTF-8" invariant in the type system.
type PosixString struct {
	data []byte // content followed by exactly one trailing NUL
}

// FromPathBytes constructs a PosixString from bytes that must be valid
// UTF-8, and which must either contain no NUL bytes or be a well-formed
// ARF message. It returns arf.ErrInvalidEncoding otherwise.
func FromPathBytes(b []byte) (*PosixString, error) {
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("posixstr: not valid UTF-8: %w", arf.ErrInvalidEncoding)
	}
	return FromPathStr(string(b))
}

// FromPathStr constructs a PosixString from s, which must either contain
// no NUL bytes or be a well-formed ARF message.
func FromPathStr(s string) (*PosixString, error) {
	content, err := decodeContent(s)
	if err != nil {
		return nil, err
	}
	return &PosixString{data: append(content, 0)}, nil
}

// Bytes returns the string's content without the trailing NUL terminator.
func (p *PosixString) Bytes() []byte {
	return p.data[:len(p.data)-1]
}

// CBytes returns the string's content including the trailing NUL
// terminator, ready for use where a C string is expected.
func (p *PosixString) CBytes() []byte {
	return p.data
}
