package posixstr

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arf-strings/arfstrings/arf"
)

// EncodeBytes converts an arbitrary POSIX host byte sequence into its
// portable form. Every host byte sequence has a portable representation,
// so this never fails: if host is already well-formed UTF-8 it is
// returned unchanged (passthrough), otherwise an ARF message is built.
func EncodeBytes(host []byte) string {
	if utf8.Valid(host) {
		return string(host)
	}
	return toARF(host)
}

// EncodeHost converts a POSIX host byte sequence, which by convention
// contains no interior NUL, into its portable form. It returns
// arf.ErrInvalidEncoding if host contains a NUL byte.
func EncodeHost(host []byte) (string, error) {
	if bytes.IndexByte(host, 0) >= 0 {
		return "", fmt.Errorf("posixstr: host bytes contain interior NUL: %w", arf.ErrInvalidEncoding)
	}
	return EncodeBytes(host), nil
}

// EncodeHostBytes is EncodeHost with the portable result returned as a
// byte slice rather than a string.
func EncodeHostBytes(host []byte) ([]byte, error) {
	s, err := EncodeHost(host)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// EncodeCString converts a NUL-terminated (or NUL-free) POSIX host byte
// sequence into its portable form. Because the NUL is a terminator and
// not content, this never fails. Only the bytes up to the first NUL are
// considered; any trailing NUL is discarded.
func EncodeCString(host []byte) string {
	if idx := bytes.IndexByte(host, 0); idx >= 0 {
		host = host[:idx]
	}
	return EncodeBytes(host)
}

// DecodeToHost converts a portable string back into POSIX host bytes,
// terminated with a trailing NUL. If portable contains no embedded NUL it
// is the passthrough path; otherwise portable must be a well-formed ARF
// message or arf.ErrInvalidEncoding is returned.
func DecodeToHost(portable string) ([]byte, error) {
	content, err := decodeContent(portable)
	if err != nil {
		return nil, err
	}
	return append(content, 0), nil
}

// DecodeUTF8ToHost validates that b is well-formed UTF-8 and then decodes
// it exactly as DecodeToHost does.
func DecodeUTF8ToHost(b []byte) ([]byte, error) {
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("posixstr: not valid UTF-8: %w", arf.ErrInvalidEncoding)
	}
	return DecodeToHost(string(b))
}

// decodeContent implements the portable->host algorithm, returning the
// reconstructed host content with no trailing terminator.
// The returned slice is guaranteed free of interior NUL bytes.
func decodeContent(portable string) ([]byte, error) {
	if !strings.ContainsRune(portable, 0) {
		return []byte(portable), nil
	}
	return fromARF(portable)
}

// toARF is the slow path of EncodeBytes: it builds the lossy and escape
// sections by walking host twice. Go's utf8.DecodeRune already reports
// every invalid byte as a one-byte error (it never coalesces a multi-byte
// invalid sequence into a single error), which is exactly the per-unit
// granularity the round-trip property requires.
func toARF(host []byte) string {
	var out strings.Builder
	out.WriteRune(arf.Marker)

	b := host
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			out.WriteRune(arf.Replacement)
			b = b[1:]
			continue
		}
		out.Write(b[:size])
		b = b[size:]
	}

	out.WriteRune(arf.Separator)

	b = host
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			out.WriteRune(arf.Separator)
			out.WriteByte(b[0] & 0x7f)
			b = b[1:]
			continue
		}
		out.Write(b[:size])
		b = b[size:]
	}

	return out.String()
}

// fromARF is the slow path of decodeContent: it validates a message
// against the grammar and reconstructs the original bytes, walking the
// lossy and escape sections in lockstep byte by byte. Escape payloads on
// POSIX are always single ASCII bytes (0x00-0x7F), so byte-level
// iteration suffices, unlike the rune-level walk winstr needs.
func fromARF(s string) ([]byte, error) {
	lossy, escape, err := arf.Split(s)
	if err != nil {
		return nil, err
	}
	lossyBytes := []byte(lossy)
	escBytes := []byte(escape)

	out := make([]byte, 0, len(escBytes))
	anyInvalid := false
	li := 0
	for ei := 0; ei < len(escBytes); {
		c := escBytes[ei]
		if c == 0 {
			ei++
			if ei >= len(escBytes) {
				return nil, fmt.Errorf("posixstr: escape introducer with no payload: %w", arf.ErrInvalidEncoding)
			}
			payload := escBytes[ei]
			ei++
			if payload&0x80 != 0 {
				return nil, fmt.Errorf("posixstr: escape payload out of range: %w", arf.ErrInvalidEncoding)
			}
			if li+3 > len(lossyBytes) || !bytes.Equal(lossyBytes[li:li+3], []byte{0xef, 0xbf, 0xbd}) {
				return nil, fmt.Errorf("posixstr: lossy section missing replacement marker: %w", arf.ErrInvalidEncoding)
			}
			li += 3
			anyInvalid = true
			out = append(out, payload|0x80)
			continue
		}
		if li >= len(lossyBytes) || lossyBytes[li] != c {
			return nil, fmt.Errorf("posixstr: lossy and escape sections disagree: %w", arf.ErrInvalidEncoding)
		}
		li++
		ei++
		out = append(out, c)
	}

	if !anyInvalid {
		return nil, fmt.Errorf("posixstr: ARF message has no escapes: %w", arf.ErrInvalidEncoding)
	}
	if li != len(lossyBytes) {
		return nil, fmt.Errorf("posixstr: trailing content in lossy section: %w", arf.ErrInvalidEncoding)
	}
	return out, nil
}
