package winstr

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/arf-strings/arfstrings/arf"
)

// EncodeUnits converts an arbitrary Windows host code-unit sequence into
// its portable form. Every host sequence has a portable representation,
// so this never fails: if host is already well-formed UTF-16 it is
// transcoded directly (passthrough), otherwise an ARF message is built.
func EncodeUnits(host []uint16) string {
	if wellFormed(host) {
		return string(utf16.Decode(host))
	}
	return toARF(host)
}

// EncodeHost converts a Windows host code-unit sequence, which by
// convention contains no NUL unit, into its portable form. It returns
// arf.ErrInvalidEncoding if host contains a zero unit.
func EncodeHost(host []uint16) (string, error) {
	for _, u := range host {
		if u == 0 {
			return "", fmt.Errorf("winstr: host units contain a NUL unit: %w", arf.ErrInvalidEncoding)
		}
	}
	return EncodeUnits(host), nil
}

// DecodeToUnits converts a portable string back into Windows host code
// units. If portable contains no embedded NUL it is the passthrough
// path; otherwise portable must be a well-formed ARF message or
// arf.ErrInvalidEncoding is returned.
func DecodeToUnits(portable string) ([]uint16, error) {
	if !strings.ContainsRune(portable, 0) {
		return utf16.Encode([]rune(portable)), nil
	}
	return fromARF(portable)
}

// decodeUnit decodes the UTF-16 unit (or surrogate pair) at the start of
// units. ok is false when units[0] is an unpaired surrogate, in which
// case size is 1 (the single invalid unit) and r is meaningless.
func decodeUnit(units []uint16) (r rune, size int, ok bool) {
	u := units[0]
	switch {
	case u < 0xd800 || u > 0xdfff:
		return rune(u), 1, true
	case u <= 0xdbff: // high surrogate
		if len(units) >= 2 {
			if lo := units[1]; lo >= 0xdc00 && lo <= 0xdfff {
				return utf16.DecodeRune(rune(u), rune(lo)), 2, true
			}
		}
		return 0, 1, false
	default: // 0xdc00..0xdfff: unpaired low surrogate
		return 0, 1, false
	}
}

// wellFormed reports whether units contains no unpaired surrogate.
func wellFormed(units []uint16) bool {
	for i := 0; i < len(units); {
		_, size, ok := decodeUnit(units[i:])
		if !ok {
			return false
		}
		i += size
	}
	return true
}

// toARF is the slow path of EncodeUnits: it builds the lossy and escape
// sections by walking host twice, at rune rather than byte granularity,
// since Windows payloads (up to U+07FF) are not always single UTF-8 bytes.
func toARF(host []uint16) string {
	var out strings.Builder
	out.WriteRune(arf.Marker)

	for i := 0; i < len(host); {
		r, size, ok := decodeUnit(host[i:])
		if !ok {
			out.WriteRune(arf.Replacement)
			i++
			continue
		}
		out.WriteRune(r)
		i += size
	}

	out.WriteRune(arf.Separator)

	for i := 0; i < len(host); {
		r, size, ok := decodeUnit(host[i:])
		if !ok {
			out.WriteRune(arf.Separator)
			out.WriteRune(rune(host[i] - 0xd800))
			i++
			continue
		}
		out.WriteRune(r)
		i += size
	}

	return out.String()
}

// fromARF is the slow path of DecodeToUnits: it validates a message
// against the grammar and reconstructs the original code units, walking
// the lossy and escape sections in lockstep scalar by scalar (payloads up
// to U+07FF require rune-level, not byte-level, iteration).
func fromARF(s string) ([]uint16, error) {
	lossy, escape, err := arf.Split(s)
	if err != nil {
		return nil, err
	}
	lossyRunes := []rune(lossy)
	escRunes := []rune(escape)

	var out []uint16
	anyInvalid := false
	li := 0
	for ei := 0; ei < len(escRunes); {
		c := escRunes[ei]
		if c == arf.Separator {
			ei++
			if ei >= len(escRunes) {
				return nil, fmt.Errorf("winstr: escape introducer with no payload: %w", arf.ErrInvalidEncoding)
			}
			payload := escRunes[ei]
			ei++
			if payload > 0x7ff {
				return nil, fmt.Errorf("winstr: escape payload out of range: %w", arf.ErrInvalidEncoding)
			}
			if li >= len(lossyRunes) || lossyRunes[li] != arf.Replacement {
				return nil, fmt.Errorf("winstr: lossy section missing replacement marker: %w", arf.ErrInvalidEncoding)
			}
			li++
			anyInvalid = true
			out = append(out, uint16(0xd800+uint32(payload)))
			continue
		}
		if li >= len(lossyRunes) || lossyRunes[li] != c {
			return nil, fmt.Errorf("winstr: lossy and escape sections disagree: %w", arf.ErrInvalidEncoding)
		}
		li++
		ei++
		out = append(out, utf16.Encode([]rune{c})...)
	}

	if !anyInvalid {
		return nil, fmt.Errorf("winstr: ARF message has no escapes: %w", arf.ErrInvalidEncoding)
	}
	if li != len(lossyRunes) {
		return nil, fmt.Errorf("winstr: trailing content in lossy section: %w", arf.ErrInvalidEncoding)
	}
	return out, nil
}
