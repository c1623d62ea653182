// Package winstr bridges Windows-style host strings — arbitrary 16-bit
// code-unit sequences, possibly containing unpaired surrogates, with no
// embedded NUL unit — to portable UTF-8 strings safe for transport
// across a text-only channel.
//
// # Basic usage
//
// Encode an arbitrary sequence of UTF-16 code units to its portable form:
//
//	portable := winstr.EncodeUnits(hostUnits)
//
// Decode a portable string back to host code units:
//
//	host, err := winstr.DecodeToUnits(portable)
//
// # Well-formed input passes through unchanged
//
// If hostUnits is already well-formed UTF-16, EncodeUnits returns its
// UTF-8 transcoding with no ARF envelope, and the reverse holds: if
// portable contains no embedded NUL, DecodeToUnits returns its UTF-16
// transcoding directly.
//
// # ARF fallback and the surrogate payload
//
// When hostUnits contains an unpaired surrogate (0xD800-0xDFFF with no
// matching partner), EncodeUnits emits an ARF message: each unpaired
// surrogate becomes one U+FFFD in the lossy section and one
// `U+0000 <payload>` pair in the escape section, where payload is the
// surrogate minus 0xD800 (a scalar in U+0000..U+07FF, always a legal
// Unicode scalar value on its own). DecodeToUnits reverses this exactly,
// reconstructing the code unit as 0xD800+payload and rejecting any
// message that does not satisfy the grammar.
package winstr
