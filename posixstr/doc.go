// Package posixstr bridges POSIX-style host strings — arbitrary
// non-NUL byte sequences terminated by a NUL, as used by Unix and WASI
// path and environment APIs — to portable UTF-8 strings safe for
// transport across a text-only channel.
//
// # Basic usage
//
// Encode an arbitrary host byte sequence to its portable form:
//
//	portable, err := posixstr.EncodeHost(hostBytes) // error iff hostBytes has an interior NUL
//
// Decode a portable string back to host bytes, terminator included:
//
//	host, err := posixstr.DecodeToHost(portable)
//
// # Well-formed input passes through unchanged
//
// If hostBytes is already valid UTF-8, EncodeHost returns it byte-for-byte
// with no ARF envelope, and the reverse holds: if portable contains no
// embedded NUL, DecodeToHost returns its UTF-8 bytes plus a trailing NUL.
//
// # ARF fallback
//
// When hostBytes is not valid UTF-8 (e.g. a filename with invalid or
// overlong byte sequences), EncodeHost emits an ARF message: each invalid
// byte becomes one U+FFFD in the lossy section and one `U+0000 <payload>`
// pair in the escape section, where payload is the byte with its high
// bit cleared. DecodeToHost reverses this exactly, rejecting any message
// that does not satisfy the grammar (missing marker, mismatched runs,
// out-of-range payload, or no escapes at all).
//
// # Round trip
//
//	portable, _ := posixstr.EncodeHost(hostBytes)
//	host, _ := posixstr.DecodeToHost(portable)
//	// host == append(hostBytes, 0)
package posixstr
