package hoststring

import (
	"github.com/arf-strings/arfstrings/posixstr"
	"github.com/arf-strings/arfstrings/winstr"
)

// EncodeBytes encodes a POSIX host byte sequence to its portable form.
// opts.Platform must be Posix.
func EncodeBytes(opts Options, host []byte) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if opts.Platform != Posix {
		return "", wrongPlatform(Posix, opts)
	}
	return posixstr.EncodeHost(host)
}

// EncodeUnits encodes a Windows host code-unit sequence to its portable
// form. opts.Platform must be Windows.
func EncodeUnits(opts Options, host []uint16) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if opts.Platform != Windows {
		return "", wrongPlatform(Windows, opts)
	}
	return winstr.EncodeHost(host)
}

// DecodeToBytes decodes a portable string into POSIX host bytes.
// opts.Platform must be Posix.
func DecodeToBytes(opts Options, portable string) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Platform != Posix {
		return nil, wrongPlatform(Posix, opts)
	}
	return posixstr.DecodeToHost(portable)
}

// DecodeToUnits decodes a portable string into Windows host code units.
// opts.Platform must be Windows.
func DecodeToUnits(opts Options, portable string) ([]uint16, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Platform != Windows {
		return nil, wrongPlatform(Windows, opts)
	}
	return winstr.DecodeToUnits(portable)
}
