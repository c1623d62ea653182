package winstr_test

import (
	"testing"

	"github.com/arf-strings/arfstrings/arf"
	"github.com/arf-strings/arfstrings/internal/arftest"
	"github.com/arf-strings/arfstrings/winstr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeUnits_Passthrough(t *testing.T) {
	tests := []struct {
		name string
		host []uint16
		want string
	}{
		{name: "empty", host: nil, want: ""},
		{name: "ascii", host: []uint16{'f', 'o', 'o'}, want: "foo"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, winstr.EncodeUnits(tc.host))
		})
	}
}

func TestEncodeUnits_ARF(t *testing.T) {
	tests := []struct {
		name string
		host []uint16
		want string
	}{
		{
			name: "unpaired high surrogate",
			host: []uint16{0xd800},
			want: "﻿�\x00\x00\x00",
		},
		{
			name: "unpaired low surrogate",
			host: []uint16{0xdfff},
			want: "﻿�\x00\x00߿",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, winstr.EncodeUnits(tc.host))
		})
	}
}

func TestEncodeHost_RejectsNULUnit(t *testing.T) {
	_, err := winstr.EncodeHost([]uint16{'a', 0, 'b'})
	arftest.RequireIs(t, err, arf.ErrInvalidEncoding, "EncodeHost with NUL unit")
}

func TestDecodeToUnits_Passthrough(t *testing.T) {
	units, err := winstr.DecodeToUnits("foo")
	require.NoError(t, err)
	assert.Equal(t, []uint16{'f', 'o', 'o'}, units)
}

func TestDecodeToUnits_ARF(t *testing.T) {
	units, err := winstr.DecodeToUnits("﻿hello�world\x00hello\x00\x05world")
	require.NoError(t, err)
	assert.Equal(t, []uint16{
		'h', 'e', 'l', 'l', 'o', 0xd805, 'w', 'o', 'r', 'l', 'd',
	}, units)
}

func TestDecodeToUnits_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		portable string
	}{
		{name: "no BOM", portable: "hello world\x00hello world"},
		{name: "double separator", portable: "﻿hello world\x00\x00hello world\x00"},
		{name: "payload out of range", portable: "﻿�\x00\x00ࠀ"},
		{name: "no escapes", portable: "﻿hello�\x00hello"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := winstr.DecodeToUnits(tc.portable)
			arftest.RequireIs(t, err, arf.ErrInvalidEncoding, "DecodeToUnits("+tc.name+")")
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tests := append([][]uint16{
		{},
		{'h', 'e', 'l', 'l', 'o'},
		{0x47, 0xd800, 0x48},
	}, arftest.InvalidWindowsSeeds()...)
	for _, host := range tests {
		portable, err := winstr.EncodeHost(host)
		require.NoError(t, err)

		got, err := winstr.DecodeToUnits(portable)
		require.NoError(t, err)
		assert.Equal(t, host, got)
	}
}
