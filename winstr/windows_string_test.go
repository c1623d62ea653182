package winstr_test

import (
	"testing"

	"github.com/arf-strings/arfstrings/arf"
	"github.com/arf-strings/arfstrings/internal/arftest"
	"github.com/arf-strings/arfstrings/winstr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowsString_FromPathBytes_ValidUTF8(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		want []uint16
	}{
		{name: "empty", b: []byte{}, want: []uint16{}},
		{name: "ascii", b: []byte("foo"), want: []uint16{'f', 'o', 'o'}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, err := winstr.FromPathBytes(tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, w.Units())
		})
	}
}

func TestWindowsString_FromPathStr_ARFInputs(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want []uint16
	}{
		{
			name: "unpaired high surrogate",
			s:    "﻿�\x00\x00\x00",
			want: []uint16{0xd800},
		},
		{
			name: "unpaired low surrogate",
			s:    "﻿�\x00\x00߿",
			want: []uint16{0xdfff},
		},
		{
			name: "escaped unit in the middle",
			s:    "﻿hello�world\x00hello\x00\x05world",
			want: []uint16{'h', 'e', 'l', 'l', 'o', 0xd805, 'w', 'o', 'r', 'l', 'd'},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, err := winstr.FromPathStr(tc.s)
			require.NoError(t, err)
			assert.Equal(t, tc.want, w.Units())
		})
	}
}

func TestWindowsString_FromPathBytes_Errors(t *testing.T) {
	_, err := winstr.FromPathBytes([]byte{0xff, 0xfe, 0x80})
	arftest.RequireIs(t, err, arf.ErrInvalidEncoding, "FromPathBytes with invalid UTF-8")
}

func TestWindowsString_FromPathStr_Errors(t *testing.T) {
	tests := []struct {
		name string
		s    string
	}{
		{name: "no BOM", s: "hello world\x00hello world"},
		{name: "double separator", s: "﻿hello world\x00\x00hello world\x00"},
		{name: "payload out of range", s: "﻿�\x00\x00ࠀ"},
		{name: "no escapes", s: "﻿hello�\x00hello"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := winstr.FromPathStr(tc.s)
			arftest.RequireIs(t, err, arf.ErrInvalidEncoding, "FromPathStr("+tc.name+")")
		})
	}
}

func TestWindowsString_RoundTrip(t *testing.T) {
	hosts := append([][]uint16{
		{},
		{'h', 'e', 'l', 'l', 'o'},
		{0x47, 0xd800, 0x48},
	}, arftest.InvalidWindowsSeeds()...)
	for _, host := range hosts {
		portable, err := winstr.EncodeHost(host)
		require.NoError(t, err)

		w, err := winstr.FromPathStr(portable)
		require.NoError(t, err)
		assert.Equal(t, host, w.Units())
	}
}
