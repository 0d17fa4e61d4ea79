package chars

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	require.Equal(t, byte('a'), Token['a'])
	require.Equal(t, byte('a'), Token['A'])
	require.Equal(t, byte('7'), Token['7'])
	require.Equal(t, byte('-'), Token['-'])
	require.Equal(t, byte('_'), Token['_'])

	for _, c := range []byte(":; ()<>@,\"/[]?={}\t\r\n\x00") {
		require.Equal(t, byte(0), Token[c], "%q", c)
	}
}

func TestUnhex(t *testing.T) {
	require.EqualValues(t, 0, Unhex['0'])
	require.EqualValues(t, 9, Unhex['9'])
	require.EqualValues(t, 10, Unhex['a'])
	require.EqualValues(t, 10, Unhex['A'])
	require.EqualValues(t, 15, Unhex['f'])
	require.EqualValues(t, 15, Unhex['F'])
	require.EqualValues(t, -1, Unhex['g'])
	require.EqualValues(t, -1, Unhex[' '])
	require.EqualValues(t, -1, Unhex[0])
}

func TestIsURLChar(t *testing.T) {
	for _, c := range []byte("/abcXYZ09._~%!$&'()*+,;=:@[]") {
		require.True(t, IsURLChar(c, true), "%q", c)
	}

	for _, c := range []byte(" #?\r\n\x00") {
		require.False(t, IsURLChar(c, false), "%q", c)
	}

	// liberal acceptances flip with strict mode
	for _, c := range []byte{'\t', '\f', 0x80, 0xff} {
		require.True(t, IsURLChar(c, false), "%q", c)
		require.False(t, IsURLChar(c, true), "%q", c)
	}
}

func TestIsHostChar(t *testing.T) {
	for _, c := range []byte("abzAZ09.-") {
		require.True(t, IsHostChar(c, true), "%q", c)
	}

	require.True(t, IsHostChar('_', false))
	require.False(t, IsHostChar('_', true))
	require.False(t, IsHostChar('/', false))
	require.False(t, IsHostChar(':', false))
}
