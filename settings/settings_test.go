package settings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	require.Equal(t, Default(), Fill(Settings{}))

	custom := Settings{MaxHeaderSize: 1024, Strict: true}
	require.Equal(t, custom, Fill(custom))

	strict := Fill(Settings{Strict: true})
	require.Equal(t, DefaultMaxHeaderSize, strict.MaxHeaderSize)
	require.True(t, strict.Strict)
}
