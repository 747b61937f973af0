package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsTerminalFalseForBuffers(t *testing.T) {
	t.Parallel()

	require.False(t, IsTerminal(&bytes.Buffer{}))
	require.False(t, IsTerminal(nil))
}

func TestPlainStylesRenderVerbatim(t *testing.T) {
	t.Parallel()

	styles := StylesFor(&bytes.Buffer{})
	require.Equal(t, "stack-my-4", styles.Token.Render("stack-my-4"))
	require.Equal(t, "padding", styles.Family.Render("padding"))
	require.Equal(t, "FAMILY", styles.Header.Render("FAMILY"))
}
